package era

// Keyword sets shared by every era. The long tails are OCR and
// transliteration variants observed in real gazette volumes; per-era
// sets are kept exactly as observed rather than merged, since spelling
// drift between eras may be intentional.
var (
	petitionerKeywords = []string{
		"निवेदक", "वादी", "पुनरावेदक", "निबेदक", "पुनरावदेक", "निवेदिका",
		"निवेदीका", "निवदेक", "न ि वेदक ः", "नि वेदक ः", "पुनरावेदन",
		"पुनरवेदिका", "पुनरावेदिका", "पुनरावेदीका", "बादि", "पुनराबेदक",
		"प्रतिबादी", "पुनरावेक", "अपीलाट", "निवेदनक", "उजुरवाला",
		"अपिलबाट", "अपिलाट",
	}

	judgeKeywords = []string{
		"न्यायाधीश", "माननीय", "न्यायधीश", "न्यायाधीस", "न्ययाधीश",
		"न्यायाधिश", "न्यायाधी", "न्यानायधीश", "नयायाधीश", "न्यायाधधिश",
		"नयाधश",
	}

	citationMarkersEarly = []string{
		"(प्रकरण नं", "(प्रकारण नं.", "९प्रकरण नं।", "(प्रकरण", "(प्र नं.",
		"( प्र. नं", "(प्र.नं", "(प्र. नं", "( प्रकरण नं.", "( प्रकरणन",
		"( प्र.नं.", "( प्र . नं .", "( प ्र . नं .", "(प्ररकण नं.",
		"(प्रकराण नं.",
	}

	// Later eras also print the citation label without the opening paren.
	citationMarkers = append([]string{"प्रकरण नं."}, citationMarkersEarly...)

	respondentKeywordsEarly = []string{
		"विपक्षी", "प्रतिवादी", "प्रत्यर्थी", "बिपक्षी", "विपक्षी ः",
		"पिपक्षी", "विरुद्ध", "प्रत्यार्थी", "विरूद्ध", "बिरूद्ध", "विपक्ष",
		"रेस्पोण्डेण्ट", "रेस्पोन्डेन्ट",
	}

	respondentKeywords = []string{
		"विपक्षी", "प्रतिवादी", "प्रत्यर्थी", "बिपक्षी", "विपक्षी ः",
		"पिपक्षी", "प्रत्यार्थी", "विपक्ष", "रेस्पोण्डेण्ट",
		"रेस्पोन्डेन्ट", "प्रत्यथी",
	}

	subjectKeywordsEarly = []string{
		"विषय", "मुद्दा", "बिषय", "मूद्दा", "मुद्द", "मद्दा", "विपक्ष",
		"मुद्धा",
	}

	subjectKeywords = append(append([]string{}, subjectKeywordsEarly...), "मुद् दा")

	benchKeywordsEarly = []string{"इजलास", "इजालास", "इजलाश", "बेञ्च"}
	benchKeywords      = []string{"अदालत", "इजलास", "इजालास", "इजलाश", "बेञ्च"}

	holdingMarkersEarly = []string{"आदेश", "फैसला", "फैसलमा", "निर्णय", "फै सला"}
	holdingMarkers      = []string{"आदेश", "फैसला", "फैसलमा", "निर्णय", "फै सला", "मुद्दा"}

	holdingTransitions = []string{"फैसला", "आदेश", "फैसलाः"}

	versusMarkers = []string{"विरूद्ध", "बिरूद्ध", "विरुद्ध", "बिरुद्ध"}

	caseNumberTokens = []string{
		"AP", "FN", "RE", "RI", "LE", "RV", "NF", "CI", "CR", "RC", "SA",
		"MS", "ND", "RB", "CF", "DF", "RF", "WO", "WH", "WS", "WF", "WC",
		"CC", "EC",
	}
)

// registry covers the five publication eras in ascending order. Ranges
// are inclusive and non-overlapping; the modern upper bound is pinned to
// the latest volume year the gazette has published.
var registry = []*Profile{
	{
		Name:                           "legacy-early",
		YearFrom:                       2015,
		YearTo:                         2044,
		BenchKeywords:                  benchKeywordsEarly,
		JudgeKeywords:                  judgeKeywords,
		PetitionerKeywords:             petitionerKeywords,
		RespondentKeywords:             respondentKeywordsEarly,
		SubjectKeywords:                subjectKeywordsEarly,
		HoldingMarkers:                 holdingMarkersEarly,
		CitationMarkers:                citationMarkersEarly,
		HoldingTransitions:             holdingTransitions,
		SubjectBeforeCaseNumberAllowed: true,
		BenchLookahead:                 true,
	},
	{
		Name:                           "legacy-mid",
		YearFrom:                       2045,
		YearTo:                         2050,
		BenchKeywords:                  benchKeywords,
		JudgeKeywords:                  judgeKeywords,
		PetitionerKeywords:             petitionerKeywords,
		RespondentKeywords:             respondentKeywords,
		SubjectKeywords:                subjectKeywords,
		HoldingMarkers:                 holdingMarkers,
		CitationMarkers:                citationMarkers,
		HoldingTransitions:             holdingTransitions,
		SubjectBeforeCaseNumberAllowed: true,
	},
	{
		Name:               "classical",
		YearFrom:           2051,
		YearTo:             2061,
		BenchKeywords:      []string{"इजलास", "इजालास"},
		JudgeKeywords:      judgeKeywords,
		PetitionerKeywords: petitionerKeywords,
		RespondentKeywords: respondentKeywords,
		SubjectKeywords:    subjectKeywords,
		HoldingMarkers:     holdingMarkers,
		CitationMarkers:    citationMarkers,
		HoldingTransitions: holdingTransitions,
	},
	{
		Name:                           "transitional",
		YearFrom:                       2062,
		YearTo:                         2072,
		BenchKeywords:                  benchKeywords,
		JudgeKeywords:                  judgeKeywords,
		PetitionerKeywords:             petitionerKeywords,
		RespondentKeywords:             respondentKeywords,
		SubjectKeywords:                subjectKeywords,
		HoldingMarkers:                 holdingMarkers,
		CitationMarkers:                citationMarkers,
		HoldingTransitions:             holdingTransitions,
		VersusMarkers:                  versusMarkers,
		CaseNumberTokens:               caseNumberTokens,
		SubjectBeforeCaseNumberAllowed: true,
		BenchLookahead:                 true,
	},
	{
		Name:                           "modern",
		YearFrom:                       2073,
		YearTo:                         2082,
		BenchKeywords:                  benchKeywords,
		JudgeKeywords:                  judgeKeywords,
		PetitionerKeywords:             petitionerKeywords,
		RespondentKeywords:             respondentKeywords,
		SubjectKeywords:                subjectKeywords,
		HoldingMarkers:                 holdingMarkers,
		CitationMarkers:                citationMarkers,
		HoldingTransitions:             holdingTransitions,
		VersusMarkers:                  versusMarkers,
		CaseNumberTokens:               caseNumberTokens,
		SubjectBeforeCaseNumberAllowed: true,
	},
}
