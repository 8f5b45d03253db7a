package nepali

import "testing"

func TestToASCIIDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "all Devanagari digits",
			input: "०१२३४५६७८९",
			want:  "0123456789",
		},
		{
			name:  "year",
			input: "२०७३",
			want:  "2073",
		},
		{
			name:  "mixed text and digits",
			input: "साल २०५१ अंक ३",
			want:  "साल 2051 अंक 3",
		},
		{
			name:  "already ASCII",
			input: "2044",
			want:  "2044",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToASCIIDigits(tt.input); got != tt.want {
				t.Errorf("ToASCIIDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	year, err := ParseYear(" २०६२ ")
	if err != nil {
		t.Fatalf("ParseYear() error = %v", err)
	}
	if year != 2062 {
		t.Errorf("ParseYear() = %d, want 2062", year)
	}

	if _, err := ParseYear("साल"); err == nil {
		t.Error("ParseYear() with non-numeric input should fail")
	}
}

func TestCaseTypeNumber(t *testing.T) {
	n, err := CaseTypeNumber("रिट")
	if err != nil {
		t.Fatalf("CaseTypeNumber() error = %v", err)
	}
	if n != 5 {
		t.Errorf("CaseTypeNumber(रिट) = %d, want 5", n)
	}

	if _, err := CaseTypeNumber("nope"); err == nil {
		t.Error("CaseTypeNumber() with unknown type should fail")
	}
}

func TestCaseTypeName(t *testing.T) {
	name, err := CaseTypeName(1)
	if err != nil {
		t.Fatalf("CaseTypeName() error = %v", err)
	}
	if name != "दुनियाबादी देवानी" {
		t.Errorf("CaseTypeName(1) = %q", name)
	}

	if _, err := CaseTypeName(8); err == nil {
		t.Error("CaseTypeName(8) should fail")
	}
}
