// Package models defines the case record, runtime configuration, and
// shared value types.
package models

import "encoding/json"

// Unknown is the sentinel for fields the extractor could not find.
// Every record carries every field so downstream consumers never have
// to probe for presence.
const Unknown = "N/A"

// StringOrList holds a field that is a scalar in ordinary cases and an
// ordered list in consolidated multi-party cases. The zero value is
// not meaningful; use ScalarField / ListField / UnknownField.
type StringOrList struct {
	value  string
	values []string
}

func ScalarField(v string) StringOrList { return StringOrList{value: v} }

func ListField(vs []string) StringOrList { return StringOrList{values: vs} }

func UnknownField() StringOrList { return StringOrList{value: Unknown} }

// IsList reports whether the field holds a multi-party list.
func (f StringOrList) IsList() bool { return f.values != nil }

// IsUnknown reports whether the field is at the unknown sentinel.
func (f StringOrList) IsUnknown() bool { return f.values == nil && f.value == Unknown }

// Scalar returns the scalar value; empty when the field is a list.
func (f StringOrList) Scalar() string {
	if f.values != nil {
		return ""
	}
	return f.value
}

// List returns the list values; nil when the field is a scalar.
func (f StringOrList) List() []string { return f.values }

// Len returns how many values the field carries: 0 for unknown, 1 for a
// scalar, the list length otherwise.
func (f StringOrList) Len() int {
	if f.values != nil {
		return len(f.values)
	}
	if f.value == Unknown {
		return 0
	}
	return 1
}

// Encoded returns the persisted form: a JSON array for list values so a
// consumer can always distinguish "several values" from the scalar
// sentinel, and the raw string otherwise.
func (f StringOrList) Encoded() string {
	if f.values != nil {
		return EncodeList(f.values)
	}
	return f.value
}

// EncodeList serializes an ordered string list as a JSON array. A nil
// list encodes as "[]", never as the unknown sentinel.
func EncodeList(vs []string) string {
	if vs == nil {
		vs = []string{}
	}
	data, err := json.Marshal(vs)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// CaseRecord is the normalized output for one gazette case document.
// Constructed once per document; immutable after construction.
type CaseRecord struct {
	Link           string
	DecisionNumber string
	Volume         string
	CaseType       string
	Year           string
	Month          string
	Issue          string
	DecisionDate   string

	Court      string
	Judges     []string
	OrderDate  string
	CaseNumber StringOrList
	Subject    string
	Petitioner StringOrList
	Respondent StringOrList
	Citations  []string
	Holding    []string

	HTMLPath string
}

// NewCaseRecord returns a record with every field at the unknown
// sentinel and every list empty.
func NewCaseRecord() *CaseRecord {
	return &CaseRecord{
		Link:           Unknown,
		DecisionNumber: Unknown,
		Volume:         Unknown,
		CaseType:       Unknown,
		Year:           Unknown,
		Month:          Unknown,
		Issue:          Unknown,
		DecisionDate:   Unknown,
		Court:          Unknown,
		OrderDate:      Unknown,
		CaseNumber:     UnknownField(),
		Subject:        Unknown,
		Petitioner:     UnknownField(),
		Respondent:     UnknownField(),
	}
}

// IsEmpty reports whether extraction found nothing at all: every
// engine-owned field still at its sentinel. Such records are valid
// output, logged as low-confidence extractions rather than failures.
func (r *CaseRecord) IsEmpty() bool {
	return r.Court == Unknown &&
		len(r.Judges) == 0 &&
		r.OrderDate == Unknown &&
		r.CaseNumber.IsUnknown() &&
		r.Subject == Unknown &&
		r.Petitioner.IsUnknown() &&
		r.Respondent.IsUnknown() &&
		len(r.Citations) == 0 &&
		len(r.Holding) == 0
}
