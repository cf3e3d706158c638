package domain

import (
	"time"
)

// Record represents one normalized green-finance instrument row (a bond or a
// loan) as produced by the ingestion step from a raw Refinitiv-style export.
//
// Fields that are coerced from free-text cells are pointers: a nil Year or
// Amount means the source cell failed to parse and the value is explicitly
// missing. A row is never carried with a malformed value silently treated as
// zero.
type Record struct {
	ISIN          string     `json:"isin,omitempty"`
	IssuerName    string     `json:"issuer_name"`
	IssuerCountry string     `json:"issuer_country"`
	IssueDate     *time.Time `json:"issue_date,omitempty"`
	Year          *int       `json:"year,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`

	// AmountBillions is Amount / 1e9, nil when Amount is nil.
	AmountBillions *float64 `json:"amount_billions,omitempty"`
}

// HasYear reports whether the issue date parsed into a usable calendar year.
// Rows without a year are excluded from year-keyed aggregates only; they still
// participate in name-matched aggregations.
func (r Record) HasYear() bool {
	return r.Year != nil
}

// HasAmount reports whether the face value parsed into a usable amount.
func (r Record) HasAmount() bool {
	return r.Amount != nil
}

// Billions returns the amount in billions, or 0 when the amount is missing.
// Callers that must distinguish zero from missing should check HasAmount.
func (r Record) Billions() float64 {
	if r.AmountBillions == nil {
		return 0
	}
	return *r.AmountBillions
}
