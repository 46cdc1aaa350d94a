// Package expense holds the expense record, its validation rules and the
// filter-to-query translation shared by the service and the store.
package expense

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Expense is a stored expense record.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    Category
	Date        Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Candidate is caller-supplied input for a create or an update. Unset
// fields are absent from the request.
type Candidate struct {
	Description omit.Val[string]
	Amount      omit.Val[string]
	Category    omit.Val[string]
	Date        omit.Val[string]
}

// Fields is the validated and normalized form of a Candidate. In update
// mode only the fields present in the candidate are set.
type Fields struct {
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[Category]
	Date        omit.Val[Date]
}

// Mode selects which rules apply to a Candidate.
type Mode int8

const (
	// ModeCreate requires every field.
	ModeCreate Mode = iota
	// ModeUpdate validates only the fields that are present.
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// Merge lays the set fields over existing and returns the result.
// Timestamps and ID are carried over untouched.
func (f Fields) Merge(existing Expense) Expense {
	merged := existing
	if v, ok := f.Description.Get(); ok {
		merged.Description = v
	}
	if v, ok := f.Amount.Get(); ok {
		merged.Amount = v
	}
	if v, ok := f.Category.Get(); ok {
		merged.Category = v
	}
	if v, ok := f.Date.Get(); ok {
		merged.Date = v
	}
	return merged
}

// Complete reports whether every field is set, as required for a create.
func (f Fields) Complete() bool {
	return f.Description.IsSet() && f.Amount.IsSet() && f.Category.IsSet() && f.Date.IsSet()
}
