package expense

import (
	"time"

	"github.com/aarondl/opt/omit"
)

const (
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldYear      = "year"
	FieldMonth     = "month"
)

// Filter is a caller-supplied list request. Every field is optional and set
// fields narrow the result together.
type Filter struct {
	Category  omit.Val[string]
	StartDate omit.Val[string]
	EndDate   omit.Val[string]
	Date      omit.Val[string]
	Year      omit.Val[int]
	Month     omit.Val[int]
}

// DailyFilter selects a single calendar day.
func DailyFilter(date string) Filter {
	return Filter{Date: omit.From(date)}
}

// MonthlyFilter selects one calendar month.
func MonthlyFilter(year, month int) Filter {
	return Filter{Year: omit.From(year), Month: omit.From(month)}
}

// Query is the store-facing form of a Filter: an optional category and an
// inclusive date range. Results are always ordered by date then id, newest
// first.
type Query struct {
	Category omit.Val[Category]
	From     omit.Val[Date]
	To       omit.Val[Date]
}

// Empty reports whether the range can match nothing.
func (q Query) Empty() bool {
	from, okFrom := q.From.Get()
	to, okTo := q.To.Get()
	return okFrom && okTo && from.After(to)
}

func (q *Query) narrowFrom(d Date) {
	if cur, ok := q.From.Get(); !ok || d.After(cur) {
		q.From = omit.From(d)
	}
}

func (q *Query) narrowTo(d Date) {
	if cur, ok := q.To.Get(); !ok || d.Before(cur) {
		q.To = omit.From(d)
	}
}

// BuildQuery validates f and folds its range, day and month constraints into
// a single inclusive range.
func BuildQuery(f Filter) (Query, error) {
	var q Query

	if raw, ok := f.Category.Get(); ok {
		category, valid := ParseCategory(raw)
		if !valid {
			return Query{}, newValidationError(FieldCategory, "invalid")
		}
		q.Category = omit.From(category)
	}

	if raw, ok := f.StartDate.Get(); ok {
		d, err := ParseDate(raw)
		if err != nil {
			return Query{}, newValidationError(FieldStartDate, "format invalid")
		}
		q.narrowFrom(d)
	}
	if raw, ok := f.EndDate.Get(); ok {
		d, err := ParseDate(raw)
		if err != nil {
			return Query{}, newValidationError(FieldEndDate, "format invalid")
		}
		q.narrowTo(d)
	}

	if raw, ok := f.Date.Get(); ok {
		d, err := ParseDate(raw)
		if err != nil {
			return Query{}, newValidationError(FieldDate, "format invalid")
		}
		q.narrowFrom(d)
		q.narrowTo(d)
	}

	year, hasYear := f.Year.Get()
	month, hasMonth := f.Month.Get()
	switch {
	case hasYear && hasMonth:
		if year < 1 || year > 9999 {
			return Query{}, newValidationError(FieldYear, "invalid")
		}
		if month < 1 || month > 12 {
			return Query{}, newValidationError(FieldMonth, "invalid")
		}
		first, last := MonthBounds(year, time.Month(month))
		q.narrowFrom(first)
		q.narrowTo(last)
	case hasYear || hasMonth:
		// a month without its year, or the reverse, is not a calendar month
		return Query{}, newValidationError(FieldMonth, "invalid")
	}

	return q, nil
}
