package expense

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/aarondl/opt/omit"
)

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 200

const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDate        = "date"
)

// Validate checks c against the expense rules and returns its normalized
// form. today is the current calendar date at the server; dates after it are
// rejected. Fields are checked in the order description, amount, category,
// date and the first violation is returned as a *ValidationError.
func Validate(c Candidate, mode Mode, today Date) (Fields, error) {
	var fields Fields

	if raw, ok := c.Description.Get(); ok {
		description, err := normalizeDescription(raw)
		if err != nil {
			return Fields{}, err
		}
		fields.Description = omit.From(description)
	} else if mode == ModeCreate {
		return Fields{}, newValidationError(FieldDescription, "required")
	}

	if raw, ok := c.Amount.Get(); ok {
		amount, err := ParseAmount(raw)
		if err != nil {
			if errors.Is(err, errAmountTooLarge) {
				return Fields{}, newValidationError(FieldAmount, "too large")
			}
			return Fields{}, newValidationError(FieldAmount, "invalid")
		}
		fields.Amount = omit.From(amount)
	} else if mode == ModeCreate {
		return Fields{}, newValidationError(FieldAmount, "required")
	}

	if raw, ok := c.Category.Get(); ok {
		category, valid := ParseCategory(raw)
		if !valid {
			return Fields{}, newValidationError(FieldCategory, "invalid")
		}
		fields.Category = omit.From(category)
	} else if mode == ModeCreate {
		return Fields{}, newValidationError(FieldCategory, "required")
	}

	if raw, ok := c.Date.Get(); ok {
		date, err := validateDate(raw, today)
		if err != nil {
			return Fields{}, err
		}
		fields.Date = omit.From(date)
	} else if mode == ModeCreate {
		return Fields{}, newValidationError(FieldDate, "required")
	}

	return fields, nil
}

func normalizeDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", newValidationError(FieldDescription, "required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return "", newValidationError(FieldDescription, "too long")
	}
	return description, nil
}

func validateDate(raw string, today Date) (Date, error) {
	date, err := ParseDate(raw)
	if err != nil {
		return Date{}, newValidationError(FieldDate, "format invalid")
	}
	if date.After(today) {
		return Date{}, newValidationError(FieldDate, "in future")
	}
	if date.Before(MinDate) {
		return Date{}, newValidationError(FieldDate, "too old")
	}
	return date, nil
}
