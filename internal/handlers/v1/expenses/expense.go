// Package expenses holds the /v1 expense and category endpoints.
package expenses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/logging"
)

// Expense is the API response model for an expense.
type Expense struct {
	ID          int64  `json:"id" doc:"Expense id"`
	Description string `json:"description" doc:"Trimmed description"`
	Amount      string `json:"amount" doc:"Decimal amount with two places, e.g. '12.50'"`
	Category    string `json:"category" doc:"One of the fixed categories"`
	Date        string `json:"date" format:"date" doc:"Expense date, YYYY-MM-DD"`
	CreatedAt   string `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
	UpdatedAt   string `json:"updatedAt" format:"date-time" doc:"RFC3339 time of the last update"`
}

// ExpenseBody is the request body for creating or updating an expense.
// Every field is optional at the schema level; the service decides which are required.
type ExpenseBody struct {
	Description *string      `json:"description,omitempty" doc:"Description, 1-200 characters after trimming"`
	Amount      *AmountInput `json:"amount,omitempty"`
	Category    *string      `json:"category,omitempty" doc:"One of the fixed categories"`
	Date        *string      `json:"date,omitempty" doc:"Expense date, YYYY-MM-DD, not in the future and not before 2000-01-01"`
}

// AmountInput is an amount sent either as a JSON string ("12.50") or as a
// JSON number (12.5). Numbers keep their literal text so the service sees
// exactly what the client wrote.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = AmountInput(n)
	return nil
}

func (AmountInput) Schema(huma.Registry) *huma.Schema {
	maxLength := expense.MaxAmountLength
	return &huma.Schema{
		Description: "Decimal amount between 0 and 999999.99, as a string ('12.50') or a number",
		OneOf: []*huma.Schema{
			{Type: huma.TypeString, MaxLength: &maxLength},
			{Type: huma.TypeNumber},
		},
	}
}

func (b ExpenseBody) candidate() expense.Candidate {
	var amount omit.Val[string]
	if b.Amount != nil {
		amount = omit.From(string(*b.Amount))
	}
	return expense.Candidate{
		Description: omit.FromPtr(b.Description),
		Amount:      amount,
		Category:    omit.FromPtr(b.Category),
		Date:        omit.FromPtr(b.Date),
	}
}

func toExpense(e *expense.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      expense.FormatAmount(e.Amount),
		Category:    e.Category.String(),
		Date:        e.Date.String(),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toExpenses(list []*expense.Expense) []Expense {
	out := make([]Expense, len(list))
	for i, e := range list {
		out[i] = toExpense(e)
	}
	return out
}

// Where a field error points in the request, as "<location>.<field>".
const (
	locationBody  = "body"
	locationQuery = "query"
	locationPath  = "path"
)

// serviceError translates a service error into the client-facing status.
// Anything that is not a caller error is logged and hidden behind a 500.
func serviceError(ctx context.Context, loggingName, location string, err error) error {
	var verr *expense.ValidationError
	if errors.As(err, &verr) {
		return huma.NewError(http.StatusBadRequest, verr.Message, &huma.ErrorDetail{
			Message:  verr.Message,
			Location: location + "." + verr.Field,
		})
	}

	var notFound *expense.NotFoundError
	if errors.As(err, &notFound) {
		return huma.NewError(http.StatusNotFound, notFound.Error())
	}

	logging.GetLogData(ctx).Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
	return huma.NewError(http.StatusInternalServerError, "internal server error")
}
