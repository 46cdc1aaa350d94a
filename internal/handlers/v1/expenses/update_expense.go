package expenses

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/logging"
)

// UpdateExpenseInput is the Huma input for a partial update.
type UpdateExpenseInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Expense id"`
	Body ExpenseBody
}

type expenseUpdater interface {
	UpdateExpense(ctx context.Context, id int64, candidate expense.Candidate) (*expense.Expense, error)
}

// UpdateExpenseHandler handles PATCH /v1/expense/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPatch,
		Path:        "/v1/expense/{id}",
		Summary:     "Update an expense",
		Description: "Validates and writes only the fields present in the body. Other fields keep their values.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*ExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("expenseID", input.ID)

	stopTimer := logData.AddTiming("updateExpenseMs")
	updated, err := h.ExpenseService.UpdateExpense(ctx, input.ID, input.Body.candidate())
	stopTimer()
	if err != nil {
		return nil, serviceError(ctx, "UpdateExpense", locationBody, err)
	}
	return &ExpenseOutput{Body: toExpense(updated)}, nil
}
