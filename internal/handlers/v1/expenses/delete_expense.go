package expenses

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
)

// DeleteExpenseOutput has no body; success is 204.
type DeleteExpenseOutput struct{}

type expenseDeleter interface {
	DeleteExpense(ctx context.Context, id int64) error
}

// DeleteExpenseHandler handles DELETE /v1/expense/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/v1/expense/{id}",
		Summary:       "Delete an expense",
		Description:   "Removes the expense permanently.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *ExpenseIDInput) (*DeleteExpenseOutput, error) {
	logging.GetLogData(ctx).AddData("expenseID", input.ID)

	if err := h.ExpenseService.DeleteExpense(ctx, input.ID); err != nil {
		return nil, serviceError(ctx, "DeleteExpense", locationPath, err)
	}
	return &DeleteExpenseOutput{}, nil
}
