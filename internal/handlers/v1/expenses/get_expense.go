package expenses

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/logging"
)

// ExpenseIDInput identifies one expense by path.
type ExpenseIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Expense id"`
}

// ExpenseOutput wraps a single expense.
type ExpenseOutput struct {
	Body Expense
}

type expenseGetter interface {
	GetExpense(ctx context.Context, id int64) (*expense.Expense, error)
}

// GetExpenseHandler handles GET /v1/expense/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
}

func NewGetExpenseHandler(svc expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expense/{id}",
		Summary:     "Get an expense",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *ExpenseIDInput) (*ExpenseOutput, error) {
	logging.GetLogData(ctx).AddData("expenseID", input.ID)

	found, err := h.ExpenseService.GetExpense(ctx, input.ID)
	if err != nil {
		return nil, serviceError(ctx, "GetExpense", locationPath, err)
	}
	return &ExpenseOutput{Body: toExpense(found)}, nil
}
