package expenses

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/logging"
)

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body ExpenseBody
}

// CreateExpenseOutput is the response for creating an expense.
type CreateExpenseOutput struct {
	Status int
	Body   Expense
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	CreateExpense(ctx context.Context, candidate expense.Candidate) (*expense.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create an expense",
		Description:   "Validates and stores a new expense. All four fields are required.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createExpenseMs")
	created, err := h.ExpenseService.CreateExpense(ctx, input.Body.candidate())
	stopTimer()
	if err != nil {
		return nil, serviceError(ctx, "CreateExpense", locationBody, err)
	}

	logData.AddData("expenseID", created.ID)
	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body:   toExpense(created),
	}, nil
}
