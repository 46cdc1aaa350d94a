package expenses

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/logging"
)

// ListExpensesInput is the Huma input for listing expenses. Empty values
// mean the filter is not applied.
type ListExpensesInput struct {
	Category  string `query:"category" doc:"Only this category"`
	StartDate string `query:"startDate" doc:"Earliest date, YYYY-MM-DD, inclusive"`
	EndDate   string `query:"endDate" doc:"Latest date, YYYY-MM-DD, inclusive"`
	Date      string `query:"date" doc:"Exactly this date, YYYY-MM-DD"`
	Year      string `query:"year" doc:"Calendar year; requires month"`
	Month     string `query:"month" doc:"Calendar month 1-12; requires year"`
}

// ListExpensesOutput is the Huma output for every list endpoint.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Matching expenses, newest date first"`
}

type expenseLister interface {
	ListExpenses(ctx context.Context, filter expense.Filter) ([]*expense.Expense, error)
	ListDaily(ctx context.Context, date string) ([]*expense.Expense, error)
	ListMonthly(ctx context.Context, year, month int) ([]*expense.Expense, error)
}

func nonEmpty(s string) omit.Val[string] {
	if s == "" {
		return omit.Val[string]{}
	}
	return omit.From(s)
}

func parseIntParam(field, raw string) (omit.Val[int], error) {
	if raw == "" {
		return omit.Val[int]{}, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return omit.Val[int]{}, &expense.ValidationError{Field: field, Message: field + " invalid"}
	}
	return omit.From(n), nil
}

// parseListExpensesInput maps the query string onto a service filter.
func parseListExpensesInput(input *ListExpensesInput) (expense.Filter, error) {
	year, err := parseIntParam(expense.FieldYear, input.Year)
	if err != nil {
		return expense.Filter{}, err
	}
	month, err := parseIntParam(expense.FieldMonth, input.Month)
	if err != nil {
		return expense.Filter{}, err
	}

	return expense.Filter{
		Category:  nonEmpty(input.Category),
		StartDate: nonEmpty(input.StartDate),
		EndDate:   nonEmpty(input.EndDate),
		Date:      nonEmpty(input.Date),
		Year:      year,
		Month:     month,
	}, nil
}

func listOutput(ctx context.Context, list []*expense.Expense) *ListExpensesOutput {
	logging.GetLogData(ctx).AddData("expenseCount", len(list))
	return &ListExpensesOutput{Body: ListExpensesResponseBody{Expenses: toExpenses(list)}}
}

// ListExpensesHandler handles GET /v1/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses",
		Summary:     "List expenses",
		Description: "Returns every expense matching all given filters, ordered by date then id, newest first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	filter, err := parseListExpensesInput(input)
	if err != nil {
		return nil, serviceError(ctx, "ListExpenses", locationQuery, err)
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("listExpensesMs")
	list, err := h.ExpenseService.ListExpenses(ctx, filter)
	stopTimer()
	if err != nil {
		return nil, serviceError(ctx, "ListExpenses", locationQuery, err)
	}
	return listOutput(ctx, list), nil
}

// ListDailyInput selects one calendar day.
type ListDailyInput struct {
	Date string `path:"date" doc:"Date, YYYY-MM-DD"`
}

// ListDailyHandler handles GET /v1/expenses/daily/{date}.
type ListDailyHandler struct {
	ExpenseService expenseLister
}

func NewListDailyHandler(svc expenseLister) *ListDailyHandler {
	return &ListDailyHandler{ExpenseService: svc}
}

func (h *ListDailyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses-daily",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/daily/{date}",
		Summary:     "List one day's expenses",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListDailyHandler) handle(ctx context.Context, input *ListDailyInput) (*ListExpensesOutput, error) {
	list, err := h.ExpenseService.ListDaily(ctx, input.Date)
	if err != nil {
		return nil, serviceError(ctx, "ListDaily", locationPath, err)
	}
	return listOutput(ctx, list), nil
}

// ListMonthlyInput selects one calendar month.
type ListMonthlyInput struct {
	Year  int `path:"year" doc:"Calendar year"`
	Month int `path:"month" doc:"Calendar month, 1-12"`
}

// ListMonthlyHandler handles GET /v1/expenses/monthly/{year}/{month}.
type ListMonthlyHandler struct {
	ExpenseService expenseLister
}

func NewListMonthlyHandler(svc expenseLister) *ListMonthlyHandler {
	return &ListMonthlyHandler{ExpenseService: svc}
}

func (h *ListMonthlyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses-monthly",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/monthly/{year}/{month}",
		Summary:     "List one month's expenses",
		Description: "Returns expenses dated from the first through the last day of the month.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListMonthlyHandler) handle(ctx context.Context, input *ListMonthlyInput) (*ListExpensesOutput, error) {
	list, err := h.ExpenseService.ListMonthly(ctx, input.Year, input.Month)
	if err != nil {
		return nil, serviceError(ctx, "ListMonthly", locationPath, err)
	}
	return listOutput(ctx, list), nil
}
