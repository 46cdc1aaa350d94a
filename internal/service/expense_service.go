package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carson-networks/expense-server/internal/clock"
	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

// actionProcessor runs a write action in its own transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ExpenseService owns the expense rules: reads go straight to the store,
// writes are validated and then serialized through the operator.
type ExpenseService struct {
	reader   expenses.IExpenseReader
	operator actionProcessor
	clock    clock.Clock
	location *time.Location
}

// NewExpenseService creates an ExpenseService. location decides which
// calendar day "today" is; nil means UTC.
func NewExpenseService(reader expenses.IExpenseReader, operator actionProcessor, clk clock.Clock, location *time.Location) *ExpenseService {
	if location == nil {
		location = time.UTC
	}
	return &ExpenseService{
		reader:   reader,
		operator: operator,
		clock:    clk,
		location: location,
	}
}

// now returns the timestamp to store and the local calendar date, read from
// one clock sample.
func (s *ExpenseService) now() (time.Time, expense.Date) {
	t := s.clock.Now()
	return t.UTC().Truncate(time.Microsecond), expense.DateOf(t.In(s.location))
}

// CreateExpense validates every field and stores the expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, candidate expense.Candidate) (*expense.Expense, error) {
	now, today := s.now()
	fields, err := expense.Validate(candidate, expense.ModeCreate, today)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateExpense{Fields: fields, Now: now}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return action.Result, nil
}

// GetExpense returns *expense.NotFoundError when id does not exist.
func (s *ExpenseService) GetExpense(ctx context.Context, id int64) (*expense.Expense, error) {
	found, err := s.reader.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(id, fmt.Errorf("get expense: %w", err))
	}
	return found, nil
}

// ListExpenses returns the expenses matching every set filter field, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter expense.Filter) ([]*expense.Expense, error) {
	query, err := expense.BuildQuery(filter)
	if err != nil {
		return nil, err
	}

	list, err := s.reader.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return list, nil
}

// ListDaily returns the expenses dated exactly date (YYYY-MM-DD).
func (s *ExpenseService) ListDaily(ctx context.Context, date string) ([]*expense.Expense, error) {
	return s.ListExpenses(ctx, expense.DailyFilter(date))
}

// ListMonthly returns the expenses dated within the given calendar month.
func (s *ExpenseService) ListMonthly(ctx context.Context, year, month int) ([]*expense.Expense, error) {
	return s.ListExpenses(ctx, expense.MonthlyFilter(year, month))
}

// UpdateExpense validates the fields present in candidate and writes them
// over the stored expense. Absent fields keep their values.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, candidate expense.Candidate) (*expense.Expense, error) {
	now, today := s.now()
	action := &actions.UpdateExpense{
		ID:        id,
		Candidate: candidate,
		Today:     today,
		Now:       now,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, s.mapError(id, fmt.Errorf("update expense: %w", err))
	}
	return action.Result, nil
}

// DeleteExpense removes the expense permanently.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.operator.Process(ctx, &actions.DeleteExpense{ID: id}); err != nil {
		return s.mapError(id, fmt.Errorf("delete expense: %w", err))
	}
	return nil
}

// ListCategories returns the category names in declared order.
func (s *ExpenseService) ListCategories() []string {
	return expense.CategoryNames()
}

func (s *ExpenseService) mapError(id int64, err error) error {
	if errors.Is(err, expenses.ErrNotFound) {
		return &expense.NotFoundError{ID: id}
	}
	var verr *expense.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return err
}
