package service

import (
	"time"

	"github.com/carson-networks/expense-server/internal/clock"
	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
}

// NewService creates a new Service over the given storage. Every write goes
// through operator.
func NewService(store *storage.Storage, operator actionProcessor, clk clock.Clock, location *time.Location) *Service {
	return &Service{
		Expense: NewExpenseService(store.Read().Expenses, operator, clk, location),
	}
}
