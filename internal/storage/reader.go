package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

type Reader struct {
	Expenses *expenses.Reader
}

func NewReader(exec bob.Executor, dialect expenses.Dialect) *Reader {
	return &Reader{
		Expenses: expenses.NewReader(exec, dialect),
	}
}
