package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

type Writer struct {
	tx       bob.Tx
	Expenses *expenses.Writer
}

func NewWriter(tx bob.Tx, dialect expenses.Dialect) *Writer {
	return &Writer{
		tx:       tx,
		Expenses: expenses.NewWriter(tx, dialect),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
