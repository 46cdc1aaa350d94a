package expenses

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/expense"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx, dialect Dialect) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec:    tx,
			dialect: dialect,
		},
	}
}

// FindByIDForUpdate reads the row and locks it for the rest of the transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*expense.Expense, error) {
	return w.findOne(ctx, w.dialect.findByID(id, true))
}

// Insert stores a new row and returns it with its generated id.
func (w *Writer) Insert(ctx context.Context, create *NewExpense) (*expense.Expense, error) {
	return w.findOne(ctx, w.dialect.insert(create))
}

// Update applies patch to the row with the given id and returns the stored result.
func (w *Writer) Update(ctx context.Context, id int64, patch *Patch) (*expense.Expense, error) {
	return w.findOne(ctx, w.dialect.update(id, patch))
}

// Delete removes the row permanently. It returns ErrNotFound when nothing was deleted.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	result, err := bob.Exec(ctx, w.tx, w.dialect.delete(id))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
