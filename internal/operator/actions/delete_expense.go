package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
)

type DeleteExpense struct {
	ID int64
}

func (d *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Expenses.Delete(ctx, d.ID)
}
