package actions

import (
	"context"
	"time"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

// CreateExpense inserts validated fields. Fields must be complete.
type CreateExpense struct {
	Fields expense.Fields
	Now    time.Time

	Result *expense.Expense
}

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Expenses.Insert(ctx, &expenses.NewExpense{
		Description: c.Fields.Description.GetOrZero(),
		Amount:      c.Fields.Amount.GetOrZero(),
		Category:    c.Fields.Category.GetOrZero(),
		Date:        c.Fields.Date.GetOrZero(),
		CreatedAt:   c.Now,
		UpdatedAt:   c.Now,
	})
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
