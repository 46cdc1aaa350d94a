package actions

import (
	"context"
	"time"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

// UpdateExpense validates a partial candidate against the locked row and
// writes only the fields it sets.
type UpdateExpense struct {
	ID        int64
	Candidate expense.Candidate
	Today     expense.Date
	Now       time.Time

	Result *expense.Expense
}

func (u *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Expenses.FindByIDForUpdate(ctx, u.ID)
	if err != nil {
		return err
	}

	fields, err := expense.Validate(u.Candidate, expense.ModeUpdate, u.Today)
	if err != nil {
		return err
	}

	// updated_at must move forward even if the clock did not
	updatedAt := u.Now
	if !updatedAt.After(existing.UpdatedAt) {
		updatedAt = existing.UpdatedAt.Add(time.Microsecond)
	}

	patch := expenses.PatchFrom(fields, updatedAt)
	updated, err := writer.Expenses.Update(ctx, u.ID, &patch)
	if err != nil {
		return err
	}

	u.Result = updated
	return nil
}
