package expenses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/expense"
)

const (
	tableName      = "expenses"
	colID          = "id"
	colDescription = "description"
	colAmount      = "amount_cents"
	colCategory    = "category"
	colDate        = "date"
	colCreatedAt   = "created_at"
	colUpdatedAt   = "updated_at"
)

var columns = []any{colID, colDescription, colAmount, colCategory, colDate, colCreatedAt, colUpdatedAt}

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("expense row not found")

// NewExpense is the input for inserting an expense.
type NewExpense struct {
	Description string
	Amount      decimal.Decimal
	Category    expense.Category
	Date        expense.Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch lists the columns to change on an update. UpdatedAt is always written.
type Patch struct {
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[expense.Category]
	Date        omit.Val[expense.Date]
	UpdatedAt   time.Time
}

// PatchFrom turns validated fields into a Patch stamped with updatedAt.
func PatchFrom(fields expense.Fields, updatedAt time.Time) Patch {
	return Patch{
		Description: fields.Description,
		Amount:      fields.Amount,
		Category:    fields.Category,
		Date:        fields.Date,
		UpdatedAt:   updatedAt,
	}
}

// IExpenseReader defines the read operations on the expenses table.
//
//go:generate mockery --name IExpenseReader --output mock_IExpenseReader.go
type IExpenseReader interface {
	FindByID(ctx context.Context, id int64) (*expense.Expense, error)
	List(ctx context.Context, query expense.Query) ([]*expense.Expense, error)
	Count(ctx context.Context) (int64, error)
}

type expenseRow struct {
	ID          int64            `db:"id"`
	Description string           `db:"description"`
	AmountCents int64            `db:"amount_cents"`
	Category    expense.Category `db:"category"`
	Date        expense.Date     `db:"date"`
	CreatedAt   dbTime           `db:"created_at"`
	UpdatedAt   dbTime           `db:"updated_at"`
}

func rowToExpense(row expenseRow) *expense.Expense {
	return &expense.Expense{
		ID:          row.ID,
		Description: row.Description,
		Amount:      expense.AmountFromCents(row.AmountCents),
		Category:    row.Category,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

// dbTime reads timestamps from drivers that return either time.Time or text.
type dbTime struct {
	time.Time
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}
