package expenses

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/expense-server/internal/expense"
)

type Reader struct {
	exec    bob.Executor
	dialect Dialect
}

var _ IExpenseReader = (*Reader)(nil)

func NewReader(exec bob.Executor, dialect Dialect) *Reader {
	return &Reader{exec: exec, dialect: dialect}
}

// FindByID returns ErrNotFound when no row has the given id.
func (r *Reader) FindByID(ctx context.Context, id int64) (*expense.Expense, error) {
	return r.findOne(ctx, r.dialect.findByID(id, false))
}

// List returns the rows matching query, newest date first and highest id
// first within a date.
func (r *Reader) List(ctx context.Context, query expense.Query) ([]*expense.Expense, error) {
	if query.Empty() {
		return []*expense.Expense{}, nil
	}

	rows, err := bob.All(ctx, r.exec, r.dialect.list(query), scan.StructMapper[expenseRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*expense.Expense, len(rows))
	for i, row := range rows {
		result[i] = rowToExpense(row)
	}
	return result, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	return bob.One(ctx, r.exec, r.dialect.count(), scan.SingleColumnMapper[int64])
}

func (r *Reader) findOne(ctx context.Context, query bob.Query) (*expense.Expense, error) {
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[expenseRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToExpense(row), nil
}
