package expenses

import (
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/bob/dialect/sqlite/um"

	"github.com/carson-networks/expense-server/internal/expense"
)

type sqliteDialect struct{}

// findByID ignores forUpdate: SQLite has no row locks and write
// transactions already hold the database write lock (BEGIN IMMEDIATE).
func (sqliteDialect) findByID(id int64, _ bool) bob.Query {
	return sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote(colID).EQ(sqlite.Arg(id))),
	)
}

func (sqliteDialect) list(query expense.Query) bob.Query {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if category, ok := query.Category.Get(); ok {
		queryMods = append(queryMods, sm.Where(sqlite.Quote(colCategory).EQ(sqlite.Arg(category))))
	}
	if from, ok := query.From.Get(); ok {
		queryMods = append(queryMods, sm.Where(sqlite.Quote(colDate).GTE(sqlite.Arg(from))))
	}
	if to, ok := query.To.Get(); ok {
		queryMods = append(queryMods, sm.Where(sqlite.Quote(colDate).LTE(sqlite.Arg(to))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(sqlite.Quote(colDate)).Desc(),
		sm.OrderBy(sqlite.Quote(colID)).Desc(),
	)
	return sqlite.Select(queryMods...)
}

func (sqliteDialect) count() bob.Query {
	return sqlite.Select(sm.Columns("count(*)"), sm.From(tableName))
}

func (sqliteDialect) insert(create *NewExpense) bob.Query {
	return sqlite.Insert(
		im.Into(tableName, colDescription, colAmount, colCategory, colDate, colCreatedAt, colUpdatedAt),
		im.Values(
			sqlite.Arg(create.Description),
			sqlite.Arg(expense.AmountToCents(create.Amount)),
			sqlite.Arg(create.Category),
			sqlite.Arg(create.Date),
			sqlite.Arg(create.CreatedAt),
			sqlite.Arg(create.UpdatedAt),
		),
		im.Returning(columns...),
	)
}

func (sqliteDialect) update(id int64, patch *Patch) bob.Query {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}
	if v, ok := patch.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol(colDescription).ToArg(v))
	}
	if v, ok := patch.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol(colAmount).ToArg(expense.AmountToCents(v)))
	}
	if v, ok := patch.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol(colCategory).ToArg(v))
	}
	if v, ok := patch.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol(colDate).ToArg(v))
	}
	queryMods = append(queryMods,
		um.SetCol(colUpdatedAt).ToArg(patch.UpdatedAt),
		um.Where(sqlite.Quote(colID).EQ(sqlite.Arg(id))),
		um.Returning(columns...),
	)
	return sqlite.Update(queryMods...)
}

func (sqliteDialect) delete(id int64) bob.Query {
	return sqlite.Delete(
		dm.From(tableName),
		dm.Where(sqlite.Quote(colID).EQ(sqlite.Arg(id))),
	)
}
