package expenses

import (
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/expense-server/internal/expense"
)

type postgresDialect struct{}

func (postgresDialect) findByID(id int64, forUpdate bool) bob.Query {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote(colID).EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	return psql.Select(queryMods...)
}

func (postgresDialect) list(query expense.Query) bob.Query {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if category, ok := query.Category.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote(colCategory).EQ(psql.Arg(category))))
	}
	if from, ok := query.From.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote(colDate).GTE(psql.Arg(from))))
	}
	if to, ok := query.To.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote(colDate).LTE(psql.Arg(to))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote(colDate)).Desc(),
		sm.OrderBy(psql.Quote(colID)).Desc(),
	)
	return psql.Select(queryMods...)
}

func (postgresDialect) count() bob.Query {
	return psql.Select(sm.Columns("count(*)"), sm.From(tableName))
}

func (postgresDialect) insert(create *NewExpense) bob.Query {
	return psql.Insert(
		im.Into(tableName, colDescription, colAmount, colCategory, colDate, colCreatedAt, colUpdatedAt),
		im.Values(
			psql.Arg(create.Description),
			psql.Arg(expense.AmountToCents(create.Amount)),
			psql.Arg(create.Category),
			psql.Arg(create.Date),
			psql.Arg(create.CreatedAt),
			psql.Arg(create.UpdatedAt),
		),
		im.Returning(columns...),
	)
}

func (postgresDialect) update(id int64, patch *Patch) bob.Query {
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
		um.Where(psql.Quote(colID).EQ(psql.Arg(id))),
		um.Returning(columns...),
	)
	return psql.Update(queryMods...)
}

func (postgresDialect) delete(id int64) bob.Query {
	return psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote(colID).EQ(psql.Arg(id))),
	)
}
