package expenses

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/expense"
)

// Dialect builds the expenses table queries for one SQL engine.
type Dialect interface {
	findByID(id int64, forUpdate bool) bob.Query
	list(query expense.Query) bob.Query
	count() bob.Query
	insert(create *NewExpense) bob.Query
	update(id int64, patch *Patch) bob.Query
	delete(id int64) bob.Query
}

var (
	SQLite   Dialect = sqliteDialect{}
	Postgres Dialect = postgresDialect{}
)
