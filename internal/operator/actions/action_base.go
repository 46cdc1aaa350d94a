package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
)

// IAction is a unit of work run inside a single write transaction. Returning
// an error rolls the transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
