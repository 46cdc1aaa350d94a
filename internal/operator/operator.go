package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

// writeStore opens the transaction each action runs in.
type writeStore interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writeStore
	queue   chan ActionItem
	logger  logrus.FieldLogger
}

func NewOperator(s writeStore, queue chan ActionItem, logger logrus.FieldLogger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// the caller may have given up while the item sat in the queue
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		o.logFailure(item, err)
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(item.ctx); rbErr != nil {
			o.logger.WithError(rbErr).Error("Operator.Rollback")
		}
		o.logFailure(item, err)
		return err
	}

	if err = writer.Commit(item.ctx); err != nil {
		o.logFailure(item, err)
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (o *Operator) logFailure(item ActionItem, err error) {
	entry := o.logger.WithError(err).WithField("action", fmt.Sprintf("%T", item.action))
	if isCallerError(err) {
		entry.Debug("action rejected")
		return
	}
	entry.Error("action failed")
}

// isCallerError reports errors caused by the request rather than the store.
func isCallerError(err error) bool {
	var verr *expense.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, expenses.ErrNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
