package operator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *storage.Storage {
	t.Helper()
	cfg := &config.Config{
		Store:  config.StoreConfig{Driver: config.DriverSQLite, AutoMigrate: true},
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "operator.db")},
	}
	store, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestDelegator(t *testing.T, store *storage.Storage) (*OperatorDelegator, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := NewOperatorDelegator(store, 1, 4, logger)
	d.Start()
	t.Cleanup(d.Stop)
	return d, hook
}

func completeFields() expense.Fields {
	return expense.Fields{
		Description: omit.From("Groceries run"),
		Amount:      omit.From(decimal.RequireFromString("23.10")),
		Category:    omit.From(expense.CategoryGroceries),
		Date:        omit.From(expense.NewDate(2024, time.June, 14)),
	}
}

func count(t *testing.T, store *storage.Storage) int64 {
	t.Helper()
	n, err := store.Read().Expenses.Count(context.Background())
	require.NoError(t, err)
	return n
}

// failingAction inserts a row and then fails so the insert must be rolled back.
type failingAction struct{}

func (failingAction) Perform(ctx context.Context, writer *storage.Writer) error {
	create := &actions.CreateExpense{Fields: completeFields(), Now: testNow}
	if err := create.Perform(ctx, writer); err != nil {
		return err
	}
	return errors.New("disk on fire")
}

// -- Process tests --

func TestProcess_CreateExpense(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)

	action := &actions.CreateExpense{Fields: completeFields(), Now: testNow}
	require.NoError(t, d.Process(context.Background(), action))

	require.NotNil(t, action.Result)
	assert.NotZero(t, action.Result.ID)
	assert.Equal(t, "Groceries run", action.Result.Description)
	assert.Equal(t, int64(1), count(t, store))
}

func TestProcess_FailureRollsBack(t *testing.T) {
	store := newTestStore(t)
	d, hook := newTestDelegator(t, store)

	err := d.Process(context.Background(), failingAction{})

	assert.EqualError(t, err, "disk on fire")
	assert.Equal(t, int64(0), count(t, store))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestProcess_UpdateExpense(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)
	ctx := context.Background()

	create := &actions.CreateExpense{Fields: completeFields(), Now: testNow}
	require.NoError(t, d.Process(ctx, create))

	update := &actions.UpdateExpense{
		ID:        create.Result.ID,
		Candidate: expense.Candidate{Amount: omit.From("30")},
		Today:     expense.DateOf(testNow),
		// clock has not moved since the create
		Now: testNow,
	}
	require.NoError(t, d.Process(ctx, update))

	assert.Equal(t, "30.00", expense.FormatAmount(update.Result.Amount))
	assert.Equal(t, create.Result.Description, update.Result.Description)
	assert.True(t, update.Result.UpdatedAt.After(create.Result.UpdatedAt))
	assert.True(t, create.Result.CreatedAt.Equal(update.Result.CreatedAt))
}

func TestProcess_UpdateMissingIsNotFound(t *testing.T) {
	store := newTestStore(t)
	d, hook := newTestDelegator(t, store)

	err := d.Process(context.Background(), &actions.UpdateExpense{
		ID:        99,
		Candidate: expense.Candidate{Amount: omit.From("not a number")},
		Today:     expense.DateOf(testNow),
		Now:       testNow,
	})

	assert.ErrorIs(t, err, expenses.ErrNotFound)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestProcess_UpdateValidationRollsBack(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)
	ctx := context.Background()

	create := &actions.CreateExpense{Fields: completeFields(), Now: testNow}
	require.NoError(t, d.Process(ctx, create))

	err := d.Process(ctx, &actions.UpdateExpense{
		ID:        create.Result.ID,
		Candidate: expense.Candidate{Date: omit.From("2024-06-16")},
		Today:     expense.DateOf(testNow),
		Now:       testNow.Add(time.Minute),
	})

	var verr *expense.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date in future", verr.Message)

	stored, err := store.Read().Expenses.FindByID(ctx, create.Result.ID)
	require.NoError(t, err)
	assert.Equal(t, create.Result, stored)
}

func TestProcess_DeleteExpense(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)
	ctx := context.Background()

	create := &actions.CreateExpense{Fields: completeFields(), Now: testNow}
	require.NoError(t, d.Process(ctx, create))

	require.NoError(t, d.Process(ctx, &actions.DeleteExpense{ID: create.Result.ID}))
	assert.Equal(t, int64(0), count(t, store))

	err := d.Process(ctx, &actions.DeleteExpense{ID: create.Result.ID})
	assert.ErrorIs(t, err, expenses.ErrNotFound)
}

// -- lifecycle tests --

func TestProcess_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateExpense{Fields: completeFields(), Now: testNow})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)

	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateExpense{Fields: completeFields(), Now: testNow})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentWritesAllLand(t *testing.T) {
	store := newTestStore(t)
	d, _ := newTestDelegator(t, store)

	const writers = 20
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			errs <- d.Process(context.Background(), &actions.CreateExpense{Fields: completeFields(), Now: testNow})
		}()
	}
	for i := 0; i < writers; i++ {
		assert.NoError(t, <-errs)
	}
	assert.Equal(t, int64(writers), count(t, store))
}
