package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/clock"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/expense"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

// 2024-06-15 local noon
var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	svc   *ExpenseService
	store *storage.Storage
	clock *clock.Manual
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{
		Store:  config.StoreConfig{Driver: config.DriverSQLite, AutoMigrate: true},
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "service.db")},
	}
	store, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	delegator := operator.NewOperatorDelegator(store, 1, 8, logger)
	delegator.Start()

	t.Cleanup(func() {
		delegator.Stop()
		store.Close()
	})

	clk := clock.NewManual(fixedNow)
	svc := NewService(store, delegator, clk, time.UTC)
	return &testEnv{svc: svc.Expense, store: store, clock: clk}
}

func (e *testEnv) count(t *testing.T) int64 {
	t.Helper()
	n, err := e.store.Read().Expenses.Count(context.Background())
	require.NoError(t, err)
	return n
}

func (e *testEnv) create(t *testing.T, date string) *expense.Expense {
	t.Helper()
	c := candidate()
	c.Date = omit.From(date)
	created, err := e.svc.CreateExpense(context.Background(), c)
	require.NoError(t, err)
	return created
}

func candidate() expense.Candidate {
	return expense.Candidate{
		Description: omit.From("  Coffee beans "),
		Amount:      omit.From("12.5"),
		Category:    omit.From("Groceries"),
		Date:        omit.From("2024-06-10"),
	}
}

func requireValidation(t *testing.T, err error, field string) *expense.ValidationError {
	t.Helper()
	var verr *expense.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, field, verr.Field)
	assert.True(t, strings.HasPrefix(verr.Message, field+" "), verr.Message)
	return verr
}

func requireNotFound(t *testing.T, err error, id int64) {
	t.Helper()
	var nf *expense.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, id, nf.ID)
}

// -- CreateExpense tests --

func TestCreateExpense_Success(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.svc.CreateExpense(context.Background(), candidate())

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Coffee beans", created.Description)
	assert.Equal(t, "12.50", expense.FormatAmount(created.Amount))
	assert.Equal(t, expense.CategoryGroceries, created.Category)
	assert.Equal(t, "2024-06-10", created.Date.String())
	assert.True(t, fixedNow.Equal(created.CreatedAt))
	assert.True(t, fixedNow.Equal(created.UpdatedAt))
	assert.Equal(t, int64(1), env.count(t))
}

func TestCreateExpense_InvalidLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "2024-06-01")

	tests := []struct {
		name  string
		edit  func(*expense.Candidate)
		field string
	}{
		{"missing description", func(c *expense.Candidate) { c.Description = omit.Val[string]{} }, expense.FieldDescription},
		{"blank description", func(c *expense.Candidate) { c.Description = omit.From("   ") }, expense.FieldDescription},
		{"long description", func(c *expense.Candidate) { c.Description = omit.From(strings.Repeat("a", 201)) }, expense.FieldDescription},
		{"missing amount", func(c *expense.Candidate) { c.Amount = omit.Val[string]{} }, expense.FieldAmount},
		{"negative amount", func(c *expense.Candidate) { c.Amount = omit.From("-0.01") }, expense.FieldAmount},
		{"amount too large", func(c *expense.Candidate) { c.Amount = omit.From("1000000.00") }, expense.FieldAmount},
		{"missing category", func(c *expense.Candidate) { c.Category = omit.Val[string]{} }, expense.FieldCategory},
		{"unknown category", func(c *expense.Candidate) { c.Category = omit.From("Snacks") }, expense.FieldCategory},
		{"missing date", func(c *expense.Candidate) { c.Date = omit.Val[string]{} }, expense.FieldDate},
		{"future date", func(c *expense.Candidate) { c.Date = omit.From("2024-06-16") }, expense.FieldDate},
		{"old date", func(c *expense.Candidate) { c.Date = omit.From("1999-12-31") }, expense.FieldDate},
		{"bad date", func(c *expense.Candidate) { c.Date = omit.From("15/06/2024") }, expense.FieldDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate()
			tt.edit(&c)

			_, err := env.svc.CreateExpense(context.Background(), c)

			requireValidation(t, err, tt.field)
			assert.Equal(t, int64(1), env.count(t))
		})
	}
}

func TestCreateExpense_CategoryNotInSet(t *testing.T) {
	env := newTestEnv(t)
	c := candidate()
	c.Category = omit.From("Snacks")

	_, err := env.svc.CreateExpense(context.Background(), c)

	verr := requireValidation(t, err, expense.FieldCategory)
	assert.Equal(t, "category invalid", verr.Message)
}

func TestCreateExpense_FutureDateAgainstClock(t *testing.T) {
	env := newTestEnv(t)

	c := candidate()
	c.Date = omit.From("2024-06-16")
	_, err := env.svc.CreateExpense(context.Background(), c)
	verr := requireValidation(t, err, expense.FieldDate)
	assert.Equal(t, "date in future", verr.Message)

	c.Date = omit.From("2024-06-15")
	_, err = env.svc.CreateExpense(context.Background(), c)
	assert.NoError(t, err)

	// the next day the same date is accepted
	env.clock.Advance(24 * time.Hour)
	c.Date = omit.From("2024-06-16")
	_, err = env.svc.CreateExpense(context.Background(), c)
	assert.NoError(t, err)
}

func TestCreateExpense_TodayUsesLocation(t *testing.T) {
	env := newTestEnv(t)
	// 22:00 UTC on the 15th is already the 16th ten hours east
	env.clock.Set(time.Date(2024, 6, 15, 22, 0, 0, 0, time.UTC))
	env.svc.location = time.FixedZone("UTC+10", 10*60*60)

	c := candidate()
	c.Date = omit.From("2024-06-16")
	_, err := env.svc.CreateExpense(context.Background(), c)

	assert.NoError(t, err)
}

func TestCreateExpense_AmountBoundary(t *testing.T) {
	env := newTestEnv(t)

	c := candidate()
	c.Amount = omit.From("999999.99")
	created, err := env.svc.CreateExpense(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "999999.99", expense.FormatAmount(created.Amount))

	c.Amount = omit.From("1000000.00")
	_, err = env.svc.CreateExpense(context.Background(), c)
	requireValidation(t, err, expense.FieldAmount)

	c.Amount = omit.From("-0.01")
	_, err = env.svc.CreateExpense(context.Background(), c)
	requireValidation(t, err, expense.FieldAmount)
}

// -- GetExpense tests --

func TestGetExpense_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "2024-06-01")

	first, err := env.svc.GetExpense(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := env.svc.GetExpense(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, created, first)
}

func TestGetExpense_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetExpense(context.Background(), 12345)

	requireNotFound(t, err, 12345)
}

func TestGetExpense_StoreError(t *testing.T) {
	reader := expenses.NewMockIExpenseReader(t)
	svc := NewExpenseService(reader, nil, clock.NewManual(fixedNow), nil)
	storeErr := errors.New("database is locked")

	reader.EXPECT().FindByID(mock.Anything, int64(3)).Return(nil, storeErr)

	_, err := svc.GetExpense(context.Background(), 3)

	assert.ErrorIs(t, err, storeErr)
	var nf *expense.NotFoundError
	assert.False(t, errors.As(err, &nf))
}

// -- UpdateExpense tests --

func TestUpdateExpense_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "2024-06-01")
	env.clock.Advance(time.Minute)

	updated, err := env.svc.UpdateExpense(context.Background(), created.ID, expense.Candidate{
		Description: omit.From("X"),
	})
	require.NoError(t, err)

	got, err := env.svc.GetExpense(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "X", got.Description)
	assert.True(t, created.Amount.Equal(got.Amount))
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.Date, got.Date)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateExpense_UpdatedAtIncreasesWithStoppedClock(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "2024-06-01")

	first, err := env.svc.UpdateExpense(context.Background(), created.ID, expense.Candidate{Amount: omit.From("1")})
	require.NoError(t, err)
	second, err := env.svc.UpdateExpense(context.Background(), created.ID, expense.Candidate{Amount: omit.From("2")})
	require.NoError(t, err)

	assert.True(t, first.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestUpdateExpense_EmptyCandidateTouchesTimestampOnly(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "2024-06-01")
	env.clock.Advance(time.Second)

	updated, err := env.svc.UpdateExpense(context.Background(), created.ID, expense.Candidate{})

	require.NoError(t, err)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateExpense_Invalid(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "2024-06-01")

	_, err := env.svc.UpdateExpense(context.Background(), created.ID, expense.Candidate{
		Description: omit.From("Fine"),
		Category:    omit.From("Snacks"),
	})
	requireValidation(t, err, expense.FieldCategory)

	got, err := env.svc.GetExpense(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateExpense_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.UpdateExpense(context.Background(), 77, expense.Candidate{Description: omit.From("X")})

	requireNotFound(t, err, 77)
}

// -- DeleteExpense tests --

func TestDeleteExpense(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "2024-06-01")
	other := env.create(t, "2024-06-02")

	require.NoError(t, env.svc.DeleteExpense(context.Background(), created.ID))

	_, err := env.svc.GetExpense(context.Background(), created.ID)
	requireNotFound(t, err, created.ID)
	assert.Equal(t, int64(1), env.count(t))

	err = env.svc.DeleteExpense(context.Background(), created.ID)
	requireNotFound(t, err, created.ID)
	assert.Equal(t, int64(1), env.count(t))

	_, err = env.svc.GetExpense(context.Background(), other.ID)
	assert.NoError(t, err)
}

// -- List tests --

func listDates(list []*expense.Expense) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Date.String()
	}
	return out
}

func TestListExpenses_Ordering(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "2024-01-10")
	env.create(t, "2024-01-20")

	list, err := env.svc.ListExpenses(context.Background(), expense.Filter{})

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-20", "2024-01-10"}, listDates(list))
}

func TestListExpenses_SameDateNewestIDFirst(t *testing.T) {
	env := newTestEnv(t)
	first := env.create(t, "2024-01-10")
	second := env.create(t, "2024-01-10")

	list, err := env.svc.ListExpenses(context.Background(), expense.Filter{})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListMonthly_LeapYear(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "2024-01-31")
	env.create(t, "2024-02-01")
	env.create(t, "2024-02-29")
	env.create(t, "2024-03-01")

	list, err := env.svc.ListMonthly(context.Background(), 2024, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-29", "2024-02-01"}, listDates(list))
}

func TestListMonthly_InvalidMonth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ListMonthly(context.Background(), 2024, 13)

	requireValidation(t, err, expense.FieldMonth)
}

func TestListDaily(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "2024-05-04")
	env.create(t, "2024-05-05")

	list, err := env.svc.ListDaily(context.Background(), "2024-05-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-05"}, listDates(list))

	_, err = env.svc.ListDaily(context.Background(), "2024-5-5")
	requireValidation(t, err, expense.FieldDate)
}

func TestListExpenses_CategoryAndRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t, "2024-03-01")
	transport := candidate()
	transport.Category = omit.From("Transport")
	transport.Date = omit.From("2024-03-02")
	_, err := env.svc.CreateExpense(ctx, transport)
	require.NoError(t, err)
	env.create(t, "2024-04-01")

	list, err := env.svc.ListExpenses(ctx, expense.Filter{Category: omit.From("Groceries")})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-04-01", "2024-03-01"}, listDates(list))

	list, err = env.svc.ListExpenses(ctx, expense.Filter{
		StartDate: omit.From("2024-03-02"),
		EndDate:   omit.From("2024-03-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-02"}, listDates(list))

	list, err = env.svc.ListExpenses(ctx, expense.Filter{
		Category: omit.From("Groceries"),
		Year:     omit.From(2024),
		Month:    omit.From(3),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01"}, listDates(list))

	_, err = env.svc.ListExpenses(ctx, expense.Filter{Category: omit.From("Snacks")})
	requireValidation(t, err, expense.FieldCategory)
}

func TestListExpenses_StoreError(t *testing.T) {
	reader := expenses.NewMockIExpenseReader(t)
	svc := NewExpenseService(reader, nil, clock.NewManual(fixedNow), nil)
	storeErr := errors.New("connection reset")

	reader.EXPECT().List(mock.Anything, expense.Query{}).Return(nil, storeErr)

	_, err := svc.ListExpenses(context.Background(), expense.Filter{})

	assert.ErrorIs(t, err, storeErr)
}

// -- ListCategories tests --

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, []string{
		"Groceries",
		"Transport",
		"Housing and Utilities",
		"Restaurants and Cafes",
		"Health and Medicine",
		"Clothing & Footwear",
		"Entertainment",
	}, env.svc.ListCategories())
}
