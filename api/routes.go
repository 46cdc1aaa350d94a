package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/handlers/v1/expenses"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	HTTP    config.HTTPConfig
	Service *service.Service
	Storage pinger
}

// Handler builds the full route table.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	api := humago.New(mux, huma.DefaultConfig("Expense Server", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	expenseService := r.Service.Expense
	expenses.NewCreateExpenseHandler(expenseService).Register(api)
	expenses.NewGetExpenseHandler(expenseService).Register(api)
	expenses.NewUpdateExpenseHandler(expenseService).Register(api)
	expenses.NewDeleteExpenseHandler(expenseService).Register(api)
	expenses.NewListExpensesHandler(expenseService).Register(api)
	expenses.NewListDailyHandler(expenseService).Register(api)
	expenses.NewListMonthlyHandler(expenseService).Register(api)
	expenses.NewListCategoriesHandler(expenseService).Register(api)

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return otelhttp.NewHandler(mux, "expense-server")
}

// Serve listens on addr until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return r.serve(ctx, listener)
}

func (r *Rest) serve(ctx context.Context, listener net.Listener) error {
	server := http.Server{
		Handler:           r.Handler(),
		ReadTimeout:       r.HTTP.ReadTimeout,
		WriteTimeout:      r.HTTP.WriteTimeout,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("addr", listener.Addr().String()).Info("HttpServer.Serve.listening")
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
