package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/clock"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "expense-server",
		Usage: "record and query personal expenses over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional YAML config file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending schema migrations and exit",
				Action: migrate,
			},
			{
				Name:   "config",
				Usage:  "print the effective configuration",
				Action: printConfig,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("expense-server")
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := logging.SetupLogging(cfg.Log.Level)
	logger.WithField("driver", cfg.Store.Driver).Info("expense-server starting")

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage.Open: %w", err)
	}
	defer store.Close()

	delegator := operator.NewOperatorDelegator(store, cfg.Operator.Workers, cfg.Operator.QueueSize, logger)
	delegator.Start()
	// runs after the server has drained, before the store closes
	defer delegator.Stop()

	svc := service.NewService(store, delegator, clock.System{}, location)

	httpRest := api.Rest{
		Logger:  logger,
		HTTP:    cfg.HTTP,
		Service: svc,
		Storage: store,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpRest.Serve(gctx, cfg.Addr())
	})

	err = g.Wait()
	logger.Info("expense-server stopped")
	return err
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := logging.SetupLogging(cfg.Log.Level)

	conn, err := storage.ConnectionFor(cfg)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.DriverSQLite {
		if err := storage.EnsureDir(cfg.SQLite.Path); err != nil {
			return err
		}
	}

	status, err := storage.Migrate(conn)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreVersion,
		"postMigrationVersion": status.PostVersion,
	}).Info("Migration status")
	return nil
}

func printConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, cfg.Dump())
	return cfg.Validate()
}
