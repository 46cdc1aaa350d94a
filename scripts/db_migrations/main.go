package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "apply the embedded schema migrations to the configured store",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", EnvVars: []string{"CONFIG_FILE"}},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
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
		"driver":               conn.Driver,
		"preMigrationVersion":  status.PreVersion,
		"postMigrationVersion": status.PostVersion,
	}).Info("Migration status")
	return nil
}
