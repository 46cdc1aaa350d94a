package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Log      LogConfig      `koanf:"log"`
	Store    StoreConfig    `koanf:"store"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	Operator OperatorConfig `koanf:"operator"`
	// Timezone is the IANA zone that decides what "today" is for date validation.
	Timezone string `koanf:"timezone"`
}

type HTTPConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type StoreConfig struct {
	Driver      string `koanf:"driver"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type OperatorConfig struct {
	Workers   int `koanf:"workers"`
	QueueSize int `koanf:"queue_size"`
}

// In all cases the default behavior should work for a local run or the docker compose setup.
func defaults() map[string]any {
	return map[string]any{
		"http.port":             8080,
		"http.read_timeout":     "10s",
		"http.write_timeout":    "10s",
		"http.shutdown_timeout": "15s",
		"log.level":             "info",
		"store.driver":          DriverSQLite,
		"store.auto_migrate":    true,
		"sqlite.path":           "./data/expenses.db",
		"postgres.address":      "localhost",
		"postgres.port":         "5433",
		"postgres.db":           "postgres",
		"postgres.username":     "postgres",
		"postgres.password":     "testpassword",
		"operator.workers":      1,
		"operator.queue_size":   64,
		"timezone":              "Local",
	}
}

var envSections = []string{"http_", "log_", "store_", "sqlite_", "postgres_", "operator_"}

// envKey maps HTTP_READ_TIMEOUT to http.read_timeout. Variables outside the
// known sections are ignored.
func envKey(name string) string {
	key := strings.ToLower(name)
	if key == "timezone" {
		return key
	}
	for _, section := range envSections {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return ""
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then a .env file in the working directory, then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Store.Driver {
	case DriverSQLite:
		if c.SQLite.Path == "" {
			errs = append(errs, errors.New("sqlite.path is required"))
		}
	case DriverPostgres:
		if c.Postgres.Address == "" || c.Postgres.DB == "" {
			errs = append(errs, errors.New("postgres.address and postgres.db are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver %q unsupported", c.Store.Driver))
	}
	if c.Operator.Workers < 1 {
		errs = append(errs, errors.New("operator.workers must be at least 1"))
	}
	if c.Operator.QueueSize < 0 {
		errs = append(errs, errors.New("operator.queue_size must not be negative"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}

	return errors.Join(errs...)
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

// DSN builds a lib/pq connection URL.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     net.JoinHostPort(p.Address, p.Port),
		Path:     "/" + p.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// DSN builds a modernc sqlite connection string for a WAL-mode database file.
func (s SQLiteConfig) DSN() string {
	return "file:" + s.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate&_time_format=sqlite"
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders the effective configuration with secrets redacted.
func (c *Config) Dump() string {
	redacted := *c
	if redacted.Postgres.Password != "" {
		redacted.Postgres.Password = "********"
	}
	return dumper.Sdump(redacted)
}
