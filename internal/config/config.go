package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	HTTP     HTTP
	Postgres Postgres
	CORS     CORS
	OpenTDB  OpenTDB
}

// HTTP tunes the net/http server.
type HTTP struct {
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
	TraceSQL bool   `env:"PG_TRACE_SQL" envDefault:"false"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,PUT,POST,DELETE,PATCH,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization,true"`
}

// OpenTDB points the seed command at the Open Trivia DB.
type OpenTDB struct {
	BaseURL string        `env:"OPENTDB_BASE_URL" envDefault:"https://opentdb.com"`
	Timeout time.Duration `env:"OPENTDB_TIMEOUT" envDefault:"5s"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Postgres.MaxConns < 1 {
		return nil, fmt.Errorf("PG_MAX_CONNS must be at least 1")
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production defaults.
func (a *App) IsProduction() bool {
	return a.Env == "production"
}

// TraceSQL reports whether every SQL statement should be logged.
func (a *App) TraceSQL() bool {
	return a.Postgres.TraceSQL || a.Env == "development"
}

// DSN renders a postgres:// URL with no pool settings, suitable for
// database/sql through the pgx stdlib driver.
func (p Postgres) DSN() string {
	return p.url(url.Values{"sslmode": {p.SSLMode}})
}

// ConnString is DSN plus pool_max_conns, for pgxpool.ParseConfig only.
func (p Postgres) ConnString() string {
	return p.url(url.Values{
		"sslmode":        {p.SSLMode},
		"pool_max_conns": {strconv.Itoa(p.MaxConns)},
	})
}

func (p Postgres) url(query url.Values) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}
