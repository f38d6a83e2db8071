package config

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "db.local")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("APP_ENV", "development")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "trivia-api", cfg.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, 20*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"Content-Type", "Authorization", "true"}, cfg.CORS.AllowedHeaders)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.True(t, cfg.TraceSQL(), "development traces SQL")
	assert.False(t, cfg.IsProduction())
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_USER", "")
	t.Setenv("PG_PASSWORD", "")
	t.Setenv("PG_DATABASE", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsZeroPool(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("PG_MAX_CONNS", "0")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestConnString(t *testing.T) {
	p := Postgres{Host: "h", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "require", MaxConns: 4}
	assert.Equal(t, "postgres://u:p@h:5433/d?pool_max_conns=4&sslmode=require", p.ConnString())
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=require", p.DSN())

	poolCfg, err := pgxpool.ParseConfig(p.ConnString())
	require.NoError(t, err)
	assert.Equal(t, int32(4), poolCfg.MaxConns)
	assert.NotContains(t, poolCfg.ConnConfig.RuntimeParams, "pool_max_conns")
}

func TestDSNHasNoPoolSettings(t *testing.T) {
	p := Postgres{Host: "db.local", Port: 5432, User: "trivia", Password: "secret", Database: "trivia", SSLMode: "disable", MaxConns: 10}

	connCfg, err := pgx.ParseConfig(p.DSN())
	require.NoError(t, err)
	assert.NotContains(t, connCfg.RuntimeParams, "pool_max_conns", "database/sql connections must not send pool keys to the server")
	assert.Equal(t, "db.local", connCfg.Host)
	assert.Equal(t, uint16(5432), connCfg.Port)
	assert.Equal(t, "trivia", connCfg.Database)
}

func TestDSNEscapesCredentials(t *testing.T) {
	p := Postgres{Host: "db.local", Port: 5432, User: "quiz admin", Password: `p@ss word 'q" /x?`, Database: "trivia", SSLMode: "disable", MaxConns: 2}

	connCfg, err := pgx.ParseConfig(p.DSN())
	require.NoError(t, err)
	assert.Equal(t, "quiz admin", connCfg.User)
	assert.Equal(t, `p@ss word 'q" /x?`, connCfg.Password)

	poolCfg, err := pgxpool.ParseConfig(p.ConnString())
	require.NoError(t, err)
	assert.Equal(t, `p@ss word 'q" /x?`, poolCfg.ConnConfig.Password)
}

func TestProductionDisablesTracing(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.TraceSQL())
}
