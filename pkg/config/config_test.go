package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv vacía las variables que leen los tests; viper trata el valor vacío como no definido.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"JWT_SECRET", "BCRYPT_COST", "PORT", "HTTP_PORT", "REDIS_ADDR",
		"DATABASE_URL", "LOGIN_RATE_LIMIT", "APP_ENV", "PASSWORD_NORTE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_RequiereJWTSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10000, cfg.HTTP.Port)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 20, cfg.Security.LoginRateLimit)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "0.0.0.0:10000", cfg.HTTP.Addr())
}

func TestLoad_PortPrioritario(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_BcryptCostMinimo(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("BCRYPT_COST", "8")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestLoad_LoginRateLimitCeroDesactiva(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("LOGIN_RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Security.LoginRateLimit)
}

func TestLoad_LoginRateLimitNegativo(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("LOGIN_RATE_LIMIT", "-5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGIN_RATE_LIMIT")
}

func TestLookup(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("PASSWORD_NORTE", "clave-norte-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "clave-norte-1", cfg.Lookup("PASSWORD_NORTE"))
	assert.Empty(t, cfg.Lookup("PASSWORD_SUR"))
	assert.Empty(t, (&Config{}).Lookup("PASSWORD_NORTE"))
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "vales", Password: "p@ss/word", DBName: "vales", SSLMode: "disable"}
	assert.Equal(t, "postgres://vales:p%40ss%2Fword@db:5432/vales?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
