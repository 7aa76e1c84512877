package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns a config carrying the fields validate requires, used as
// the highest-priority source in builder tests.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/trips"}},
	}
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{App: App{TokenSignKey: "overridden", TokenIssuer: "fallback-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey, "first non-zero value should win")
	assert.Equal(t, "fallback-issuer", cfg.App.TokenIssuer, "later source should fill empty fields")
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.NotZero(t, cfg.App.BcryptCost)
}

func TestBuild_MissingSignKeyFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/trips"}},
	})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_MissingDSNFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestParseEnv_ReadsVariables(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/trips")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://env/trips", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid localhost", input: "localhost:8080", wantErr: false},
		{name: "valid ip", input: "127.0.0.1:9090", wantErr: false},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, a.String())
			}
		})
	}
}
