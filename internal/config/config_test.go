package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "LOCALES", "DEFAULT_LOCALE",
		"LOCALES_DIR", "LOCALES_URL", "STATIC_DIR", "PREFS_FILE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"en", "fr"}, cfg.Locales)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Empty(t, cfg.LocalesDir)
	assert.Empty(t, cfg.LocalesURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadNormalizesLocales(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES", " FR-ca , en_US , fr ")
	t.Setenv("DEFAULT_LOCALE", "EN")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"fr", "en"}, cfg.Locales)
	assert.Equal(t, "en", cfg.DefaultLocale)
}

func TestLoadDefaultLocaleDefaultsToFirst(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES", "fr,en")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.DefaultLocale)
}

func TestLoadRejectsInvalidLocale(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES", "en;fr")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCALES")
}

func TestLoadRejectsForeignDefaultLocale(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES", "en,fr")
	t.Setenv("DEFAULT_LOCALE", "de")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_LOCALE")
}

func TestLoadRejectsBothSources(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES_DIR", "/srv/locales")
	t.Setenv("LOCALES_URL", "https://cdn.example.org/locales")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exclusifs")
}

func TestLoadRejectsBadLocalesURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES_URL", "ftp://cdn.example.org/locales")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCALES_URL")
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{raw: "debug", want: slog.LevelDebug},
		{raw: "Warn", want: slog.LevelWarn},
		{raw: "warning", want: slog.LevelWarn},
		{raw: "ERROR", want: slog.LevelError},
		{raw: "info", want: slog.LevelInfo},
		{raw: "", want: slog.LevelInfo},
		{raw: "nonsense", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.raw), tt.raw)
	}
}
