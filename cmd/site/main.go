package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"passerelle/internal/adapters/web"
	"passerelle/internal/application"
	"passerelle/internal/config"
	"passerelle/internal/infrastructure/hostlocale"
	"passerelle/internal/infrastructure/metrics"
	"passerelle/internal/infrastructure/preferences"
	"passerelle/internal/infrastructure/tableloader"
	"passerelle/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ Configuration invalide", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)

	recorder := metrics.NewRecorder(cfg.Locales)
	svc := application.NewLocalizationService(
		cfg.Locales,
		cfg.DefaultLocale,
		newLoader(cfg, logger),
		newPreferences(cfg, logger),
		hostlocale.NewEnvDetector(),
		recorder,
		logger,
	)
	svc.Subscribe(recorder)
	svc.Subscribe(output.ListenerFunc(func(locale string) {
		logger.Info("🌍 Locale active", "locale", locale)
	}))
	svc.Initialize(context.Background())

	srv := web.NewServer(cfg, svc, logger)
	srv.OnReload = svc.Reload
	if err := srv.Start(); err != nil {
		logger.Error("❌ Erreur du serveur HTTP", "error", err)
		os.Exit(1)
	}
}

// newLoader picks the translation source: a remote origin, a local directory,
// or the documents embedded in the binary.
func newLoader(cfg *config.Config, logger *slog.Logger) output.TableLoader {
	switch {
	case cfg.LocalesURL != "":
		return tableloader.NewHTTPLoader(cfg.LocalesURL, nil, logger)
	case cfg.LocalesDir != "":
		return tableloader.NewFSLoader(os.DirFS(cfg.LocalesDir), logger)
	default:
		return tableloader.Embedded(logger)
	}
}

func newPreferences(cfg *config.Config, logger *slog.Logger) output.PreferenceStore {
	if cfg.PrefsFile != "" {
		return preferences.NewFileStore(cfg.PrefsFile, logger)
	}
	return preferences.NewMemoryStore()
}
