package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"passerelle/pkg/langtag"
)

type Config struct {
	HTTPAddr      string
	Locales       []string
	DefaultLocale string
	LocalesDir    string
	LocalesURL    string
	StaticDir     string
	PrefsFile     string
	LogLevel      slog.Level
}

// Load charge la configuration depuis les variables d'environnement,
// applique les valeurs par défaut puis la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
		Locales:       splitList(os.Getenv("LOCALES")),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		LocalesDir:    os.Getenv("LOCALES_DIR"),
		LocalesURL:    os.Getenv("LOCALES_URL"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		PrefsFile:     os.Getenv("PREFS_FILE"),
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		// Valeur par défaut utile en local lorsque HTTP_ADDR n'est pas fournie.
		c.HTTPAddr = ":8080"
	}

	if len(c.Locales) == 0 {
		c.Locales = []string{"en", "fr"}
	}
	normalized := make([]string, 0, len(c.Locales))
	seen := make(map[string]bool, len(c.Locales))
	for _, raw := range c.Locales {
		id, ok := langtag.Normalize(raw)
		if !ok {
			return fmt.Errorf("config: LOCALES contient une locale invalide (%q)", raw)
		}
		if !seen[id] {
			seen[id] = true
			normalized = append(normalized, id)
		}
	}
	c.Locales = normalized

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = c.Locales[0]
	} else {
		id, ok := langtag.Normalize(c.DefaultLocale)
		if !ok {
			return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q)", c.DefaultLocale)
		}
		c.DefaultLocale = id
	}
	if !slices.Contains(c.Locales, c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE (%q) doit figurer dans LOCALES (%s)",
			c.DefaultLocale, strings.Join(c.Locales, ", "))
	}

	if c.LocalesDir != "" && c.LocalesURL != "" {
		return fmt.Errorf("config: LOCALES_DIR et LOCALES_URL sont exclusifs, ne fournir que l'un des deux")
	}
	if c.LocalesURL != "" {
		parsed, err := url.Parse(c.LocalesURL)
		if err != nil {
			return fmt.Errorf("config: LOCALES_URL invalide (%q): %w", c.LocalesURL, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("config: LOCALES_URL invalide (%q): schéma http(s) requis", c.LocalesURL)
		}
	}

	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
