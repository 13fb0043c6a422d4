package input

import (
	"context"

	"passerelle/internal/domain"
)

// Localizer is the use-case interface adapters consume: locale state, key
// resolution and raw table access. None of its methods fail; unknown
// locales fall back and unknown keys come back literally. Table is the one
// exception, so that adapters can distinguish a locale that was never
// configured.
type Localizer interface {
	// SetLocale switches the active locale and returns the locale actually
	// applied (the fallback when id names no loaded table).
	SetLocale(ctx context.Context, id string) string
	CurrentLocale() string
	FallbackLocale() string
	Locales() []string

	// Translate resolves key against the active locale, then the fallback
	// locale, then degrades to the literal key, substituting {{token}}
	// placeholders from params on the way out.
	Translate(key string, params map[string]string) string
	// TranslateIn is Translate pinned to an explicit locale.
	TranslateIn(locale, key string, params map[string]string) string
	// Resolve is TranslateIn with the full outcome attached.
	Resolve(locale, key string, params map[string]string) domain.Resolution

	// Table returns the loaded table for locale, or ErrLocaleNotLoaded.
	Table(locale string) (domain.TranslationTable, error)
}
