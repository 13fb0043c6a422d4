package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"passerelle/internal/domain"
	"passerelle/internal/ports/input"
	"passerelle/internal/ports/output"
	"passerelle/pkg/interpolate"
	"passerelle/pkg/langtag"
)

// Ensure the service implements the input port consumed by adapters.
var _ input.Localizer = (*LocalizationService)(nil)

// LocalizationService owns the locale state of the site: which locales are
// configured, which one is active, and the translation table loaded for each.
// It is safe for concurrent use by the HTTP adapter.
type LocalizationService struct {
	loader output.TableLoader
	prefs  output.PreferenceStore
	host   output.HostLocale
	usage  output.UsageReporter
	log    *slog.Logger

	locales  []string
	fallback string

	mu        sync.RWMutex
	registry  *domain.Registry
	active    string
	listeners []output.LocaleListener
}

// NewLocalizationService builds the service for the given locale set. The
// configured identifiers are normalized and deduplicated, and the fallback
// locale is always part of the set. Before Initialize runs, the registry is
// empty and every lookup degrades to the literal key.
func NewLocalizationService(
	locales []string,
	fallback string,
	loader output.TableLoader,
	prefs output.PreferenceStore,
	host output.HostLocale,
	usage output.UsageReporter,
	logger *slog.Logger,
) *LocalizationService {
	if logger == nil {
		logger = slog.Default()
	}

	fb, ok := langtag.Normalize(fallback)
	if !ok {
		fb = "en"
	}

	ids := make([]string, 0, len(locales)+1)
	seen := make(map[string]bool, len(locales)+1)
	for _, raw := range locales {
		if id, ok := langtag.Normalize(raw); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if !seen[fb] {
		ids = append(ids, fb)
	}

	return &LocalizationService{
		loader:   loader,
		prefs:    prefs,
		host:     host,
		usage:    usage,
		log:      logger,
		locales:  ids,
		fallback: fb,
		registry: domain.NewRegistry(),
		active:   fb,
	}
}

// Subscribe registers a listener that is notified after every locale change.
func (s *LocalizationService) Subscribe(l output.LocaleListener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Initialize loads a table for every configured locale, then applies the
// initial locale: the persisted preference if it names a configured locale,
// otherwise the host environment's language, otherwise the fallback. Every
// failure along the way is a recorded degradation, never a fatal error, so
// Initialize has nothing to return.
func (s *LocalizationService) Initialize(ctx context.Context) {
	loaded := s.loadAll(ctx)
	s.log.Info("🌐 Traductions chargées",
		"locales", s.locales,
		"tables", loaded,
		"repli", s.fallback)

	initial, source := s.fallback, "défaut"
	if id, ok := s.storedPreference(ctx); ok {
		initial, source = id, "préférence"
	} else if id, ok := s.hostLanguage(); ok {
		initial, source = id, "environnement"
	}
	s.log.Info("🏁 Locale initiale", "locale", initial, "source", source)

	s.SetLocale(ctx, initial)
}

// Reload re-runs the load batch, replacing every table wholesale. The active
// locale is kept and listeners are notified so renderers pick up the new
// content.
func (s *LocalizationService) Reload(ctx context.Context) {
	loaded := s.loadAll(ctx)

	s.mu.RLock()
	active := s.active
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()

	s.log.Info("🔄 Traductions rechargées", "tables", loaded, "locale", active)
	for _, l := range listeners {
		l.LocaleChanged(active)
	}
}

// loadAll fetches every configured locale concurrently and stores the
// results, substituting an empty table for each failed load. It returns the
// number of non-empty tables.
func (s *LocalizationService) loadAll(ctx context.Context) int {
	tables := make([]domain.TranslationTable, len(s.locales))

	if s.loader == nil {
		s.log.Warn("⚠️ Aucun chargeur de traductions configuré, tables vides")
	} else {
		var wg sync.WaitGroup
		for i, locale := range s.locales {
			wg.Add(1)
			go func() {
				defer wg.Done()
				table, err := s.loader.Load(ctx, locale)
				if err != nil {
					s.log.Warn("⚠️ Chargement de la locale échoué", "locale", locale, "err", err)
					if locale == s.fallback {
						s.log.Warn("⚠️ Locale de repli indisponible, les clés seront renvoyées telles quelles", "locale", locale)
					}
					s.reportLoadFailure(locale, err)
					table = domain.TranslationTable{}
				}
				tables[i] = table
			}()
		}
		wg.Wait()
	}

	loaded := 0
	s.mu.Lock()
	for i, locale := range s.locales {
		s.registry.Put(locale, tables[i])
		if !tables[i].IsEmpty() {
			loaded++
		}
	}
	s.mu.Unlock()
	return loaded
}

// SetLocale switches the active locale. Identifiers are normalized first;
// anything that does not name a loaded table (an unconfigured locale, or any
// call before Initialize) is replaced by the fallback locale. The effective
// locale is persisted best-effort, broadcast to listeners and returned.
func (s *LocalizationService) SetLocale(ctx context.Context, id string) string {
	normalized, _ := langtag.Normalize(id)

	s.mu.Lock()
	effective := normalized
	if !s.registry.Has(effective) {
		effective = s.fallback
	}
	substituted := effective != normalized
	s.active = effective
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	if substituted {
		s.log.Warn("⚠️ Locale indisponible, repli appliqué", "requested", id, "effective", effective)
		s.reportSubstitution(id, effective)
	}

	if s.prefs != nil {
		s.prefs.Put(ctx, effective)
	}
	for _, l := range listeners {
		l.LocaleChanged(effective)
	}
	return effective
}

// Translate resolves key against the active locale with fallback and
// placeholder substitution. It always returns a string; the worst case is
// the literal key.
func (s *LocalizationService) Translate(key string, params map[string]string) string {
	return s.Resolve(s.CurrentLocale(), key, params).Text
}

// TranslateIn is Translate pinned to an explicit locale.
func (s *LocalizationService) TranslateIn(locale, key string, params map[string]string) string {
	return s.Resolve(locale, key, params).Text
}

// Resolve performs the full lookup: the pinned locale's table, then the
// fallback locale's table, then the literal key. Placeholders are only
// substituted in resolved strings, never in a returned key. The outcome is
// reported to the usage reporter.
func (s *LocalizationService) Resolve(locale, key string, params map[string]string) domain.Resolution {
	pinned, _ := langtag.Normalize(locale)

	s.mu.RLock()
	if !s.registry.Has(pinned) {
		pinned = s.fallback
	}
	pinnedTable, _ := s.registry.Table(pinned)
	fallbackTable, _ := s.registry.Table(s.fallback)
	fallback := s.fallback
	s.mu.RUnlock()

	res := domain.Resolution{Key: key, Outcome: domain.OutcomeMiss, Text: key}
	if text, ok := pinnedTable.Lookup(key); ok {
		res = domain.Resolution{Key: key, Locale: pinned, Outcome: domain.OutcomeActive, Text: text}
	} else if text, ok := fallbackTable.Lookup(key); ok {
		res = domain.Resolution{Key: key, Locale: fallback, Outcome: domain.OutcomeFallback, Text: text}
	}
	if res.Outcome != domain.OutcomeMiss {
		res.Text = interpolate.Apply(res.Text, params)
	}

	s.reportResolution(res)
	return res
}

// CurrentLocale returns the active locale (the fallback before Initialize).
func (s *LocalizationService) CurrentLocale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// FallbackLocale returns the designated fallback locale.
func (s *LocalizationService) FallbackLocale() string {
	return s.fallback
}

// Locales returns the configured locale identifiers in configuration order.
func (s *LocalizationService) Locales() []string {
	return slices.Clone(s.locales)
}

// Table returns the loaded table for locale, or ErrLocaleNotLoaded when the
// locale was never configured (or Initialize has not run).
func (s *LocalizationService) Table(locale string) (domain.TranslationTable, error) {
	normalized, ok := langtag.Normalize(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrLocaleNotLoaded, locale)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	table, found := s.registry.Table(normalized)
	if !found {
		return nil, fmt.Errorf("%w: %q", domain.ErrLocaleNotLoaded, locale)
	}
	return table, nil
}

func (s *LocalizationService) storedPreference(ctx context.Context) (string, bool) {
	if s.prefs == nil {
		return "", false
	}
	raw, ok := s.prefs.Get(ctx)
	if !ok {
		return "", false
	}
	return s.knownLocale(raw)
}

func (s *LocalizationService) hostLanguage() (string, bool) {
	if s.host == nil {
		return "", false
	}
	raw, ok := s.host.Primary()
	if !ok {
		return "", false
	}
	return s.knownLocale(raw)
}

// knownLocale normalizes raw and keeps it only when a table is loaded for it.
func (s *LocalizationService) knownLocale(raw string) (string, bool) {
	id, ok := langtag.Normalize(raw)
	if !ok {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.registry.Has(id) {
		return "", false
	}
	return id, true
}

func (s *LocalizationService) reportResolution(res domain.Resolution) {
	if s.usage != nil {
		s.usage.RecordResolution(res)
	}
}

func (s *LocalizationService) reportLoadFailure(locale string, err error) {
	if s.usage != nil {
		s.usage.RecordLoadFailure(locale, err)
	}
}

func (s *LocalizationService) reportSubstitution(requested, effective string) {
	if s.usage != nil {
		s.usage.RecordSubstitution(requested, effective)
	}
}
