// Package metrics exposes localization telemetry as Prometheus collectors,
// served by the web adapter on /metrics.
package metrics

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"passerelle/internal/domain"
	"passerelle/internal/ports/output"
)

var (
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "i18n_resolutions_total",
			Help: "Key resolutions by serving locale and outcome",
		},
		[]string{"locale", "outcome"},
	)

	loadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "i18n_load_failures_total",
			Help: "Translation table loads that failed and were replaced by an empty table",
		},
		[]string{"locale"},
	)

	substitutionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "i18n_locale_substitutions_total",
			Help: "Locale selections that were replaced by the fallback locale",
		},
	)

	switchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "i18n_locale_switches_total",
			Help: "Locale changes by effective locale",
		},
		[]string{"locale"},
	)

	activeLocale = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "i18n_active_locale",
			Help: "1 for the currently active locale, 0 for every other configured locale",
		},
		[]string{"locale"},
	)
)

// Recorder implements both the usage-reporter and the locale-listener ports
// on top of the package collectors.
type Recorder struct {
	locales []string
}

var (
	_ output.UsageReporter  = (*Recorder)(nil)
	_ output.LocaleListener = (*Recorder)(nil)
)

func NewRecorder(locales []string) *Recorder {
	return &Recorder{locales: slices.Clone(locales)}
}

func (r *Recorder) RecordResolution(res domain.Resolution) {
	locale := res.Locale
	if locale == "" {
		locale = "none"
	}
	resolutionsTotal.WithLabelValues(locale, res.Outcome.String()).Inc()
}

func (r *Recorder) RecordLoadFailure(locale string, _ error) {
	loadFailuresTotal.WithLabelValues(locale).Inc()
}

func (r *Recorder) RecordSubstitution(_, _ string) {
	// The requested value is visitor input and unbounded, so it is not
	// used as a label.
	substitutionsTotal.Inc()
}

func (r *Recorder) LocaleChanged(locale string) {
	switchesTotal.WithLabelValues(locale).Inc()
	for _, id := range r.locales {
		var v float64
		if id == locale {
			v = 1
		}
		activeLocale.WithLabelValues(id).Set(v)
	}
}
