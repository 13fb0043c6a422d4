package output

import "passerelle/internal/domain"

// UsageReporter receives localization telemetry. Implementations must be
// safe for concurrent use.
type UsageReporter interface {
	// RecordResolution is called once per key lookup with its outcome.
	RecordResolution(res domain.Resolution)
	// RecordLoadFailure is called when loading a locale's table failed and
	// an empty table was recorded in its place.
	RecordLoadFailure(locale string, err error)
	// RecordSubstitution is called when a requested locale was not
	// available and the fallback locale was applied instead.
	RecordSubstitution(requested, effective string)
}
