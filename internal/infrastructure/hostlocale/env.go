// Package hostlocale detects the host environment's preferred language from
// the POSIX locale variables.
package hostlocale

import (
	"os"
	"strings"

	"passerelle/internal/ports/output"
)

var _ output.HostLocale = (*EnvDetector)(nil)

// EnvDetector reads LC_ALL, LC_MESSAGES, LANG then LANGUAGE, in that order.
type EnvDetector struct{}

func NewEnvDetector() *EnvDetector {
	return &EnvDetector{}
}

// Primary returns the first usable language tag found in the environment.
// POSIX decorations are stripped ("fr_FR.UTF-8" yields "fr_FR"), LANGUAGE
// priority lists keep their first entry, and the special "C"/"POSIX" values
// are skipped so a later variable can still apply.
func (d *EnvDetector) Primary() (string, bool) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if key == "LANGUAGE" {
			value, _, _ = strings.Cut(value, ":")
		}
		value, _, _ = strings.Cut(value, ".")
		value, _, _ = strings.Cut(value, "@")
		value = strings.TrimSpace(value)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		return value, true
	}
	return "", false
}
