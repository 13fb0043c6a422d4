// Package langtag reduces language tags to the bare locale identifiers used
// across the site ("fr-CA", "fr_FR" and "FR" all become "fr").
package langtag

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize parses raw as a BCP 47 language tag and returns its lowercase
// base language subtag. ok is false when raw is empty, undetermined ("und")
// or not a well-formed tag.
func Normalize(raw string) (id string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	tag, err := language.Parse(raw)
	if err != nil || tag.IsRoot() {
		return "", false
	}

	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}
