package domain

import "strings"

// TranslationTable is the tree of translations for one locale. Interior
// nodes are nested tables, leaves are strings, as decoded from a JSON or
// TOML document. A table is never mutated after it is stored; reloads
// replace it wholesale.
type TranslationTable map[string]any

// Lookup walks the dot-separated key through nested tables and returns the
// string leaf it lands on. ok is false when a segment is missing, an
// intermediate value is not a table, or the final value is not a string.
func (t TranslationTable) Lookup(key string) (string, bool) {
	if len(t) == 0 || key == "" {
		return "", false
	}

	var node any = map[string]any(t)
	for _, segment := range strings.Split(key, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = table[segment]
		if !ok {
			return "", false
		}
	}

	leaf, ok := node.(string)
	return leaf, ok
}

// IsEmpty reports whether the table holds no entries, the shape recorded for
// a locale whose load failed.
func (t TranslationTable) IsEmpty() bool {
	return len(t) == 0
}
