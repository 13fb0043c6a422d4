// Package interpolate substitutes {{name}} placeholders in translated
// strings.
package interpolate

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Apply replaces every {{name}} token in s with params["name"]. Tokens with
// no matching entry are left verbatim, and substituted values are not
// rescanned, so a value that itself contains {{...}} comes through unchanged.
func Apply(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}

	return tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := params[name]; ok {
			return value
		}
		return token
	})
}
