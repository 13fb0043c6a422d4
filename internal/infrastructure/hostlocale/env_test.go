package hostlocale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		t.Setenv(key, "")
	}
}

func TestPrimary(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
		ok   bool
	}{
		{name: "nothing set", env: nil, ok: false},
		{name: "lang with charset", env: map[string]string{"LANG": "fr_FR.UTF-8"}, want: "fr_FR", ok: true},
		{name: "lang with modifier", env: map[string]string{"LANG": "fr_FR@euro"}, want: "fr_FR", ok: true},
		{name: "lc_all wins over lang", env: map[string]string{"LC_ALL": "en_CA.UTF-8", "LANG": "fr_FR.UTF-8"}, want: "en_CA", ok: true},
		{name: "lc_messages wins over lang", env: map[string]string{"LC_MESSAGES": "fr_CA", "LANG": "en_US"}, want: "fr_CA", ok: true},
		{name: "language list keeps first entry", env: map[string]string{"LANGUAGE": "fr:en:de"}, want: "fr", ok: true},
		{name: "C locale skipped", env: map[string]string{"LC_ALL": "C", "LANG": "fr_FR.UTF-8"}, want: "fr_FR", ok: true},
		{name: "posix locale skipped", env: map[string]string{"LANG": "POSIX"}, ok: false},
		{name: "c with charset skipped", env: map[string]string{"LANG": "C.UTF-8"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLocaleEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			got, ok := NewEnvDetector().Primary()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
