package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		params map[string]string
		want   string
	}{
		{name: "no tokens", in: "Bonjour", params: map[string]string{"name": "Ama"}, want: "Bonjour"},
		{name: "single token", in: "Hello, {{name}}!", params: map[string]string{"name": "Ama"}, want: "Hello, Ama!"},
		{name: "repeated token", in: "{{x}} et {{x}}", params: map[string]string{"x": "a"}, want: "a et a"},
		{name: "several tokens", in: "Le {{date}} à {{time}}", params: map[string]string{"date": "12 mai", "time": "19h"}, want: "Le 12 mai à 19h"},
		{name: "missing param stays verbatim", in: "Hello, {{name}}!", params: map[string]string{"other": "x"}, want: "Hello, {{name}}!"},
		{name: "nil params", in: "Hello, {{name}}!", params: nil, want: "Hello, {{name}}!"},
		{name: "partial match", in: "{{a}} {{b}}", params: map[string]string{"a": "1"}, want: "1 {{b}}"},
		{name: "value is not rescanned", in: "{{a}}", params: map[string]string{"a": "{{b}}", "b": "nope"}, want: "{{b}}"},
		{name: "empty value", in: "x{{a}}y", params: map[string]string{"a": ""}, want: "xy"},
		{name: "underscore in name", in: "{{first_name}}", params: map[string]string{"first_name": "Ama"}, want: "Ama"},
		{name: "spaces break the token", in: "{{ name }}", params: map[string]string{"name": "Ama"}, want: "{{ name }}"},
		{name: "empty input", in: "", params: map[string]string{"name": "Ama"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.in, tt.params))
		})
	}
}
