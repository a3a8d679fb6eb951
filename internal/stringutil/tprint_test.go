package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTprintf(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		data     map[string]interface{}
		expected string
	}{
		{
			name:     "substitutes fields",
			tmpl:     "{{.appName}} list --page {{.page}}",
			data:     map[string]interface{}{"appName": "wisesaying", "page": 2},
			expected: "wisesaying list --page 2",
		},
		{
			name:     "missing fields render as no value",
			tmpl:     "{{.appName}}!",
			data:     map[string]interface{}{},
			expected: "<no value>!",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Tprintf(test.tmpl, test.data))
		})
	}
}
