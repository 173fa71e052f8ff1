package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "December Chase", want: "December Chase"},
		{name: "single quote", input: "Bob's statement", want: `Bob\'s statement`},
		{name: "backslash", input: `a\b`, want: `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeQuery(tt.input))
		})
	}
}
