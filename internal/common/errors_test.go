package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestNewParseErrorTruncatesSnippet(t *testing.T) {
	raw := strings.Repeat("a", 1200)

	err := NewParseError(errors.New("unexpected end of JSON input"), raw)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Len(t, parseErr.Snippet, 500)
	assert.Contains(t, err.Error(), "undecodable model response")
}

func TestNewParseErrorShortSnippetKept(t *testing.T) {
	err := NewParseError(errors.New("boom"), "not json")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "not json", parseErr.Snippet)
	assert.EqualError(t, parseErr.Unwrap(), "boom")
}

func TestWrapAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "404 maps to not found", err: &googleapi.Error{Code: http.StatusNotFound}, want: ErrNotFound},
		{name: "401 maps to auth", err: &googleapi.Error{Code: http.StatusUnauthorized}, want: ErrAuth},
		{name: "403 maps to auth", err: &googleapi.Error{Code: http.StatusForbidden}, want: ErrAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapAPIError("op", fmt.Errorf("call failed: %w", tt.err))
			assert.ErrorIs(t, wrapped, tt.want)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		base := errors.New("connection reset")
		wrapped := WrapAPIError("op", base)
		assert.ErrorIs(t, wrapped, base)
		assert.NotErrorIs(t, wrapped, ErrNotFound)
	})
}
