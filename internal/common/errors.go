// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors. Every failure in the pipeline wraps one of
// these sentinels; nothing below the tool boundary retries or recovers.
var (
	// ErrAuth indicates missing or invalid Google credentials.
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound indicates a file, folder, or spreadsheet id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDocument indicates an absent, unreadable, or invalid PDF.
	ErrDocument = errors.New("unreadable document")
	// ErrConfig indicates a missing required configuration value.
	ErrConfig = errors.New("missing configuration")
	// ErrValidation indicates malformed tool arguments.
	ErrValidation = errors.New("invalid argument")
)

// parseSnippetLen bounds how much of an undecodable model response is
// carried in a ParseError for diagnosis.
const parseSnippetLen = 500

// ParseError reports that the extraction model returned content that could
// not be decoded. It carries a bounded snippet of the offending text.
type ParseError struct {
	Err     error
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("undecodable model response: %v (response begins: %q)", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decode failure with a truncated view of the raw text.
func NewParseError(err error, raw string) error {
	snippet := raw
	if len(snippet) > parseSnippetLen {
		snippet = snippet[:parseSnippetLen]
	}
	return &ParseError{Err: err, Snippet: snippet}
}
