package latticebit

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormatErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     *FormatError
		wantMsg string
	}{
		{
			name:    "signature mismatch",
			err:     &FormatError{Kind: SignatureMismatch, Offset: 0, Detail: `"LSXX"`},
			wantMsg: "wrong file signature",
		},
		{
			name:    "marker missing",
			err:     &FormatError{Kind: MarkerMissing, Offset: 4},
			wantMsg: "comment marker not found",
		},
		{
			name:    "preamble not found",
			err:     &FormatError{Kind: PreambleNotFound, Offset: 6},
			wantMsg: "preamble not found",
		},
		{
			name:    "preamble key not found",
			err:     &FormatError{Kind: PreambleKeyNotFound, Offset: 10},
			wantMsg: "preamble key not found",
		},
		{
			name:    "invalid preamble key",
			err:     &FormatError{Kind: InvalidPreambleKey, Offset: 42, Detail: "0xAA"},
			wantMsg: "wrong preamble key",
		},
		{
			name:    "preamble word mismatch",
			err:     &FormatError{Kind: PreambleWordMismatch, Offset: 43, Detail: "0xB3BDFF00"},
			wantMsg: "missing preamble",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			if !strings.Contains(errMsg, tt.wantMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.wantMsg, errMsg)
			}
			if !strings.Contains(errMsg, fmt.Sprintf("offset %d", tt.err.Offset)) {
				t.Errorf("error message should contain the offset, got: %s", errMsg)
			}
			if tt.err.Detail != "" && !strings.Contains(errMsg, tt.err.Detail) {
				t.Errorf("error message should contain detail %q, got: %s", tt.err.Detail, errMsg)
			}
		})
	}
}

func TestIsFormatError(t *testing.T) {
	err := &FormatError{Kind: MarkerMissing, Offset: 0}

	if !IsFormatError(err) {
		t.Errorf("IsFormatError should be true for *FormatError")
	}
	if !IsFormatError(fmt.Errorf("parse: %w", err)) {
		t.Errorf("IsFormatError should be true for a wrapped *FormatError")
	}
	if IsFormatError(errors.New("other")) {
		t.Errorf("IsFormatError should be false for unrelated errors")
	}
	if IsFormatError(nil) {
		t.Errorf("IsFormatError should be false for nil")
	}
}

func TestErrorTypes(t *testing.T) {
	// Test that FormatError implements error interface
	var _ error = &FormatError{}
}
