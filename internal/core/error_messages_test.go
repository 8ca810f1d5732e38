package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "unknown format maps correctly",
			err:         fmt.Errorf("%w: %q", ErrUnknownFormat, "xml"),
			wantCode:    "EXP001",
			wantMessage: "The requested export format does not exist",
		},
		{
			name:        "disabled format maps correctly",
			err:         fmt.Errorf("export prestashop: %w", ErrFormatDisabled),
			wantCode:    "EXP002",
			wantMessage: "The requested export format is disabled",
		},
		{
			name:        "limiter timeout maps correctly",
			err:         ErrTooManyExports,
			wantCode:    "EXP003",
			wantMessage: "System is busy processing other exports",
		},
		{
			name:        "missing profile maps correctly",
			err:         ErrProfileNotFound,
			wantCode:    "PRF001",
			wantMessage: "Profile not found",
		},
		{
			name:        "preset delete maps correctly",
			err:         ErrPresetImmutable,
			wantCode:    "PRF003",
			wantMessage: "Built-in profiles cannot be changed",
		},
		{
			name:        "catalog not loaded maps correctly",
			err:         fmt.Errorf("snapshot: %w", ErrCatalogNotLoaded),
			wantCode:    "CAT001",
			wantMessage: "The catalog has not been loaded yet",
		},
		{
			name:        "database down maps to source unavailable",
			err:         errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantCode:    "CAT003",
			wantMessage: "The catalog source could not be reached",
		},
		{
			name:        "deadline maps correctly",
			err:         errors.New("load catalog: context deadline exceeded"),
			wantCode:    "REQ002",
			wantMessage: "Request timed out",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("CATALOG NOT LOADED"),
			wantCode:    "CAT001",
			wantMessage: "The catalog has not been loaded yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(ErrProfileNameRequired)

	expected := "A profile needs a name (Code: PRF002). Enter a name before saving the profile"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error is not user facing", nil, false},
		{"known error is user facing", ErrFormatDisabled, true},
		{"unknown error is not user facing", errors.New("random internal error xyz"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := NewUserError(nil); got != nil {
			t.Errorf("NewUserError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps technical error with user message", func(t *testing.T) {
		techErr := fmt.Errorf("delete profile: %w", ErrPresetImmutable)
		userErr := NewUserError(techErr)

		if userErr.Error() != "Built-in profiles cannot be changed" {
			t.Errorf("Error() = %q, want user message", userErr.Error())
		}
		if !errors.Is(userErr, ErrPresetImmutable) {
			t.Error("Unwrap() should expose the sentinel")
		}
	})
}
