package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference.
//
// # Error Codes Reference
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - Unknown format: The requested export format does not exist
//	         Action: Use one of json, csv, woocommerce, prestashop
//	         Patterns: "unknown export format"
//
//	EXP002 - Format disabled: The requested format is switched off
//	         Action: Enable the format in the export settings
//	         Patterns: "export format disabled"
//
//	EXP003 - System busy: Too many exports in progress
//	         Action: Please wait a moment and try again
//	         Patterns: "too many concurrent exports"
//
// # Profile Errors (PRF001-PRF099)
//
//	PRF001 - Profile not found
//	         Patterns: "profile not found"
//
//	PRF002 - Name required: A profile needs a name
//	         Patterns: "profile name required"
//
//	PRF003 - Preset profile: Built-in profiles cannot be changed
//	         Patterns: "preset profile is immutable"
//
// # Catalog Errors (CAT001-CAT099)
//
//	CAT001 - Not loaded: The catalog has not been loaded yet
//	         Patterns: "catalog not loaded"
//
//	CAT002 - Invalid catalog: The catalog source contains unusable rows
//	         Patterns: "invalid catalog"
//
//	CAT003 - Source unavailable: The catalog source could not be reached
//	         Patterns: "connection refused", "no such file"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Invalid request: The request could not be parsed
//	         Patterns: "invalid request"
//
//	REQ002 - Request cancelled or timed out
//	         Patterns: "context canceled", "context deadline exceeded"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// Patterns are matched case-insensitively with strings.Contains against the
// full error chain text. The first match wins.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Export
	{
		pattern: "unknown export format",
		msg: UserMessage{
			Message: "The requested export format does not exist",
			Action:  "Use one of json, csv, woocommerce, prestashop",
			Code:    "EXP001",
		},
	},
	{
		pattern: "export format disabled",
		msg: UserMessage{
			Message: "The requested export format is disabled",
			Action:  "Enable the format in the export settings",
			Code:    "EXP002",
		},
	},
	{
		pattern: "too many concurrent exports",
		msg: UserMessage{
			Message: "System is busy processing other exports",
			Action:  "Please wait a moment and try again",
			Code:    "EXP003",
		},
	},

	// Profiles
	{
		pattern: "profile not found",
		msg: UserMessage{
			Message: "Profile not found",
			Action:  "Refresh the profile list and pick an existing profile",
			Code:    "PRF001",
		},
	},
	{
		pattern: "profile name required",
		msg: UserMessage{
			Message: "A profile needs a name",
			Action:  "Enter a name before saving the profile",
			Code:    "PRF002",
		},
	},
	{
		pattern: "preset profile is immutable",
		msg: UserMessage{
			Message: "Built-in profiles cannot be changed",
			Action:  "Save a new profile instead",
			Code:    "PRF003",
		},
	},

	// Catalog
	{
		pattern: "catalog not loaded",
		msg: UserMessage{
			Message: "The catalog has not been loaded yet",
			Action:  "Refresh the catalog and try again",
			Code:    "CAT001",
		},
	},
	{
		pattern: "invalid catalog",
		msg: UserMessage{
			Message: "The catalog source contains unusable rows",
			Action:  "Check that every row has an Id",
			Code:    "CAT002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "The catalog source could not be reached",
			Action:  "Please try again in a few moments",
			Code:    "CAT003",
		},
	},
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "The catalog file could not be found",
			Action:  "Check the CATALOG_FILE setting",
			Code:    "CAT003",
		},
	},

	// Requests
	{
		pattern: "invalid request",
		msg: UserMessage{
			Message: "The request could not be parsed",
			Action:  "Check the request parameters",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Narrow the filters or try again later",
			Code:    "REQ002",
		},
	},

	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
//
// Example:
//
//	msg := MapError(fmt.Errorf("export: %w", ErrFormatDisabled))
//	// msg.Code == "EXP002"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
