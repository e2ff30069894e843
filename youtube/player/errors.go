package player

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCannotFetchTestVideo   = "CANNOT_FETCH_TEST_VIDEO"
	ErrCodeCannotMatchPlayerID    = "CANNOT_MATCH_PLAYER_ID"
	ErrCodeCannotFetchPlayerJS    = "CANNOT_FETCH_PLAYER_JS"
	ErrCodeNsigRegexCompileFailed = "NSIG_REGEX_COMPILE_FAILED"
	ErrCodePlayerAlreadyUpdated   = "PLAYER_ALREADY_UPDATED"
)

// Error is a typed update-pipeline outcome with code and optional details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	type Alias Error
	return json.Marshal(&struct {
		*Alias
		Error string `json:"error"`
	}{
		Alias: (*Alias)(e),
		Error: e.Error(),
	})
}

// NewError creates a new Error with the given code and message.
func NewError(code string, message string, details ...any) *Error {
	e := &Error{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func errorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsAlreadyUpdated reports the informational outcome: the resolved player ID
// matched the cache, and only the cache timestamp was refreshed.
func IsAlreadyUpdated(err error) bool {
	return errorCode(err) == ErrCodePlayerAlreadyUpdated
}

// IsFetchFailure returns true if the error is a transport failure for either
// the test page or the player bundle.
func IsFetchFailure(err error) bool {
	c := errorCode(err)
	return c == ErrCodeCannotFetchTestVideo || c == ErrCodeCannotFetchPlayerJS
}

// IsExtractionFailure returns true if a structural extraction step exhausted
// all candidates or a derived matcher failed to construct.
func IsExtractionFailure(err error) bool {
	return errorCode(err) == ErrCodeNsigRegexCompileFailed
}
