package net

import (
	"net/http"

	perr "voicebooking/internal/platform/errors"
)

// Failure is the body of every error response.
// Error is the human readable message clients show; Code is the stable class
type Failure struct {
	Success   bool           `json:"success"`
	Error     string         `json:"error"`
	Code      perr.ErrorCode `json:"code"`
	Field     string         `json:"field,omitempty"`
	Message   string         `json:"message,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Fail maps err to a status and failure body
func Fail(err error, reqID string) (int, Failure) {
	if err == nil {
		err = perr.Internalf("unknown error")
	}
	status, w := perr.HTTP(err)
	return status, Failure{
		Error:     w.Message,
		Code:      w.Code,
		Field:     w.Field,
		RequestID: reqID,
	}
}

// Internal is the 500 body for unexpected failures; detail goes in Message
func Internal(detail, reqID string) (int, Failure) {
	return http.StatusInternalServerError, Failure{
		Error:     "Internal server error",
		Code:      perr.ErrorCodeUnknown,
		Message:   detail,
		RequestID: reqID,
	}
}
