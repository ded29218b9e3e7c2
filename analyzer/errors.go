package analyzer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/geo-audit/backend/fetcher"
)

// ErrorCode is the fixed failure taxonomy exposed to callers. The audit
// engine itself never fails on data shape; these codes classify
// collaborator failures.
type ErrorCode string

const (
	CodeFetch      ErrorCode = "FETCH_ERROR"
	CodeTimeout    ErrorCode = "TIMEOUT_ERROR"
	CodeParse      ErrorCode = "PARSE_ERROR"
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeConfig     ErrorCode = "CONFIG_ERROR"
	CodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AuditError wraps a collaborator failure with its taxonomy code.
type AuditError struct {
	Code ErrorCode
	Err  error
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

// normalizeError classifies an arbitrary failure into the taxonomy. An
// error that is already an *AuditError passes through unchanged.
func normalizeError(err error) *AuditError {
	var auditErr *AuditError
	if errors.As(err, &auditErr) {
		return auditErr
	}

	code := CodeUnknown
	var httpErr *fetcher.HTTPError
	var invalidHost url.InvalidHostError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		code = CodeTimeout
	case errors.As(err, &invalidHost):
		code = CodeValidation
	case errors.As(err, &httpErr):
		code = CodeFetch
	case errors.As(err, &netErr):
		code = CodeFetch
	}

	return &AuditError{Code: code, Err: err}
}
