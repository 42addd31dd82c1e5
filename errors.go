package etherscan

import (
	"fmt"
)

// ErrorKind classifies an APIError. Every failure surfaced by the SDK
// carries exactly one kind; callers branch on it via errors.Is against the
// sentinel errors below or by inspecting APIError.Kind directly.
type ErrorKind string

const (
	// ErrorKindNetwork covers transport-level failures: timeouts, resets,
	// DNS errors, refused connections. The only kind retried internally.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindHTTP is a non-2xx response from the remote service.
	ErrorKindHTTP ErrorKind = "http"
	// ErrorKindContentType is a response with an unexpected Content-Type.
	ErrorKindContentType ErrorKind = "content_type"
	// ErrorKindResponseTooLarge is a response exceeding the byte budget.
	ErrorKindResponseTooLarge ErrorKind = "response_too_large"
	// ErrorKindAPI is a business-level failure reported in the envelope.
	ErrorKindAPI ErrorKind = "api"
	// ErrorKindRateLimit is a rate-limit rejection reported by the remote.
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindUpgradeRequired means the endpoint needs a paid plan.
	ErrorKindUpgradeRequired ErrorKind = "upgrade_required"
	// ErrorKindValidation covers both local parameter validation and
	// response schema validation failures.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindUnsupported means the method is not available on the
	// configured chain.
	ErrorKindUnsupported ErrorKind = "unsupported"
	// ErrorKindClosed is returned by every method after Close.
	ErrorKindClosed ErrorKind = "closed"
	// ErrorKindEndpoint is a rejected endpoint URL (insecure scheme or
	// host outside the allowlist).
	ErrorKindEndpoint ErrorKind = "endpoint"
)

// Sentinel errors for errors.Is matching by kind.
var (
	ErrNetwork         = &APIError{Kind: ErrorKindNetwork, Code: "network_error"}
	ErrRateLimited     = &APIError{Kind: ErrorKindRateLimit, Code: "rate_limited"}
	ErrUpgradeRequired = &APIError{Kind: ErrorKindUpgradeRequired, Code: "upgrade_required"}
	ErrValidation      = &APIError{Kind: ErrorKindValidation, Code: "validation_failed"}
	ErrUnsupported     = &APIError{Kind: ErrorKindUnsupported, Code: "unsupported_method"}
	ErrClosed          = &APIError{Kind: ErrorKindClosed, Code: "client_closed", Message: "client has been closed"}
)

// APIError is the single error type surfaced by the SDK.
type APIError struct {
	// Kind is the failure class.
	Kind ErrorKind
	// Code is a short machine-readable identifier within the kind.
	Code string
	// Status is the HTTP status code when one was observed, else 0.
	Status int
	// Message is a human-readable description. Messages derived from
	// remote text have been sanitized (secrets, paths and addresses
	// redacted).
	Message string

	cause   error
	detail  string
	verbose bool
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("etherscan: %s: %s", e.Kind, e.Message)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is matches on Kind so sentinel comparisons like
// errors.Is(err, ErrRateLimited) work regardless of message or status.
func (e *APIError) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Detail returns the raw diagnostic payload attached at detection time
// (remote error body, decode context). It is only populated when the
// client runs with debug enabled; otherwise a generic placeholder is
// returned so production logs never echo remote internals.
func (e *APIError) Detail() string {
	if e == nil {
		return ""
	}
	if !e.verbose || e.detail == "" {
		return "detail withheld (enable debug mode for diagnostics)"
	}
	return e.detail
}

func newError(kind ErrorKind, code string, status int, message string) *APIError {
	return &APIError{Kind: kind, Code: code, Status: status, Message: message}
}

func (e *APIError) withCause(err error) *APIError {
	e.cause = err
	return e
}

func (e *APIError) withDetail(detail string, verbose bool) *APIError {
	e.detail = detail
	e.verbose = verbose
	return e
}

func validationError(code, message string) *APIError {
	return newError(ErrorKindValidation, code, 0, message)
}
