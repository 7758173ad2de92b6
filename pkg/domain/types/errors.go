package types

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption   = goerr.New("invalid option")
	ErrInvalidArgument = goerr.New("invalid argument")

	ErrCredentialMissing = goerr.New("credential missing")
	ErrSecretNotFound    = goerr.New("secret not found")
	ErrStoreUnavailable  = goerr.New("secret store unavailable")

	ErrTransport  = goerr.New("transport error")
	ErrHTTPStatus = goerr.New("unexpected HTTP status")
	ErrDecode     = goerr.New("failed to decode response")
)

// CredentialMissingError is returned when a command needs an API key that has not been saved.
type CredentialMissingError struct {
	Service string
}

func (x *CredentialMissingError) Error() string {
	return fmt.Sprintf("%s API Key not found. Please set it in Settings.", x.Service)
}

func (x *CredentialMissingError) Is(target error) bool {
	return target == ErrCredentialMissing
}

// HTTPStatusError is returned when a remote API answers with a non-2xx status.
type HTTPStatusError struct {
	API        string
	StatusCode int
	Status     string
}

func (x *HTTPStatusError) Error() string {
	status := x.Status
	if status == "" {
		status = fmt.Sprintf("%d", x.StatusCode)
	}
	return fmt.Sprintf("%s API error: %s", x.API, status)
}

func (x *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// ClassifiedError attaches an error class (one of the sentinels above) to the underlying
// cause. errors.Is matches the class and errors.As still reaches the cause.
type ClassifiedError struct {
	Class error
	Cause error
}

// Classify returns cause marked as class.
func Classify(class, cause error) error {
	return &ClassifiedError{Class: class, Cause: cause}
}

func (x *ClassifiedError) Error() string {
	return x.Class.Error() + ": " + x.Cause.Error()
}

func (x *ClassifiedError) Is(target error) bool {
	return target == x.Class
}

func (x *ClassifiedError) Unwrap() error {
	return x.Cause
}

// ErrorKind is the closed set of failure classes a command can end with.
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindInvalidArgument
	ErrorKindCredentialMissing
	ErrorKindSecretNotFound
	ErrorKindStoreUnavailable
	ErrorKindTransport
	ErrorKindHTTPStatus
	ErrorKindDecode
)

var errorKindNames = map[ErrorKind]string{
	ErrorKindUnknown:           "unknown",
	ErrorKindInvalidArgument:   "invalid_argument",
	ErrorKindCredentialMissing: "credential_missing",
	ErrorKindSecretNotFound:    "secret_not_found",
	ErrorKindStoreUnavailable:  "store_unavailable",
	ErrorKindTransport:         "transport_error",
	ErrorKindHTTPStatus:        "http_error",
	ErrorKindDecode:            "decode_error",
}

func (x ErrorKind) String() string {
	if name, ok := errorKindNames[x]; ok {
		return name
	}
	return errorKindNames[ErrorKindUnknown]
}

// KindOf classifies err. Credential errors are checked before store errors because a missing
// credential wraps the store's not-found error.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindUnknown
	case errors.Is(err, ErrInvalidArgument):
		return ErrorKindInvalidArgument
	case errors.Is(err, ErrCredentialMissing):
		return ErrorKindCredentialMissing
	case errors.Is(err, ErrSecretNotFound):
		return ErrorKindSecretNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return ErrorKindStoreUnavailable
	case errors.Is(err, ErrTransport):
		return ErrorKindTransport
	case errors.Is(err, ErrHTTPStatus):
		return ErrorKindHTTPStatus
	case errors.Is(err, ErrDecode):
		return ErrorKindDecode
	default:
		return ErrorKindUnknown
	}
}

// Message converts err into the string shown to the user. Typed errors keep their own wording
// so that wrapping context added on the way up does not leak into the UI.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var credErr *CredentialMissingError
	if errors.As(err, &credErr) {
		return credErr.Error()
	}

	var httpErr *HTTPStatusError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}

	return err.Error()
}
