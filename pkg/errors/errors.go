package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error codes. Network and IO errors form the transport category.
const (
	CodeNetwork     = "network"
	CodeIO          = "io"
	CodeInvalidJSON = "invalid_json"
)

// Common errors matched by APIError according to its error code.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrInternalServer  = errors.New("internal server error")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(message string) error {
	return &Error{Message: message}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Message: message, Err: err}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// Network reports a failed HTTP exchange for method, including a response
// body cut short.
func Network(method string, err error) error {
	return WrapWithCode(err, CodeNetwork, method+": request failed")
}

// IO reports a local failure for method, such as a request that cannot be
// encoded or a file that cannot be opened or written.
func IO(method string, err error) error {
	return WrapWithCode(err, CodeIO, method+": i/o failure")
}

// InvalidJSON reports a response of method that could not be decoded.
func InvalidJSON(method string, err error) error {
	return WrapWithCode(err, CodeInvalidJSON, method+": invalid response")
}

// APIError is an error returned by Telegram.
type APIError struct {
	Method      string
	ErrorCode   int
	Description string
	// RetryAfter is the number of seconds to wait before repeating the
	// request, set when flood control was exceeded.
	RetryAfter int
	// MigrateToChatID is set when the group was migrated to a supergroup.
	MigrateToChatID int64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: telegram error %d: %s", e.Method, e.ErrorCode, e.Description)
}

// Is matches the common errors by error code.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.ErrorCode == http.StatusBadRequest
	case ErrUnauthorized:
		return e.ErrorCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.ErrorCode == http.StatusForbidden
	case ErrNotFound:
		return e.ErrorCode == http.StatusNotFound
	case ErrConflict:
		return e.ErrorCode == http.StatusConflict
	case ErrTooManyRequests:
		return e.ErrorCode == http.StatusTooManyRequests
	case ErrInternalServer:
		return e.ErrorCode >= http.StatusInternalServerError
	}
	return false
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var api *APIError
	if errors.As(err, &api) {
		return api.Description
	}
	return err.Error()
}

// IsTransport reports whether err is a network or i/o failure.
func IsTransport(err error) bool {
	switch GetCode(err) {
	case CodeNetwork, CodeIO:
		return true
	}
	return false
}

// IsAPI reports whether err was returned by Telegram.
func IsAPI(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

func IsInvalidJSON(err error) bool {
	return GetCode(err) == CodeInvalidJSON
}

// RetryAfter returns how long Telegram asked to wait before retrying.
func RetryAfter(err error) (time.Duration, bool) {
	var e *APIError
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return time.Duration(e.RetryAfter) * time.Second, true
	}
	return 0, false
}

// MigrateToChatID returns the supergroup a group was migrated to.
func MigrateToChatID(err error) (int64, bool) {
	var e *APIError
	if errors.As(err, &e) && e.MigrateToChatID != 0 {
		return e.MigrateToChatID, true
	}
	return 0, false
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized returns true if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden returns true if the error is a forbidden error
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsInternalServer returns true if the error is an internal server error
func IsInternalServer(err error) bool {
	return errors.Is(err, ErrInternalServer)
}

// IsBadRequest returns true if the error is a bad request error
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsTooManyRequests(err error) bool {
	return errors.Is(err, ErrTooManyRequests)
}
