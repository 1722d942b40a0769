package errx

import (
	"fmt"
	"net/http"
)

// ErrorType classifies an error for logging and HTTP mapping purposes.
type ErrorType string

const (
	TypeValidation     ErrorType = "VALIDATION"
	TypeNotFound       ErrorType = "NOT_FOUND"
	TypeConflict       ErrorType = "CONFLICT"
	TypeAuthentication ErrorType = "AUTHENTICATION"
	TypeAuthorization  ErrorType = "AUTHORIZATION"
	TypeBusiness       ErrorType = "BUSINESS"
	TypeExternal       ErrorType = "EXTERNAL"
	TypeInternal       ErrorType = "INTERNAL"
)

// Code identifies a registered error within a registry.
type Code string

type definition struct {
	code       Code
	errType    ErrorType
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain, namespaced by prefix.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a new error registry for a domain.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register registers an error definition and returns its code.
func (r *Registry) Register(code string, t ErrorType, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.definitions[full] = definition{
		code:       full,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an Error from a registered code.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Unknown error",
		}
	}
	return &Error{
		Code:       def.code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// NewWithCause creates an Error from a registered code wrapping an
// underlying cause.
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}

// Error is a typed application error with an HTTP mapping and optional
// structured details.
type Error struct {
	Code       Code           `json:"code"`
	Type       ErrorType      `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a structured detail to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple structured details at once and returns the
// error.
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// WithCause attaches an underlying cause to the error and returns it.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON-serializable body for this error.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   string(e.Type),
		"type":    string(e.Type),
		"code":    string(e.Code),
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap wraps an arbitrary error into an *Error with the given message and
// type. The HTTP status is derived from the type.
func Wrap(err error, message string, t ErrorType) *Error {
	return &Error{
		Code:       Code("WRAPPED_" + string(t)),
		Type:       t,
		HTTPStatus: statusFor(t),
		Message:    message,
		cause:      err,
	}
}

func statusFor(t ErrorType) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
