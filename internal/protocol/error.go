package protocol

import (
	"errors"
	"net/http"
	"runtime/debug"
)

// ErrorStatus is the closed set of WebDriver failure kinds. Each kind
// maps to exactly one wire string and one HTTP status code, both fixed
// by the WebDriver specification.
type ErrorStatus int

const (
	ElementNotSelectable ErrorStatus = iota
	ElementNotVisible
	InsecureCertificate
	InvalidArgument
	InvalidCookieDomain
	InvalidElementCoordinates
	InvalidElementState
	InvalidSelector
	InvalidSessionID
	JavascriptError
	MoveTargetOutOfBounds
	NoSuchAlert
	NoSuchElement
	NoSuchFrame
	NoSuchWindow
	ScriptTimeout
	SessionNotCreated
	StaleElementReference
	Timeout
	UnableToSetCookie
	UnexpectedAlertOpen
	UnknownError
	UnknownMethod
	UnknownPath
	UnsupportedOperation
)

// StatusCode returns the wire string for the error kind. UnknownMethod
// and UnknownPath are distinct kinds that share the "unknown command"
// wire string but differ in HTTP status.
func (s ErrorStatus) StatusCode() string {
	switch s {
	case ElementNotSelectable:
		return "element not selectable"
	case ElementNotVisible:
		return "element not visible"
	case InsecureCertificate:
		return "insecure certificate"
	case InvalidArgument:
		return "invalid argument"
	case InvalidCookieDomain:
		return "invalid cookie domain"
	case InvalidElementCoordinates:
		return "invalid element coordinates"
	case InvalidElementState:
		return "invalid element state"
	case InvalidSelector:
		return "invalid selector"
	case InvalidSessionID:
		return "invalid session id"
	case JavascriptError:
		return "javascript error"
	case MoveTargetOutOfBounds:
		return "move target out of bounds"
	case NoSuchAlert:
		return "no such alert"
	case NoSuchElement:
		return "no such element"
	case NoSuchFrame:
		return "no such frame"
	case NoSuchWindow:
		return "no such window"
	case ScriptTimeout:
		return "script timeout"
	case SessionNotCreated:
		return "session not created"
	case StaleElementReference:
		return "stale element reference"
	case Timeout:
		return "timeout"
	case UnableToSetCookie:
		return "unable to set cookie"
	case UnexpectedAlertOpen:
		return "unexpected alert open"
	case UnknownError:
		return "unknown error"
	case UnknownMethod:
		return "unknown command"
	case UnknownPath:
		return "unknown command"
	case UnsupportedOperation:
		return "unsupported operation"
	}
	return "unknown error"
}

// HTTPStatus returns the HTTP status code for the error kind.
func (s ErrorStatus) HTTPStatus() int {
	switch s {
	case ElementNotSelectable:
		return http.StatusBadRequest
	case ElementNotVisible:
		return http.StatusBadRequest
	case InsecureCertificate:
		return http.StatusBadRequest
	case InvalidArgument:
		return http.StatusBadRequest
	case InvalidCookieDomain:
		return http.StatusBadRequest
	case InvalidElementCoordinates:
		return http.StatusBadRequest
	case InvalidElementState:
		return http.StatusBadRequest
	case InvalidSelector:
		return http.StatusBadRequest
	case InvalidSessionID:
		return http.StatusNotFound
	case JavascriptError:
		return http.StatusInternalServerError
	case MoveTargetOutOfBounds:
		return http.StatusInternalServerError
	case NoSuchAlert:
		return http.StatusBadRequest
	case NoSuchElement:
		return http.StatusNotFound
	case NoSuchFrame:
		return http.StatusBadRequest
	case NoSuchWindow:
		return http.StatusBadRequest
	case ScriptTimeout:
		return http.StatusRequestTimeout
	case SessionNotCreated:
		return http.StatusInternalServerError
	case StaleElementReference:
		return http.StatusBadRequest
	case Timeout:
		return http.StatusRequestTimeout
	case UnableToSetCookie:
		return http.StatusInternalServerError
	case UnexpectedAlertOpen:
		return http.StatusInternalServerError
	case UnknownError:
		return http.StatusInternalServerError
	case UnknownMethod:
		return http.StatusMethodNotAllowed
	case UnknownPath:
		return http.StatusNotFound
	case UnsupportedOperation:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Error is a classified WebDriver failure. DeleteSession marks errors
// that must invalidate the session when reported; decode-time errors
// always leave it false, only the executor sets it.
type Error struct {
	Status        ErrorStatus
	Message       string
	Stacktrace    string
	DeleteSession bool
}

// NewError builds an Error and captures the stack trace at the point
// of construction.
func NewError(status ErrorStatus, message string) *Error {
	return &Error{
		Status:     status,
		Message:    message,
		Stacktrace: string(debug.Stack()),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the wire string for the underlying kind.
func (e *Error) StatusCode() string {
	return e.Status.StatusCode()
}

// HTTPStatus returns the HTTP status code for the underlying kind.
func (e *Error) HTTPStatus() int {
	return e.Status.HTTPStatus()
}

// ToJSON renders the wire error body: error, message, stacktrace.
func (e *Error) ToJSON() map[string]any {
	return map[string]any{
		"error":      e.StatusCode(),
		"message":    e.Message,
		"stacktrace": e.Stacktrace,
	}
}

// WrapError returns err as a protocol Error, folding anything that is
// not already one into the unknown-error kind. Lower-level failures
// (I/O, transport, decoding) get no finer classification.
func WrapError(err error) *Error {
	var wdErr *Error
	if errors.As(err, &wdErr) {
		return wdErr
	}
	return NewError(UnknownError, err.Error())
}
