// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for hioload-platform. Recoverable failures are surfaced
// as *Error values that unwrap to the native errno, so callers may test either
// the sentinel or the errno with errors.Is.

package api

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Recoverable errors returned by the platform adapter.
var (
	ErrInvalidArgument = &Error{Code: ErrCodeInvalidArgument, Message: "invalid argument", Err: unix.EINVAL}
	ErrBusy            = &Error{Code: ErrCodeBusy, Message: "resource busy", Err: unix.EBUSY}
	ErrOutOfMemory     = &Error{Code: ErrCodeOutOfMemory, Message: "cannot allocate thread launch request", Err: unix.ENOMEM}
	ErrDetached        = &Error{Code: ErrCodeDetached, Message: "thread is detached", Err: unix.EINVAL}
	ErrAlreadyJoined   = &Error{Code: ErrCodeAlreadyJoined, Message: "thread already joined", Err: unix.ESRCH}
	ErrDeadlock        = &Error{Code: ErrCodeDeadlock, Message: "join would deadlock", Err: unix.EDEADLK}
	ErrNotSupported    = &Error{Code: ErrCodeNotSupported, Message: "operation not supported", Err: unix.ENOTSUP}
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeInvalidArgument ErrorCode = iota + 1
	ErrCodeBusy
	ErrCodeOutOfMemory
	ErrCodeThreadStart
	ErrCodeDetached
	ErrCodeAlreadyJoined
	ErrCodeDeadlock
	ErrCodeNotSupported
)

var codeNames = map[ErrorCode]string{
	ErrCodeInvalidArgument: "invalid_argument",
	ErrCodeBusy:            "busy",
	ErrCodeOutOfMemory:     "out_of_memory",
	ErrCodeThreadStart:     "thread_start",
	ErrCodeDetached:        "detached",
	ErrCodeAlreadyJoined:   "already_joined",
	ErrCodeDeadlock:        "deadlock",
	ErrCodeNotSupported:    "not_supported",
}

func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error represents a structured error with code, native cause and context.
// The package-level sentinels are shared; never call WithContext on them.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]any
}

// Error implements the error interface. The native cause is appended unless
// it only repeats the message.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if cause := e.Err.Error(); cause != msg {
			msg = fmt.Sprintf("%s: %s", msg, cause)
		}
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the native cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errno returns the native error number carried by e, or 0.
func (e *Error) Errno() unix.Errno {
	if errno, ok := e.Err.(unix.Errno); ok {
		return errno
	}
	return 0
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap sets the native cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
