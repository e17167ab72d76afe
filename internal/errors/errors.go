// Package errors is the single errors import for carewatch code. It re-exports the stdlib
// tree helpers, adds pkg/errors stack traces, and carries the retry marker used by the
// Pub/Sub ingest path.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's tree that is a T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the call site.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// retryable marks a failure the caller should retry, such as a transient storage error
// behind a Pub/Sub push.
type retryable struct {
	err error
}

func (e *retryable) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryable) Unwrap() error {
	return e.err
}

// Retryable marks err as worth retrying. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryable{err: err}
}

// IsRetryable reports whether any error in err's tree was marked by Retryable.
func IsRetryable(err error) bool {
	_, ok := AsType[*retryable](err)

	return ok
}
