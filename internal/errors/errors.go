package errors

import (
	"errors"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

var ErrUnsupported = errors.ErrUnsupported

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	} else {
		return nil
	}
}

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

type Error = errorsGo.Error

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// Kind returns an error matching kind with errors.Is.
// The message reads "<kind>: <msg>: <cause>", cause may be nil.
// The stack trace starts at the caller.
func Kind(kind error, msg string, cause error) *Error {
	return errorsGo.Wrap(&kindError{kind: kind, msg: msg, cause: cause}, 1)
}

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	s := e.kind.Error()
	if len(e.msg) > 0 {
		s += `: ` + e.msg
	}
	if e.cause != nil {
		s += `: ` + e.cause.Error()
	}
	return s
}

func (e *kindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Split returns the errors joined in err, or err alone.
// Errors built by Kind are not split.
func Split(err error) []error {
	if err == nil {
		return nil
	}
	inner := err
	if e, ok := err.(*Error); ok && e.Err != nil {
		inner = e.Err
	}
	if _, ok := inner.(*kindError); ok {
		return []error{err}
	}
	if joined, ok := inner.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	for i := range args {
		if args[i] == nil {
			goto anyNil
		}
	}
	if len(args) > 0 {
		return nil
	}
anyNil:
	return errMsg(msg, skip)
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(msg, skip)
	}
	return Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
