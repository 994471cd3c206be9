// Package apperr classifies the failures a command can end with and maps
// them to process exit codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUsage Kind = iota + 1
	KindConfig
	KindIO
	KindRemote
	KindUnexpectedStatus
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage error"
	case KindConfig:
		return "config error"
	case KindIO:
		return "io error"
	case KindRemote:
		return "remote error"
	case KindUnexpectedStatus:
		return "unexpected status"
	default:
		return "error"
	}
}

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type Error struct {
	Kind   Kind
	Op     string
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Usage(format string, args ...interface{}) error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

func Config(format string, args ...interface{}) error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...)}
}

// IO wraps a local filesystem failure. op reads like "failed to open file".
func IO(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

func Remote(op string, err error) error {
	return &Error{Kind: KindRemote, Op: op, Err: err}
}

// UnexpectedStatus reports a backend call that completed with a status the
// command does not treat as success. msg is shown to the user as is.
func UnexpectedStatus(msg string, status int) error {
	return &Error{Kind: KindUnexpectedStatus, Status: status, Msg: msg}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if Is(err, KindUsage) {
		return ExitUsage
	}
	return ExitFailure
}
