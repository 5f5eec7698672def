package problem

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind string

const (
	// KindInvalidSettings means a required setting is missing or out of range.
	KindInvalidSettings Kind = "invalid-settings"

	// KindExhausted means a bounded retry loop ran out of attempts.
	KindExhausted Kind = "exhausted"

	// KindDispatch means a generator failed unexpectedly (a recovered panic).
	KindDispatch Kind = "dispatch"

	// KindUpstream means the external text-generation collaborator failed.
	KindUpstream Kind = "upstream"
)

// Error is the error type every generator and the dispatcher report.
type Error struct {
	Kind    Kind
	Module  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	prefix := string(e.Kind)
	if e.Module != "" {
		prefix = e.Module + ": " + prefix
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// InvalidSettings returns a KindInvalidSettings error with a formatted message.
func InvalidSettings(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidSettings, Message: fmt.Sprintf(format, args...)}
}

// Exhausted returns a KindExhausted error for a loop that gave up after attempts tries.
func Exhausted(attempts int) *Error {
	return &Error{Kind: KindExhausted, Message: fmt.Sprintf("no valid instance after %d attempts", attempts)}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// WithModule stamps module onto err when it is an *Error without one.
func WithModule(err error, module string) error {
	var pe *Error
	if errors.As(err, &pe) && pe.Module == "" {
		cp := *pe
		cp.Module = module
		return &cp
	}
	return err
}
