package check

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrLogic marks a programming error in how a check was called, as opposed
// to a condition that did not hold.
var ErrLogic = errors.New("logic error")

// AssumptionError is a failed assumption. Error returns the diagnostic
// unchanged.
type AssumptionError struct {
	Name    string // check name, e.g. "assume_lt"
	Message string
}

func (e *AssumptionError) Error() string {
	return e.Message
}

// Kind classifies an InputError.
type Kind string

const KindInvalidInput Kind = "invalid input"

// InputError wraps a diagnostic the way an operating-system error wraps its
// cause. Errors of kind invalid input match fs.ErrInvalid.
type InputError struct {
	Kind Kind
	Err  error
}

func (e *InputError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func (e *InputError) Is(target error) bool {
	return target == fs.ErrInvalid && e.Kind == KindInvalidInput
}

func logicError(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrLogic, name, fmt.Sprintf(format, args...))
}
