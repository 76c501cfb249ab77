// Package assumeio is package assume with failures packaged as
// *check.InputError of kind invalid input, for callers that handle
// operating-system style errors. The error text is the same diagnostic,
// named assume_io_<op>, and errors.Is(err, fs.ErrInvalid) holds.
package assumeio

import (
	"cmp"

	"github.com/vertti/assertable/pkg/check"
)

var spec = check.SpecAssumeIO

// EQ assumes left == right.
func EQ[T comparable](left, right T) (bool, error) {
	return check.Equal(spec, check.EQ, left, right, check.Message{})
}

func EQf[T comparable](left, right T, format string, args ...any) (bool, error) {
	return check.Equal(spec, check.EQ, left, right, check.Msgf(format, args...))
}

// NE assumes left != right.
func NE[T comparable](left, right T) (bool, error) {
	return check.Equal(spec, check.NE, left, right, check.Message{})
}

func NEf[T comparable](left, right T, format string, args ...any) (bool, error) {
	return check.Equal(spec, check.NE, left, right, check.Msgf(format, args...))
}

// LT assumes left < right.
func LT[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.LT, left, right, check.Message{})
}

func LTf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.LT, left, right, check.Msgf(format, args...))
}

// LE assumes left <= right.
func LE[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.LE, left, right, check.Message{})
}

func LEf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.LE, left, right, check.Msgf(format, args...))
}

// GT assumes left > right.
func GT[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.GT, left, right, check.Message{})
}

func GTf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.GT, left, right, check.Msgf(format, args...))
}

// GE assumes left >= right.
func GE[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.GE, left, right, check.Message{})
}

func GEf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.GE, left, right, check.Msgf(format, args...))
}

// True assumes cond holds.
func True(cond bool) (bool, error) {
	return check.Condition(spec, cond, check.Message{})
}

func Truef(cond bool, format string, args ...any) (bool, error) {
	return check.Condition(spec, cond, check.Msgf(format, args...))
}

// Func assumes left op right under compare, which orders values like
// cmp.Compare. A nil compare or an unknown op returns an error wrapping
// check.ErrLogic.
func Func[T any](op check.Op, left, right T, compare func(a, b T) int) (bool, error) {
	return check.CompareFunc(spec, op, left, right, compare, check.Message{})
}

func Funcf[T any](op check.Op, left, right T, compare func(a, b T) int, format string, args ...any) (bool, error) {
	return check.CompareFunc(spec, op, left, right, compare, check.Msgf(format, args...))
}
