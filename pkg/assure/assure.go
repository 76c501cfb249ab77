// Package assure provides checks that report whether a condition holds
// without treating false as a failure: a false condition returns
// (false, nil), with or without a custom message. An error is returned only
// for misuse, such as a nil compare function, and wraps check.ErrLogic.
package assure

import (
	"cmp"

	"github.com/vertti/assertable/pkg/check"
)

var spec = check.SpecAssure

func EQ[T comparable](left, right T) (bool, error) {
	return check.Equal(spec, check.EQ, left, right, check.Message{})
}

func EQf[T comparable](left, right T, format string, args ...any) (bool, error) {
	return check.Equal(spec, check.EQ, left, right, check.Msgf(format, args...))
}

func NE[T comparable](left, right T) (bool, error) {
	return check.Equal(spec, check.NE, left, right, check.Message{})
}

func NEf[T comparable](left, right T, format string, args ...any) (bool, error) {
	return check.Equal(spec, check.NE, left, right, check.Msgf(format, args...))
}

// LT reports whether left < right.
func LT[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.LT, left, right, check.Message{})
}

func LTf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.LT, left, right, check.Msgf(format, args...))
}

func LE[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.LE, left, right, check.Message{})
}

func LEf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.LE, left, right, check.Msgf(format, args...))
}

// GT reports whether left > right.
func GT[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.GT, left, right, check.Message{})
}

func GTf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.GT, left, right, check.Msgf(format, args...))
}

func GE[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.GE, left, right, check.Message{})
}

func GEf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.GE, left, right, check.Msgf(format, args...))
}

// True reports cond.
func True(cond bool) (bool, error) {
	return check.Condition(spec, cond, check.Message{})
}

func Truef(cond bool, format string, args ...any) (bool, error) {
	return check.Condition(spec, cond, check.Msgf(format, args...))
}

// Func reports whether left op right under compare.
func Func[T any](op check.Op, left, right T, compare func(a, b T) int) (bool, error) {
	return check.CompareFunc(spec, op, left, right, compare, check.Message{})
}

func Funcf[T any](op check.Op, left, right T, compare func(a, b T) int, format string, args ...any) (bool, error) {
	return check.CompareFunc(spec, op, left, right, compare, check.Msgf(format, args...))
}
