// Package assume provides checks that treat a false condition as a failure.
//
// Each check returns (true, nil) when the condition holds. Otherwise it
// returns false and a *check.AssumptionError whose text names the check and
// shows both operands:
//
//	ok, err := assume.LT(2, 1)
//	// err.Error() == "assumption failed: `assume_lt(left, right)`\n  left: `2`\n right: `1`"
//
// The f variants replace that text with a caller-supplied message.
package assume

import (
	"cmp"

	"github.com/vertti/assertable/pkg/check"
)

var spec = check.SpecAssume

// EQ assumes left == right.
func EQ[T comparable](left, right T) (bool, error) {
	return check.Equal(spec, check.EQ, left, right, check.Message{})
}

// EQf assumes left == right, failing with the formatted message.
func EQf[T comparable](left, right T, format string, args ...any) (bool, error) {
	return check.Equal(spec, check.EQ, left, right, check.Msgf(format, args...))
}

// NE assumes left != right.
func NE[T comparable](left, right T) (bool, error) {
	return check.Equal(spec, check.NE, left, right, check.Message{})
}

// NEf assumes left != right, failing with the formatted message.
func NEf[T comparable](left, right T, format string, args ...any) (bool, error) {
	return check.Equal(spec, check.NE, left, right, check.Msgf(format, args...))
}

// LT assumes left < right.
func LT[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.LT, left, right, check.Message{})
}

// LTf assumes left < right, failing with the formatted message.
func LTf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.LT, left, right, check.Msgf(format, args...))
}

// LE assumes left <= right.
func LE[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.LE, left, right, check.Message{})
}

// LEf assumes left <= right, failing with the formatted message.
func LEf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.LE, left, right, check.Msgf(format, args...))
}

// GT assumes left > right.
func GT[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.GT, left, right, check.Message{})
}

// GTf assumes left > right, failing with the formatted message.
func GTf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.GT, left, right, check.Msgf(format, args...))
}

// GE assumes left >= right.
func GE[T cmp.Ordered](left, right T) (bool, error) {
	return check.Compare(spec, check.GE, left, right, check.Message{})
}

// GEf assumes left >= right, failing with the formatted message.
func GEf[T cmp.Ordered](left, right T, format string, args ...any) (bool, error) {
	return check.Compare(spec, check.GE, left, right, check.Msgf(format, args...))
}

// True assumes cond holds.
func True(cond bool) (bool, error) {
	return check.Condition(spec, cond, check.Message{})
}

// Truef assumes cond holds, failing with the formatted message.
func Truef(cond bool, format string, args ...any) (bool, error) {
	return check.Condition(spec, cond, check.Msgf(format, args...))
}

// Func assumes left op right under compare, which orders values like
// cmp.Compare. A nil compare or an unknown op returns an error wrapping
// check.ErrLogic.
func Func[T any](op check.Op, left, right T, compare func(a, b T) int) (bool, error) {
	return check.CompareFunc(spec, op, left, right, compare, check.Message{})
}

// Funcf is Func with a custom failure message.
func Funcf[T any](op check.Op, left, right T, compare func(a, b T) int, format string, args ...any) (bool, error) {
	return check.CompareFunc(spec, op, left, right, compare, check.Msgf(format, args...))
}
