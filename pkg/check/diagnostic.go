package check

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Diagnostic renders the default failure text for a two-operand check.
func Diagnostic(name string, left, right any) string {
	return fmt.Sprintf("assumption failed: `%s(left, right)`\n  left: `%s`\n right: `%s`",
		name, Debug(left), Debug(right))
}

// ConditionDiagnostic renders the default failure text for a condition check.
func ConditionDiagnostic(name string, cond bool) string {
	return fmt.Sprintf("assumption failed: `%s(condition)`\n condition: `%t`", name, cond)
}

// Debug returns the representation of v used in diagnostics.
// Strings and byte slices are quoted, whole floats keep a ".0" suffix and
// everything else prints with %v.
func Debug(v any) string {
	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return "<nil>"
	case rv.Kind() == reflect.String:
		return fmt.Sprintf("%q", rv.String())
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return fmt.Sprintf("%q", rv.Bytes())
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return formatFloat(rv.Float(), rv.Type().Bits())
	}
	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
