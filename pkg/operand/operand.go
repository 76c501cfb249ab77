// Package operand evaluates checks whose operands arrive as strings, such as
// command-line arguments or values read from a JSON document.
package operand

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vertti/assertable/pkg/check"
	"github.com/vertti/assertable/pkg/version"
)

// Type selects how operand strings are parsed.
type Type string

const (
	TypeString   Type = "string"
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeDuration Type = "duration"
	TypeVersion  Type = "version"
	TypeBool     Type = "bool"
)

// Types lists the supported operand types.
func Types() []Type {
	return []Type{TypeString, TypeInt, TypeFloat, TypeDuration, TypeVersion, TypeBool}
}

// ParseType parses a type name. The empty string means TypeString.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeString, nil
	}
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	names := make([]string, 0, len(Types()))
	for _, t := range Types() {
		names = append(names, string(t))
	}
	return "", fmt.Errorf("unknown operand type %q (want one of %s)", s, strings.Join(names, ", "))
}

// Evaluate parses left and right as typ and evaluates left op right under s.
// Parse failures name the offending operand and never wrap
// check.AssumptionError.
func Evaluate(s check.Spec, op check.Op, typ Type, left, right string, msg check.Message) (bool, error) {
	switch typ {
	case TypeString, "":
		return check.Compare(s, op, left, right, msg)
	case TypeInt:
		l, r, err := parsePair(typ, left, right, func(v string) (int64, error) {
			return strconv.ParseInt(v, 10, 64)
		})
		if err != nil {
			return false, err
		}
		return check.Compare(s, op, l, r, msg)
	case TypeFloat:
		l, r, err := parsePair(typ, left, right, func(v string) (float64, error) {
			return strconv.ParseFloat(v, 64)
		})
		if err != nil {
			return false, err
		}
		return check.Compare(s, op, l, r, msg)
	case TypeDuration:
		l, r, err := parsePair(typ, left, right, time.ParseDuration)
		if err != nil {
			return false, err
		}
		return check.Compare(s, op, l, r, msg)
	case TypeVersion:
		l, r, err := parsePair(typ, left, right, version.Parse)
		if err != nil {
			return false, err
		}
		return check.CompareFunc(s, op, l, r, version.Compare, msg)
	case TypeBool:
		if op.Ordering() {
			return false, fmt.Errorf("%w: %s: operand type %s is not ordered", check.ErrLogic, s.OpName(op), typ)
		}
		l, r, err := parsePair(typ, left, right, strconv.ParseBool)
		if err != nil {
			return false, err
		}
		return check.Equal(s, op, l, r, msg)
	}
	return false, fmt.Errorf("unknown operand type %q", typ)
}

// Condition parses expr as a boolean ("true", "1", "false", "0", ...) and
// evaluates it under s.
func Condition(s check.Spec, expr string, msg check.Message) (bool, error) {
	cond, err := strconv.ParseBool(strings.TrimSpace(expr))
	if err != nil {
		return false, fmt.Errorf("condition %q is not a valid bool", expr)
	}
	return check.Condition(s, cond, msg)
}

func parsePair[T any](typ Type, left, right string, parse func(string) (T, error)) (T, T, error) {
	var zero T
	l, err := parse(strings.TrimSpace(left))
	if err != nil {
		return zero, zero, fmt.Errorf("left operand %q is not a valid %s: %w", left, typ, err)
	}
	r, err := parse(strings.TrimSpace(right))
	if err != nil {
		return zero, zero, fmt.Errorf("right operand %q is not a valid %s: %w", right, typ, err)
	}
	return l, r, nil
}
