package check

import (
	"fmt"
	"strings"
)

// Op is a comparison operator.
type Op int

const (
	EQ Op = iota + 1
	NE
	LT
	LE
	GT
	GE
)

var opNames = map[Op]string{
	EQ: "eq",
	NE: "ne",
	LT: "lt",
	LE: "le",
	GT: "gt",
	GE: "ge",
}

// Ops returns every operator in declaration order.
func Ops() []Op {
	return []Op{EQ, NE, LT, LE, GT, GE}
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Valid reports whether o is a known operator.
func (o Op) Valid() bool {
	_, ok := opNames[o]
	return ok
}

// Ordering reports whether o needs ordered operands.
func (o Op) Ordering() bool {
	return o == LT || o == LE || o == GT || o == GE
}

// ParseOp parses an operator name such as "lt" or "ne".
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, op := range Ops() {
		if opNames[op] == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q (want one of eq, ne, lt, le, gt, ge)", s)
}

// holds maps the result of a three-way comparison onto o.
func (o Op) holds(c int) bool {
	switch o {
	case EQ:
		return c == 0
	case NE:
		return c != 0
	case LT:
		return c < 0
	case LE:
		return c <= 0
	case GT:
		return c > 0
	case GE:
		return c >= 0
	}
	return false
}
