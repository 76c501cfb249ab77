package check

import "cmp"

// Compare evaluates left op right for ordered operands. Operators apply
// directly, so NaN compares false under every operator except NE.
func Compare[T cmp.Ordered](s Spec, op Op, left, right T, msg Message) (bool, error) {
	name := s.OpName(op)
	if !s.valid() {
		return false, logicError(name, "unknown family or encoding")
	}

	var holds bool
	switch op {
	case EQ:
		holds = left == right
	case NE:
		holds = left != right
	case LT:
		holds = left < right
	case LE:
		holds = left <= right
	case GT:
		holds = left > right
	case GE:
		holds = left >= right
	default:
		return false, logicError(name, "unknown operator")
	}

	return s.decide(holds, name, msg, func() string {
		return Diagnostic(name, left, right)
	})
}

// CompareFunc evaluates left op right using compare, which returns a
// negative number, zero or a positive number like cmp.Compare.
func CompareFunc[T any](s Spec, op Op, left, right T, compare func(a, b T) int, msg Message) (bool, error) {
	name := s.OpName(op)
	switch {
	case !s.valid():
		return false, logicError(name, "unknown family or encoding")
	case !op.Valid():
		return false, logicError(name, "unknown operator")
	case compare == nil:
		return false, logicError(name, "nil compare function")
	}

	return s.decide(op.holds(compare(left, right)), name, msg, func() string {
		return Diagnostic(name, left, right)
	})
}

// Equal evaluates EQ or NE for operands that are comparable but not ordered.
func Equal[T comparable](s Spec, op Op, left, right T, msg Message) (bool, error) {
	name := s.OpName(op)
	if !s.valid() {
		return false, logicError(name, "unknown family or encoding")
	}

	if op.Ordering() {
		return false, logicError(name, "operator %s needs ordered operands", op)
	}

	var holds bool
	switch op {
	case EQ:
		holds = left == right
	case NE:
		holds = left != right
	default:
		return false, logicError(name, "unknown operator")
	}

	return s.decide(holds, name, msg, func() string {
		return Diagnostic(name, left, right)
	})
}

// Condition evaluates a boolean.
func Condition(s Spec, cond bool, msg Message) (bool, error) {
	name := s.Name()
	if !s.valid() {
		return false, logicError(name, "unknown family or encoding")
	}

	return s.decide(cond, name, msg, func() string {
		return ConditionDiagnostic(name, cond)
	})
}

func (s Spec) decide(holds bool, name string, msg Message, diagnostic func() string) (bool, error) {
	if holds {
		return true, nil
	}
	if s.Family == Assure {
		return false, nil
	}

	text := msg.String()
	if !msg.IsSet() {
		text = diagnostic()
	}

	err := &AssumptionError{Name: name, Message: text}
	if s.Encoding == IO {
		return false, &InputError{Kind: KindInvalidInput, Err: err}
	}
	return false, err
}
