package check

// Family selects what a false condition produces.
type Family int

const (
	// Assume reports a false condition through the error.
	Assume Family = iota
	// Assure reports a false condition as a false value and a nil error.
	Assure
)

func (f Family) String() string {
	switch f {
	case Assume:
		return "assume"
	case Assure:
		return "assure"
	}
	return "unknown"
}

// Encoding selects how a diagnostic is packaged.
type Encoding int

const (
	// Plain returns the diagnostic as an *AssumptionError.
	Plain Encoding = iota
	// IO wraps the diagnostic in an *InputError of kind invalid input.
	IO
)

// Spec pairs a Family with an Encoding.
type Spec struct {
	Family   Family
	Encoding Encoding
}

var (
	SpecAssume   = Spec{Family: Assume, Encoding: Plain}
	SpecAssumeIO = Spec{Family: Assume, Encoding: IO}
	SpecAssure   = Spec{Family: Assure, Encoding: Plain}
	SpecAssureIO = Spec{Family: Assure, Encoding: IO}
)

// Name returns the check name used in diagnostics, e.g. "assume_io".
func (s Spec) Name() string {
	if s.Encoding == IO {
		return s.Family.String() + "_io"
	}
	return s.Family.String()
}

// OpName returns the name of the two-operand check, e.g. "assume_lt".
func (s Spec) OpName(op Op) string {
	return s.Name() + "_" + op.String()
}

func (s Spec) valid() bool {
	return (s.Family == Assume || s.Family == Assure) && (s.Encoding == Plain || s.Encoding == IO)
}
