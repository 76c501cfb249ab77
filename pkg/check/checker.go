package check

// Checker is implemented by all check types.
// Each check evaluates one comparison or condition
// and returns a Result indicating success or failure.
//
// Implementations:
//   - cmpcheck.Check: compares two typed operands
//   - condcheck.Check: evaluates a boolean condition
type Checker interface {
	Run() Result
}
