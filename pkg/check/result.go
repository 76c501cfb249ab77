package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "assume_lt(left, right)", "assure(condition)"
	Status  Status   // OK or FAIL
	Value   bool     // boolean payload; assure checks report a false condition here
	Details []string // human-readable details
	Err     error    // diagnostic for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
