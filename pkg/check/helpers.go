package check

import (
	"fmt"
)

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Value = false
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Complete records the (value, error) pair returned by an evaluation.
// A non-nil error fails the result with the error text as its detail.
func (r *Result) Complete(value bool, err error) Result {
	if err != nil {
		return r.Fail(err.Error(), err)
	}
	r.Status = StatusOK
	r.Value = value
	r.AddDetailf("value: %t", value)
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
