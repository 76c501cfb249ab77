// Package condcheck adapts condition checks to check.Checker.
package condcheck

import (
	"fmt"

	"github.com/vertti/assertable/pkg/check"
	"github.com/vertti/assertable/pkg/operand"
)

// Check evaluates a boolean expression such as "true" or "0".
type Check struct {
	Spec    check.Spec
	Expr    string
	Message string // --message: replaces the default diagnostic
}

// Run executes the condition check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("%s(condition)", c.Spec.Name()),
	}
	result.AddDetailf("condition: %s", c.Expr)

	msg := check.Message{}
	if c.Message != "" {
		msg = check.Msgf(c.Message)
	}

	return result.Complete(operand.Condition(c.Spec, c.Expr, msg))
}
