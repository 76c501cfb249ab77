package cmpcheck

import (
	"fmt"

	"github.com/vertti/assertable/pkg/check"
	"github.com/vertti/assertable/pkg/jsonsource"
	"github.com/vertti/assertable/pkg/operand"
	"github.com/vertti/assertable/pkg/version"
)

// Check compares two operands given as strings.
type Check struct {
	Spec           check.Spec         // family and encoding
	Op             check.Op           // comparison operator
	Type           operand.Type       // --type: how operands are parsed
	Left           string             // left operand, or a JSON path with JSON set
	Right          string             // right operand, or a JSON path with JSON set
	Message        string             // --message: replaces the default diagnostic
	JSON           *jsonsource.Source // --json: resolve operands from this document
	ExtractVersion bool               // --extract-version: use the first version found in each operand
}

// Run executes the comparison.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("%s(left, right)", c.Spec.OpName(c.Op)),
	}

	left, err := c.resolve("left", c.Left)
	if err != nil {
		return result.Fail(err.Error(), err)
	}
	right, err := c.resolve("right", c.Right)
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	result.AddDetail(c.describe("left", c.Left, left))
	result.AddDetail(c.describe("right", c.Right, right))

	msg := check.Message{}
	if c.Message != "" {
		msg = check.Msgf(c.Message)
	}

	return result.Complete(operand.Evaluate(c.Spec, c.Op, c.Type, left, right, msg))
}

func (c *Check) resolve(side, raw string) (string, error) {
	value := raw
	if c.JSON != nil {
		v, err := c.JSON.Lookup(raw)
		if err != nil {
			return "", fmt.Errorf("%s operand: %w", side, err)
		}
		value = v
	}

	if c.ExtractVersion {
		if c.Type != operand.TypeVersion {
			return "", fmt.Errorf("version extraction requires operand type %s, got %s", operand.TypeVersion, c.Type)
		}
		v, err := version.Extract(value)
		if err != nil {
			return "", fmt.Errorf("%s operand: %w", side, err)
		}
		value = v.Original()
	}
	return value, nil
}

func (c *Check) describe(side, raw, value string) string {
	if c.JSON != nil {
		return fmt.Sprintf("%s: %s = %s", side, raw, value)
	}
	return fmt.Sprintf("%s: %s", side, value)
}
