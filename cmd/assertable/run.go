package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/assertable/pkg/check"
	"github.com/vertti/assertable/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes Cobra to exit with code 1.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	result := c.Run()
	logger.Debug("check evaluated",
		zap.String("check", result.Name),
		zap.String("status", string(result.Status)),
		zap.Bool("value", result.Value),
		zap.Error(result.Err),
	)

	if err := output.Print(cmd.OutOrStdout(), cfg.Format, result); err != nil {
		return err
	}

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
