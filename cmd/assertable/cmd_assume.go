package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/assertable/pkg/check"
)

var assumeFlags compareFlags

var assumeCmd = &cobra.Command{
	Use:   "assume <op> <left> <right>",
	Short: "Fail unless a comparison holds",
	Long: `Fail with a diagnostic unless the comparison holds.

` + compareLong,
	Example: `  assertable assume lt 1 2 --type int
  assertable assume ge "$(go version)" 1.22 --type version --extract-version
  assertable assume le ready replicas --json status.json --type int
  assertable assume --io ne "$DEPLOY_ENV" prod -m "refusing to run against prod"
  assertable assume true "$FEATURE_ENABLED"`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAssume,
}

func init() {
	assumeFlags.register(assumeCmd)
	rootCmd.AddCommand(assumeCmd)
}

func runAssume(cmd *cobra.Command, args []string) error {
	return runCompare(cmd, check.Assume, &assumeFlags, args)
}
