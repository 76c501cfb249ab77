package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/assertable/pkg/check"
)

var assureFlags compareFlags

var assureCmd = &cobra.Command{
	Use:   "assure <op> <left> <right>",
	Short: "Report whether a comparison holds without failing",
	Long: `Report whether the comparison holds. A false comparison is reported as
"value: false" and still exits 0; only invalid input fails.

` + compareLong,
	Example: `  assertable assure gt 2 1 --type int
  assertable assure lt "$(cat VERSION)" 2.0 --type version --format yaml`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAssure,
}

func init() {
	assureFlags.register(assureCmd)
	rootCmd.AddCommand(assureCmd)
}

func runAssure(cmd *cobra.Command, args []string) error {
	return runCompare(cmd, check.Assure, &assureFlags, args)
}
