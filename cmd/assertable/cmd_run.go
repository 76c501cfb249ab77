package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/assertable/pkg/checkfile"
	"github.com/vertti/assertable/pkg/config"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run checks from a .assertable file",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to .assertable file (default: search up from current directory)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	checkPath, err := checkfile.FindFile(wd, runFile)
	if err != nil {
		return err
	}

	lines, err := checkfile.ParseFile(checkPath)
	if err != nil {
		return err
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	env := append(os.Environ(),
		envVar(config.KeyFormat, string(cfg.Format)),
		envVar(config.KeyColor, string(cfg.Color)),
		envVar(config.KeyVerbose, fmt.Sprint(cfg.Verbose)),
	)

	for _, line := range lines {
		logger.Debug("running check line",
			zap.String("file", checkPath),
			zap.Int("line", line.Number),
			zap.Strings("args", line.Args),
		)

		execCmd := exec.Command(executable, line.Args...) //nolint:gosec // intentional: re-running this binary
		execCmd.Stdout = cmd.OutOrStdout()
		execCmd.Stderr = cmd.ErrOrStderr()
		execCmd.Stdin = os.Stdin
		execCmd.Env = env

		if err := execCmd.Run(); err != nil {
			var exitError *exec.ExitError
			if errors.As(err, &exitError) {
				return fmt.Errorf("%w: %s:%d: %s", ErrCheckFailed, checkPath, line.Number, line.Text)
			}
			return fmt.Errorf("failed to execute line %d %q: %w", line.Number, line.Text, err)
		}
	}

	return nil
}

func envVar(key, value string) string {
	return config.EnvPrefix + "_" + strings.ToUpper(key) + "=" + value
}
