package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vertti/assertable/pkg/config"
	"github.com/vertti/assertable/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// Global flags
	configPath string
	formatFlag string
	colorFlag  string
	verbose    bool

	cfg    config.Config
	logger = zap.NewNop()
)

func main() {
	var file string
	os.Args, file = transformArgsForHashbang(os.Args, realFileChecker)
	if file != "" {
		runFile = file
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "assertable",
	Short: "Comparison checks that report instead of panicking",
	Long: `Assertable evaluates comparisons and conditions for shell scripts and CI steps.

"assume" checks fail (exit status 1) with a diagnostic when the comparison
does not hold. "assure" checks always succeed and report the outcome as a
value, so a false comparison is a normal answer rather than an error.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: assertable.yaml in the working directory, if present)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, config.KeyFormat, string(output.FormatText), "output format: text or yaml")
	rootCmd.PersistentFlags().StringVar(&colorFlag, config.KeyColor, string(output.ColorAuto), "color output: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&verbose, config.KeyVerbose, false, "log evaluation details to stderr")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if err := output.SetColor(cfg.Color); err != nil {
		return err
	}

	logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	return nil
}

// newLogger writes production JSON entries to w, at Debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

// fileChecker reports whether path is an existing regular file.
type fileChecker func(path string) bool

func realFileChecker(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var knownSubcommands = map[string]bool{
	"assume": true, "assure": true, "run": true,
	"help": true, "completion": true,
}

// transformArgsForHashbang rewrites "assertable <file> ..." into
// "assertable run ..." so a check file can start with
// "#!/usr/bin/env assertable". It returns the file to run, if any.
func transformArgsForHashbang(args []string, isFile fileChecker) ([]string, string) {
	if len(args) < 2 {
		return args, ""
	}

	first := args[1]
	if first == "" || first[0] == '-' || knownSubcommands[first] || !isFile(first) {
		return args, ""
	}

	rewritten := append([]string{args[0], "run"}, args[2:]...)
	return rewritten, first
}
