package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/assertable/pkg/check"
	"github.com/vertti/assertable/pkg/cmpcheck"
	"github.com/vertti/assertable/pkg/condcheck"
	"github.com/vertti/assertable/pkg/config"
	"github.com/vertti/assertable/pkg/jsonsource"
	"github.com/vertti/assertable/pkg/operand"
)

// conditionOp selects a condition check in place of a comparison operator.
const conditionOp = "true"

// compareFlags are the flags shared by assume and assure.
type compareFlags struct {
	io             bool
	typ            string
	message        string
	jsonFile       string
	extractVersion bool
}

func (f *compareFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.io, "io", false, "report failures as invalid input errors")
	cmd.Flags().StringVarP(&f.typ, config.KeyType, "t", "", "operand type: string, int, float, duration, version, bool (default string)")
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "failure message replacing the default diagnostic")
	cmd.Flags().StringVar(&f.jsonFile, "json", "", "JSON file to read operands from; operands become gjson paths")
	cmd.Flags().BoolVar(&f.extractVersion, "extract-version", false, "compare the first version found in each operand (requires --type version)")
}

const compareLong = `Operators: eq, ne, lt, le, gt, ge. Use "true <condition>" to check a
boolean such as "true", "1", "false" or "0".

Operands are strings unless --type says otherwise. Put negative numbers
after "--" so they are not read as flags.`

func runCompare(cmd *cobra.Command, family check.Family, f *compareFlags, args []string) error {
	spec := check.Spec{Family: family, Encoding: check.Plain}
	if f.io {
		spec.Encoding = check.IO
	}

	if args[0] == conditionOp {
		if err := requireArgCount(args, 2, conditionOp+" <condition>"); err != nil {
			return err
		}
		if err := requireNoneOf("a condition",
			flagSet{"--json", f.jsonFile != ""},
			flagSet{"--extract-version", f.extractVersion},
			flagSet{"--type", cmd.Flags().Changed(config.KeyType)},
		); err != nil {
			return err
		}
		return runCheck(cmd, &condcheck.Check{Spec: spec, Expr: args[1], Message: f.message})
	}

	op, err := check.ParseOp(args[0])
	if err != nil {
		return err
	}
	if err := requireArgCount(args, 3, "<op> <left> <right>"); err != nil {
		return err
	}
	if err := requireValue(
		flagSet{"--extract-version", f.extractVersion},
		flagValue{"--type", string(cfg.Type)},
		string(operand.TypeVersion),
	); err != nil {
		return err
	}

	c := &cmpcheck.Check{
		Spec:           spec,
		Op:             op,
		Type:           cfg.Type,
		Left:           args[1],
		Right:          args[2],
		Message:        f.message,
		ExtractVersion: f.extractVersion,
	}
	if f.jsonFile != "" {
		c.JSON = &jsonsource.Source{File: f.jsonFile, FS: &jsonsource.RealFileSystem{}}
	}

	return runCheck(cmd, c)
}
