// Package config resolves CLI settings from flags, ASSERTABLE_* environment
// variables and an optional assertable.yaml file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vertti/assertable/pkg/operand"
	"github.com/vertti/assertable/pkg/output"
)

// EnvPrefix prefixes environment variables, e.g. ASSERTABLE_FORMAT.
const EnvPrefix = "ASSERTABLE"

// Keys shared by flags, environment variables and the config file.
const (
	KeyFormat  = "format"
	KeyColor   = "color"
	KeyVerbose = "verbose"
	KeyType    = "type"
)

// Config holds the resolved settings.
type Config struct {
	Format  output.Format
	Color   output.ColorMode
	Verbose bool
	Type    operand.Type // default operand type when --type is not given
}

// Load resolves settings. With path empty, assertable.yaml in the working
// directory is read when present; an explicit path must exist. Flags in
// flags that match a key and were set on the command line take precedence.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyFormat, string(output.FormatText))
	v.SetDefault(KeyColor, string(output.ColorAuto))
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyType, string(operand.TypeString))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyFormat, KeyColor, KeyVerbose, KeyType} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag --%s: %w", key, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("assertable")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	format, err := output.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, err
	}
	color := output.ColorMode(v.GetString(KeyColor))
	switch color {
	case output.ColorAuto, output.ColorAlways, output.ColorNever:
	default:
		return Config{}, fmt.Errorf("unknown color mode %q (want auto, always or never)", color)
	}
	typ, err := operand.ParseType(v.GetString(KeyType))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Format:  format,
		Color:   color,
		Verbose: v.GetBool(KeyVerbose),
		Type:    typ,
	}, nil
}
