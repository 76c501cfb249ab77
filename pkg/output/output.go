package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"gopkg.in/yaml.v3"

	"github.com/vertti/assertable/pkg/check"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ColorMode controls ANSI colors in text output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		setColors(false)
	}
}

func setColors(on bool) {
	if on {
		green, red, dim, reset = "\033[32m", "\033[31m", "\033[2m", "\033[0m"
		return
	}
	green, red, dim, reset = "", "", "", ""
}

// SetColor applies a color mode. ColorAuto enables colors when stdout
// supports them.
func SetColor(mode ColorMode) error {
	switch mode {
	case ColorAuto, "":
		setColors(supportscolor.Stdout().SupportsColor)
	case ColorAlways:
		setColors(true)
	case ColorNever:
		setColors(false)
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or yaml)", s)
}

// Print writes r to w in the given format.
func Print(w io.Writer, format Format, r check.Result) error {
	if format == FormatYAML {
		return PrintYAML(w, r)
	}
	PrintResult(w, r)
	return nil
}

// PrintResult outputs a check result with colored status. Detail lines are
// aligned under the name; multi-line details keep their own line breaks.
func PrintResult(w io.Writer, r check.Result) {
	indent := strings.Repeat(" ", len("[OK] "))
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		indent = strings.Repeat(" ", len("[FAIL] "))
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		for _, line := range strings.Split(d, "\n") {
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(line))
		}
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return s
	}
	return dim + s[:idx+1] + reset + s[idx+1:]
}

type document struct {
	Name    string   `yaml:"name"`
	Status  string   `yaml:"status"`
	Value   bool     `yaml:"value"`
	Details []string `yaml:"details,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

// PrintYAML writes r as a single YAML document.
func PrintYAML(w io.Writer, r check.Result) error {
	doc := document{
		Name:    r.Name,
		Status:  string(r.Status),
		Value:   r.Value,
		Details: r.Details,
	}
	if r.Err != nil {
		doc.Error = r.Err.Error()
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return enc.Close()
}
