package check

import "fmt"

// Message is a caller-supplied diagnostic. The zero Message selects the
// default template.
type Message struct {
	format string
	args   []any
	set    bool
}

// Msgf returns a custom diagnostic. Without args the format is used verbatim.
func Msgf(format string, args ...any) Message {
	return Message{format: format, args: args, set: true}
}

// IsSet reports whether m overrides the default template.
func (m Message) IsSet() bool {
	return m.set
}

func (m Message) String() string {
	if len(m.args) > 0 {
		return fmt.Sprintf(m.format, m.args...)
	}
	return m.format
}
