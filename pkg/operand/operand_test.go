package operand

import (
	"errors"
	"strings"
	"testing"

	"github.com/vertti/assertable/pkg/check"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"", TypeString, false},
		{"string", TypeString, false},
		{"INT", TypeInt, false},
		{"float", TypeFloat, false},
		{"duration", TypeDuration, false},
		{"version", TypeVersion, false},
		{"bool", TypeBool, false},
		{"decimal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		spec      check.Spec
		op        check.Op
		typ       Type
		left      string
		right     string
		wantValue bool
		wantErr   string
	}{
		{"int lt", check.SpecAssume, check.LT, TypeInt, "1", "2", true, ""},
		{"int lt numeric not lexical", check.SpecAssume, check.LT, TypeInt, "9", "10", true, ""},
		{"string lt lexical", check.SpecAssure, check.LT, TypeString, "9", "10", false, ""},
		{"int lt fails", check.SpecAssume, check.LT, TypeInt, "2", "1", false,
			"assumption failed: `assume_lt(left, right)`\n  left: `2`\n right: `1`"},
		{"string ne fails", check.SpecAssume, check.NE, TypeString, "a", "a", false,
			"assumption failed: `assume_ne(left, right)`\n  left: `\"a\"`\n right: `\"a\"`"},
		{"float ge", check.SpecAssume, check.GE, TypeFloat, "1.5", "1.25", true, ""},
		{"duration gt", check.SpecAssume, check.GT, TypeDuration, "1m", "30s", true, ""},
		{"duration fails", check.SpecAssume, check.LT, TypeDuration, "2s", "1s", false,
			"assumption failed: `assume_lt(left, right)`\n  left: `2s`\n right: `1s`"},
		{"version ge", check.SpecAssume, check.GE, TypeVersion, "v1.22.1", "1.21", true, ""},
		{"version lt fails", check.SpecAssumeIO, check.LT, TypeVersion, "2.0.0", "1.9", false,
			"assumption failed: `assume_io_lt(left, right)`\n  left: `2.0.0`\n right: `1.9.0`"},
		{"bool eq", check.SpecAssume, check.EQ, TypeBool, "true", "1", true, ""},
		{"assure int false", check.SpecAssure, check.GT, TypeInt, "1", "2", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.spec, tt.op, tt.typ, tt.left, tt.right, check.Message{})
			if got != tt.wantValue {
				t.Errorf("Evaluate() = %v, want %v", got, tt.wantValue)
			}
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Evaluate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Evaluate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestEvaluate_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		left    string
		right   string
		operand string
	}{
		{"bad left int", TypeInt, "x", "1", "left operand"},
		{"bad right int", TypeInt, "1", "1.5", "right operand"},
		{"bad float", TypeFloat, "one", "1", "left operand"},
		{"bad duration", TypeDuration, "1", "1s", "left operand"},
		{"bad version", TypeVersion, "1.0", "latest", "right operand"},
		{"bad bool", TypeBool, "yes", "true", "left operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(check.SpecAssure, check.EQ, tt.typ, tt.left, tt.right, check.Message{})
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !strings.Contains(err.Error(), tt.operand) {
				t.Errorf("error = %q, want mention of %q", err.Error(), tt.operand)
			}
			var ae *check.AssumptionError
			if errors.As(err, &ae) {
				t.Error("parse errors should not be assumption failures")
			}
		})
	}
}

func TestEvaluate_BoolOrdering(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
	}{
		{"valid bools", "false", "true"},
		{"unparseable bools", "yes", "no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(check.SpecAssure, check.LT, TypeBool, tt.left, tt.right, check.Message{})
			if !errors.Is(err, check.ErrLogic) {
				t.Errorf("error = %v, want check.ErrLogic", err)
			}
			if err != nil && !strings.Contains(err.Error(), "operand type bool is not ordered") {
				t.Errorf("error = %q, want it to name the unordered type", err)
			}
		})
	}
}

func TestEvaluate_FloatDiagnostic(t *testing.T) {
	_, err := Evaluate(check.SpecAssumeIO, check.LT, TypeFloat, "2.0", "1.0", check.Message{})
	want := "assumption failed: `assume_io_lt(left, right)`\n  left: `2.0`\n right: `1.0`"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestEvaluate_CustomMessage(t *testing.T) {
	_, err := Evaluate(check.SpecAssume, check.GT, TypeInt, "1", "2", check.Msgf("replicas too low"))
	if err == nil || err.Error() != "replicas too low" {
		t.Errorf("error = %v, want %q", err, "replicas too low")
	}
}

func TestCondition(t *testing.T) {
	got, err := Condition(check.SpecAssure, "false", check.Message{})
	if got || err != nil {
		t.Errorf("Condition(assure, false) = %v, %v; want false, nil", got, err)
	}

	_, err = Condition(check.SpecAssume, "0", check.Message{})
	want := "assumption failed: `assume(condition)`\n condition: `false`"
	if err == nil || err.Error() != want {
		t.Errorf("Condition(assume, 0) error = %v, want %q", err, want)
	}

	_, err = Condition(check.SpecAssume, "maybe", check.Message{})
	if err == nil || !strings.Contains(err.Error(), "not a valid bool") {
		t.Errorf("Condition(maybe) error = %v, want parse error", err)
	}
}
