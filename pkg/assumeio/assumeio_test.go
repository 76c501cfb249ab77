package assumeio

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/vertti/assertable/pkg/check"
)

func TestLT_Success(t *testing.T) {
	got, err := LT(1, 2)
	if !got || err != nil {
		t.Errorf("LT(1, 2) = %v, %v; want true, nil", got, err)
	}

	got, err = LTf(1, 2, "message")
	if !got || err != nil {
		t.Errorf("LTf(1, 2) = %v, %v; want true, nil", got, err)
	}
}

func TestLT_Failure(t *testing.T) {
	got, err := LT(2, 1)
	if got {
		t.Error("LT(2, 1) = true, want false")
	}

	var ie *check.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("error type = %T, want *check.InputError", err)
	}
	if ie.Kind != check.KindInvalidInput {
		t.Errorf("Kind = %q, want %q", ie.Kind, check.KindInvalidInput)
	}
	if !errors.Is(err, fs.ErrInvalid) {
		t.Error("errors.Is(err, fs.ErrInvalid) = false, want true")
	}

	want := "assumption failed: `assume_io_lt(left, right)`\n  left: `2`\n right: `1`"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if ie.Err.Error() != want {
		t.Errorf("wrapped error = %q, want %q", ie.Err.Error(), want)
	}
}

func TestLTf_Failure(t *testing.T) {
	_, err := LTf(2, 1, "message")
	if err == nil || err.Error() != "message" {
		t.Errorf("LTf(2, 1) error = %v, want %q", err, "message")
	}
	if !errors.Is(err, fs.ErrInvalid) {
		t.Error("custom message failures should keep the invalid input kind")
	}
}

func TestOperators_Failures(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (bool, error)
		want string
	}{
		{"EQ", func() (bool, error) { return EQ(1, 2) }, "assume_io_eq"},
		{"NE", func() (bool, error) { return NE("x", "x") }, "assume_io_ne"},
		{"LE", func() (bool, error) { return LE(3, 2) }, "assume_io_le"},
		{"GT", func() (bool, error) { return GT(2, 2) }, "assume_io_gt"},
		{"GE", func() (bool, error) { return GE(1, 2) }, "assume_io_ge"},
		{"Func", func() (bool, error) { return Func(check.LT, 2, 1, func(a, b int) int { return a - b }) }, "assume_io_lt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			var ae *check.AssumptionError
			if !errors.As(err, &ae) {
				t.Fatalf("error = %v, want wrapped *check.AssumptionError", err)
			}
			if ae.Name != tt.want {
				t.Errorf("Name = %q, want %q", ae.Name, tt.want)
			}
			if !errors.Is(err, fs.ErrInvalid) {
				t.Error("errors.Is(err, fs.ErrInvalid) = false, want true")
			}
		})
	}
}

func TestTrue(t *testing.T) {
	got, err := True(true)
	if !got || err != nil {
		t.Errorf("True(true) = %v, %v; want true, nil", got, err)
	}

	_, err = True(false)
	want := "assumption failed: `assume_io(condition)`\n condition: `false`"
	if err == nil || err.Error() != want {
		t.Errorf("True(false) error = %v, want %q", err, want)
	}

	_, err = Truef(false, "message")
	if err == nil || err.Error() != "message" {
		t.Errorf("Truef(false) error = %v, want %q", err, "message")
	}
}
