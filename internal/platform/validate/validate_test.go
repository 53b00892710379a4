package validate

import (
	"testing"

	perr "gasanalysis/internal/platform/errors"
)

type opts struct {
	Inputs []string `flag:"INPUT" validate:"min=1"`
	Start  int      `flag:"start" validate:"gte=0"`
	Output string   `flag:"output" validate:"omitempty,image_ext"`
}

func TestStruct_OK(t *testing.T) {
	t.Parallel()
	if err := Struct(opts{Inputs: []string{"a.gz"}, Output: "plots/x-{0}.PDF"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Struct(opts{Inputs: []string{"a.gz"}}); err != nil {
		t.Fatalf("empty output must be allowed: %v", err)
	}
}

func TestStruct_Failures(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		in    opts
		field string
		msg   string
	}{
		{"no inputs", opts{}, "INPUT", "INPUT needs at least 1 value(s)"},
		{"negative start", opts{Inputs: []string{"a"}, Start: -1}, "start", "--start must be at least 0"},
		{"bad ext", opts{Inputs: []string{"a"}, Output: "out.txt"}, "output", "--output must end in one of"},
	}
	for _, c := range cases {
		err := Struct(c.in)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !perr.IsCode(err, perr.ErrorCodeUsage) {
			t.Fatalf("%s: expected usage code, got %v", c.name, perr.CodeOf(err))
		}
		if perr.FieldOf(err) != c.field {
			t.Fatalf("%s: field=%q want %q", c.name, perr.FieldOf(err), c.field)
		}
		if got := err.Error(); len(got) < len(c.msg) || got[:len(c.msg)] != c.msg {
			t.Fatalf("%s: message %q does not start with %q", c.name, got, c.msg)
		}
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	t.Parallel()
	if err := Struct(42); err == nil {
		t.Fatalf("expected error for non-struct")
	}
}
