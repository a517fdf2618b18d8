package format

import "testing"

func TestScalarKindWidth(t *testing.T) {
	cases := []struct {
		kind ScalarKind
		want int
	}{
		{KindByte, 1},
		{KindFloat32, 4},
		{KindInt32, 4},
		{KindUInt32, 4},
	}
	for _, c := range cases {
		if got := c.kind.Width(); got != c.want {
			t.Fatalf("%s.Width() = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestParseScalarKind(t *testing.T) {
	for _, k := range []ScalarKind{KindByte, KindFloat32, KindInt32, KindUInt32} {
		got, err := ParseScalarKind(k.String())
		if err != nil {
			t.Fatalf("ParseScalarKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("ParseScalarKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseScalarKind("double"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
