package strutil

import "testing"

func TestFromNulTerminated(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte{0}, ""},
		{[]byte{'A', 0}, "A"},
		{[]byte{'A', 'B', 0, 'C'}, "AB"},
		{[]byte{'A', 'B', 0, 'C', 0}, "AB"},
		{[]byte{'A', 'B'}, "AB"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := FromNulTerminated(c.in); got != c.want {
			t.Errorf("FromNulTerminated(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestContainsNul(t *testing.T) {
	if ContainsNul("plain") {
		t.Error("plain string reported as containing nul")
	}
	if !ContainsNul("a\x00b") {
		t.Error("interior nul not detected")
	}
}
