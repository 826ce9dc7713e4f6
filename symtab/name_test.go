package symtab

import "testing"

func TestIsValidName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"foo", true},
		{"_foo", true},
		{"@foo", true},
		{"foo_bar123", true},
		{"1foo", false},
		{"", false},
		{"a", false},
	}
	for _, c := range cases {
		if got := IsValidName(c.name); got != c.want {
			t.Errorf("IsValidName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestExpandLocalOutsideProc(t *testing.T) {
	if got := ExpandLocal("@loop", ""); got != "_loop" {
		t.Errorf("ExpandLocal(@loop, \"\") = %q, want _loop", got)
	}
}

func TestExpandLocalInsideProc(t *testing.T) {
	if got := ExpandLocal("@loop", "main"); got != "main_loop" {
		t.Errorf("ExpandLocal(@loop, main) = %q, want main_loop", got)
	}
}

func TestExpandLocalPassesThroughNonLocal(t *testing.T) {
	if got := ExpandLocal("foo", "main"); got != "foo" {
		t.Errorf("ExpandLocal(foo, main) = %q, want foo", got)
	}
}

func TestExpandLocalPreservesOperandTail(t *testing.T) {
	got := ExpandLocal("@foo ( 4 )", "main")
	if got != "main_foo ( 4 )" {
		t.Errorf("ExpandLocal(@foo ( 4 ), main) = %q, want \"main_foo ( 4 )\"", got)
	}
}
