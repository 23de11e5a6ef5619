package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	if got := IfEmpty([]int{1, 2, 3}, []int{9}); len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}
	var empty []string
	if got := IfEmpty(empty, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestFirstNonBlank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"", "  ", "a", "b"}, "a"},
		{[]string{"x"}, "x"},
		{[]string{" ", ""}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := FirstNonBlank(c.in...); got != c.want {
			t.Fatalf("FirstNonBlank(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"api":     "/api",
		"/api/":   "/api",
		" /nlp ":  "/nlp",
		"a/b/":    "/a/b",
		"//api//": "/api",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	for _, bad := range []string{"", " ", "/", "//"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustPrefix(%q) should panic", bad)
				}
			}()
			_ = MustPrefix(bad)
		}()
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello..."},
		{"héllo", 2, "hé..."},
		{"abc", 0, "abc"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
