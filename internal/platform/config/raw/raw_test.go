package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	c := New().Prefix("LOG_")
	if got := c.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("B_")
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"no", true, false},
		{"garbage", true, false},
	}
	for _, tc := range cases {
		t.Setenv("B_X", tc.val)
		if got := c.GetBool("X", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("I_")
	cases := []struct {
		val  string
		want int
	}{
		{"", 3},
		{"12", 12},
		{" 7 ", 7},
		{"-1", 3},
		{"x1", 3},
	}
	for _, tc := range cases {
		t.Setenv("I_N", tc.val)
		if got := c.GetInt("N", 3); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
