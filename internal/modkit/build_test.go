package modkit

import (
	"net/http"
	"reflect"
	"testing"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("zero Build = %+v", b)
	}
}

func TestBuild_OptionsAndCopySemantics(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	type ports struct{ Seats int }

	b := Build(
		WithName("booking"),
		WithPrefix("/booking"),
		WithName("bookings"),
		WithMiddlewares(mid...),
		WithPorts(ports{Seats: 18}),
	)

	if b.Name != "bookings" {
		t.Fatalf("later option should win, Name = %q", b.Name)
	}
	if b.Prefix != "/booking" {
		t.Fatalf("Prefix = %q", b.Prefix)
	}
	if p, ok := InjectedPorts[ports](b); !ok || p.Seats != 18 {
		t.Fatalf("InjectedPorts = %+v %v", p, ok)
	}
	if _, ok := InjectedPorts[string](b); ok {
		t.Fatal("wrong port type reported present")
	}

	mid[0] = func(next http.Handler) http.Handler { return next }
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatal("Built.Mw must be a copy in the original order")
	}
}

func TestDeps_Fallbacks(t *testing.T) {
	t.Parallel()

	var d Deps
	if d.Instruments() == nil {
		t.Fatal("Instruments should fall back to no-op")
	}
	if d.Now()().IsZero() {
		t.Fatal("Now should fall back to the system clock")
	}
}

func TestWithPrefix_Normalizes(t *testing.T) {
	for in, want := range map[string]string{
		"":          "",
		"/":         "",
		"nlp":       "/nlp",
		" /nlp/ ":   "/nlp",
		"/api/v1//": "/api/v1",
	} {
		if got := Build(WithPrefix(in)).Prefix; got != want {
			t.Errorf("WithPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
