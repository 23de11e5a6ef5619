package errors

import (
	"encoding/json"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeExpired, http.StatusBadRequest},
		{ErrorCodeAlreadyVerified, http.StatusBadRequest},
		{ErrorCodeInvalidOTP, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeNamesOnTheWire(t *testing.T) {
	b, err := json.Marshal(Wire{Code: ErrorCodeExpired, Message: "gone"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"code":"otp_expired","message":"gone"}` {
		t.Fatalf("wire json = %s", b)
	}
	if ErrorCode(500).String() != "unknown" {
		t.Fatal("unmapped codes should read as unknown")
	}
}

func TestConstructionWrappingAndCopyOnWrite(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil render")
	}

	src := stderrs.New("root")
	e := Wrapf(src, ErrorCodeUnavailable, "store %s", "down")
	if e.Error() != "store down: root" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if w := WireFrom(e); w.Message != "store down" || w.Code != ErrorCodeUnavailable {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(src); w.Code != ErrorCodeUnknown || w.Message != "root" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatal("WireFrom(nil)")
	}

	base := Validationf("passenger name required")
	tagged := WithOp(WithField(base, "passengerName"), "booking.create")
	te, _ := As(tagged)
	if te.Field() != "passengerName" || te.Op() != "booking.create" {
		t.Fatalf("tags = %q %q", te.Field(), te.Op())
	}
	be, _ := As(base)
	if be.Field() != "" || be.Op() != "" {
		t.Fatal("copy-on-write mutated the original")
	}
	if WithField(src, "x") != src {
		t.Fatal("foreign errors pass through WithField")
	}

	deep := fmt.Errorf("l2: %w", fmt.Errorf("l1: %w", src))
	if Root(deep) != src {
		t.Fatal("Root")
	}
	if WrapIf(nil, ErrorCodeUnknown, "x") != nil || WrapIf(src, ErrorCodeUnknown, "x") == nil {
		t.Fatal("WrapIf")
	}
}

func TestSugarCodes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{Validationf("x"), ErrorCodeValidation},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Conflictf("x"), ErrorCodeConflict},
		{TooManyRequestsf("x"), ErrorCodeTooManyRequests},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Internalf("x"), ErrorCodeUnknown},
		{ErrNotFound, ErrorCodeNotFound},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%v: code %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatal("nil carries no code")
	}
	if st, w := HTTP(New(ErrorCodeInvalidOTP, "Invalid OTP. Please try again.")); st != http.StatusBadRequest || w.Code != ErrorCodeInvalidOTP {
		t.Fatalf("HTTP = %d %+v", st, w)
	}
}

func TestErrorCodeTextRoundTrip(t *testing.T) {
	var got struct{ Code ErrorCode }
	if err := json.Unmarshal([]byte(`{"Code":"otp_expired"}`), &got); err != nil || got.Code != ErrorCodeExpired {
		t.Fatalf("decoded %v, %v", got.Code, err)
	}
	if err := json.Unmarshal([]byte(`{"Code":"no_such_code"}`), &got); err != nil || got.Code != ErrorCodeUnknown {
		t.Fatalf("decoded %v, %v", got.Code, err)
	}
}
