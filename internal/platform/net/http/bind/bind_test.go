package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "voicebooking/internal/platform/errors"
)

type payload struct {
	Name  string `json:"name" validate:"required,min=2"`
	Seats int    `json:"seats" validate:"omitempty,max=9"`
}

func TestParseJSON(t *testing.T) {
	cases := []struct {
		name      string
		method    string
		body      string
		opts      []JSONOptions
		wantCode  perr.ErrorCode
		wantField string
		wantErr   bool
	}{
		{name: "ok", method: "POST", body: `{"name":"Alice","seats":2}`},
		{name: "empty post", method: "POST", body: "", wantErr: true, wantCode: perr.ErrorCodeJSON},
		{name: "empty get tolerated", method: "GET", body: ""},
		{name: "empty allowed", method: "POST", body: "", opts: []JSONOptions{{AllowEmptyBody: true}}},
		{name: "broken json", method: "POST", body: `{`, wantErr: true, wantCode: perr.ErrorCodeJSON},
		{name: "unknown field", method: "POST", body: `{"name":"Al","x":1}`, wantErr: true, wantCode: perr.ErrorCodeJSON},
		{name: "unknown field allowed", method: "POST", body: `{"name":"Al","x":1}`, opts: []JSONOptions{{AllowUnknown: true}}},
		{name: "trailing data", method: "POST", body: `{"name":"Al"} {}`, wantErr: true, wantCode: perr.ErrorCodeJSON},
		{name: "required", method: "POST", body: `{"seats":1}`, wantErr: true, wantCode: perr.ErrorCodeValidation, wantField: "name"},
		{name: "max", method: "POST", body: `{"name":"Al","seats":12}`, wantErr: true, wantCode: perr.ErrorCodeValidation, wantField: "seats"},
		{name: "too large", method: "POST", body: `{"name":"` + strings.Repeat("a", 64) + `"}`, opts: []JSONOptions{{MaxBytes: 16}}, wantErr: true, wantCode: perr.ErrorCodeJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/", strings.NewReader(tc.body))
			if tc.body == "" {
				req = httptest.NewRequest(tc.method, "/", http.NoBody)
			}
			_, err := ParseJSON[payload](req, tc.opts...)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if perr.CodeOf(err) != tc.wantCode {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.wantCode, err)
			}
			if tc.wantField != "" {
				e, _ := perr.As(err)
				if e.Field() != tc.wantField {
					t.Fatalf("field = %q, want %q", e.Field(), tc.wantField)
				}
			}
		})
	}
}

func TestShortTranslations(t *testing.T) {
	err := Struct(payload{Name: "A"})
	if err == nil || err.Error() != "name must be at least 2" {
		t.Fatalf("min message = %v", err)
	}
}

func TestStructMisuseIsInternal(t *testing.T) {
	if perr.CodeOf(Struct(42)) != perr.ErrorCodeUnknown {
		t.Fatal("validating a non struct should be an internal error")
	}
}
