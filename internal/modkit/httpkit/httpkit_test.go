package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "voicebooking/internal/platform/errors"
	phttp "voicebooking/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type seatIn struct {
	Seat string `json:"seat" validate:"required"`
}

func newRouter() (Router, http.Handler) {
	mux := chi.NewRouter()
	return phttp.AdaptChi(mux), mux
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSugar(t *testing.T) {
	r, h := newRouter()
	Get(r, "/ping", func(*http.Request) (any, error) { return map[string]bool{"ok": true}, nil })
	Get(r, "/missing", func(*http.Request) (any, error) { return nil, perr.NotFoundf("Booking not found") })
	PostJSON(r, "/seat", func(_ *http.Request, in seatIn) (any, error) { return Created(in), nil })
	PostLoose(r, "/loose", func(_ *http.Request, in seatIn) (any, error) { return in, nil })

	cases := []struct {
		name, method, path, body string
		status                   int
		contains                 string
	}{
		{"get ok", http.MethodGet, "/ping", "", http.StatusOK, `"ok":true`},
		{"get err", http.MethodGet, "/missing", "", http.StatusNotFound, `"error":"Booking not found"`},
		{"post created", http.MethodPost, "/seat", `{"seat":"12A"}`, http.StatusCreated, `"seat":"12A"`},
		{"post invalid", http.MethodPost, "/seat", `{}`, http.StatusBadRequest, `"field":"seat"`},
		{"post unknown field", http.MethodPost, "/seat", `{"seat":"1A","x":1}`, http.StatusBadRequest, `"code":"invalid_json"`},
		{"loose unknown field", http.MethodPost, "/loose", `{"seat":"1A","x":1}`, http.StatusOK, `"seat":"1A"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(h, tc.method, tc.path, tc.body)
			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", rr.Code, tc.status, rr.Body.String())
			}
			if !strings.Contains(rr.Body.String(), tc.contains) {
				t.Fatalf("body %s missing %s", rr.Body.String(), tc.contains)
			}
		})
	}
}

func TestAliases(t *testing.T) {
	if OK(1).Status != http.StatusOK || Created(1).Status != http.StatusCreated || NoContent().Status != http.StatusNoContent {
		t.Fatal("status helpers")
	}
	if _, ok := Error(errors.New("x")).Body.(error); !ok {
		t.Fatal("Error should carry the error as body")
	}
}

func TestMountAPIAndUnder(t *testing.T) {
	r, h := newRouter()
	tag := func(v string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Mw", v)
				next.ServeHTTP(w, r)
			})
		}
	}
	MountAPI(r, []func(http.Handler) http.Handler{tag("api")}, func(api Router) {
		MountUnder(api, "/nlp", []func(http.Handler) http.Handler{tag("nlp")}, func(nr Router) {
			Get(nr, "/status", func(*http.Request) (any, error) { return "nlp", nil })
		})
		MountUnder(api, "", nil, func(root Router) {
			Get(root, "/health", func(*http.Request) (any, error) { return "ok", nil })
		})
	})

	rr := serve(h, http.MethodGet, "/api/nlp/status", "")
	if rr.Code != http.StatusOK || strings.Join(rr.Header().Values("X-Mw"), ",") != "api,nlp" {
		t.Fatalf("nested mount: %d %v", rr.Code, rr.Header().Values("X-Mw"))
	}
	rr = serve(h, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK || strings.Join(rr.Header().Values("X-Mw"), ",") != "api" {
		t.Fatalf("root group: %d %v", rr.Code, rr.Header().Values("X-Mw"))
	}
}

func TestCommonStack(t *testing.T) {
	stack := CommonStack(StackOptions{})
	hit := 0
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		if chimw.GetReqID(r.Context()) == "" {
			t.Error("RequestID should run before handlers")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	rr := serve(h, http.MethodGet, "/api/health", "")
	if hit != 1 || rr.Code != http.StatusNoContent {
		t.Fatalf("hit=%d status=%d", hit, rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("NoCache should run")
	}
}
