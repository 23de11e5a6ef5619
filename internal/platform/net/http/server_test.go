package http_test

import (
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voicebooking/internal/platform/config"
	phttp "voicebooking/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type echo struct {
	Say string `json:"say"`
}

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestServerRoutesAndFallbacks(t *testing.T) {
	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("SRVTEST_"), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatal("option hook not invoked")
	}
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}

	r := srv.Router()
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", func(api phttp.Router) {
		api.Group(func(g phttp.Router) {
			phttp.GetJSON(g, "/ping", func(*stdhttp.Request) (any, error) { return map[string]string{"pong": "ok"}, nil })
		})
		phttp.PostJSON(api, "/echo", func(_ *stdhttp.Request, in echo) (any, error) { return in, nil })
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	res, err := stdhttp.Get(ts.URL + "/api/ping")
	if err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if res.StatusCode != stdhttp.StatusOK || res.Header.Get("X-MW") != "yes" {
		t.Fatalf("ping: %d %v", res.StatusCode, res.Header)
	}

	res, err = stdhttp.Get(ts.URL + "/nowhere")
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]any
	_ = json.NewDecoder(res.Body).Decode(&body)
	_ = res.Body.Close()
	if res.StatusCode != stdhttp.StatusNotFound || body["error"] != "Route not found" {
		t.Fatalf("404 fallback: %d %v", res.StatusCode, body)
	}

	res, err = stdhttp.Get(ts.URL + "/api/echo")
	if err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if res.StatusCode != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("405 fallback: %d", res.StatusCode)
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	t.Setenv("RUNTEST_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New().Prefix("RUNTEST_"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMountProfiler(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	phttp.MountProfiler(r, "/debug", false)
	phttp.MountProfiler(r, "/debug", true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("pprof index status = %d", rec.Code)
	}
}
