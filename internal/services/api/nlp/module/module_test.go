package module

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"voicebooking/internal/core/intent"
	modkit "voicebooking/internal/modkit"
	"voicebooking/internal/platform/config"
	phttp "voicebooking/internal/platform/net/http"
	"voicebooking/internal/platform/testkit"
	"voicebooking/internal/services/api/nlp/domain"

	"github.com/go-chi/chi/v5"
)

func newAPI(t *testing.T, prefix string) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	m := New(modkit.Deps{Cfg: config.New().Prefix(prefix)})
	phttp.AdaptChi(mux).Route("/api", m.MountRoutes)
	return mux
}

func TestNLPRoutes(t *testing.T) {
	h := newAPI(t, "NLPTEST_ROUTES_")

	rr := testkit.Do(t, h, http.MethodPost, "/api/nlp/process", map[string]any{"text": "hello"})
	testkit.Status(t, rr, http.StatusOK)
	out := testkit.Decode[domain.ProcessOutput](t, rr)
	if !out.Success || out.SessionID == "" || out.Result.Intent != intent.Greeting {
		t.Fatalf("out = %+v", out)
	}
	testkit.MustContain(t, rr.Body.String(), `"action":{"type":"NONE"}`)

	rr = testkit.Do(t, h, http.MethodPost, "/api/nlp/process", map[string]any{
		"text": "12A window", "context": "seat-selection", "sessionId": out.SessionID, "extra": true,
	})
	testkit.Status(t, rr, http.StatusOK)
	if r := testkit.Decode[domain.ProcessOutput](t, rr).Result; r.Intent != intent.SelectSeat || r.Entities.SeatNumber != "12A" {
		t.Fatalf("result = %+v", r)
	}

	rr = testkit.Do(t, h, http.MethodGet, "/api/nlp/sessions/"+out.SessionID, nil)
	testkit.Status(t, rr, http.StatusOK)
	if s := testkit.Decode[domain.Session](t, rr); len(s.Turns) != 2 {
		t.Fatalf("session = %+v", s)
	}

	rr = testkit.Do(t, h, http.MethodGet, "/api/nlp/status", nil)
	testkit.Status(t, rr, http.StatusOK)
	if st := testkit.Decode[domain.Status](t, rr); st.ActiveSessions != 1 || len(st.Intents) != 22 {
		t.Fatalf("status = %+v", st)
	}

	rr = testkit.Do(t, h, http.MethodPost, "/api/nlp/reset", map[string]any{"sessionId": out.SessionID})
	testkit.Status(t, rr, http.StatusOK)
	testkit.MustContain(t, rr.Body.String(), "Conversation reset")

	rr = testkit.Do(t, h, http.MethodGet, "/api/nlp/sessions/"+out.SessionID, nil)
	testkit.Status(t, rr, http.StatusNotFound)

	rr = testkit.Do(t, h, http.MethodPost, "/api/nlp/reset", `{}`)
	testkit.Status(t, rr, http.StatusBadRequest)
}

func TestNLPRateLimit(t *testing.T) {
	t.Setenv("NLPTEST_RL_RATE_PER_MIN", "1")
	t.Setenv("NLPTEST_RL_RATE_BURST", "1")
	h := newAPI(t, "NLPTEST_RL_")

	testkit.Status(t, testkit.Do(t, h, http.MethodGet, "/api/nlp/status", nil), http.StatusOK)
	rr := testkit.Do(t, h, http.MethodGet, "/api/nlp/status", nil)
	testkit.Status(t, rr, http.StatusTooManyRequests)
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After")
	}
}

func TestCatalogueOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.yaml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NLPTEST_BAD_CATALOGUE", path)
	testkit.MustPanic(t, func() { New(modkit.Deps{Cfg: config.New().Prefix("NLPTEST_BAD_")}) })
}
