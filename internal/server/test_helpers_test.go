package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"game-night/internal/config"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func newNightServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(nil, config.Default())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func createNight(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/nights", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["night_id"].(string)
}

func addRound(t *testing.T, ts *httptest.Server, nightID string, payload map[string]any) int {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/nights/"+nightID+"/rounds", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return int(body["round_id"].(float64))
}

func fetchNight(t *testing.T, ts *httptest.Server, nightID string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodGet, "/api/nights/"+nightID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func timerCommand(t *testing.T, ts *httptest.Server, nightID string, roundID int, action string) *http.Response {
	t.Helper()
	return doRequest(t, ts, http.MethodPost,
		"/api/nights/"+nightID+"/rounds/"+strconv.Itoa(roundID)+"/timer",
		map[string]string{"action": action})
}

func roundByID(t *testing.T, payload map[string]any, roundID int) map[string]any {
	t.Helper()
	rounds := payload["rounds"].([]any)
	for _, entry := range rounds {
		round := entry.(map[string]any)
		if int(round["id"].(float64)) == roundID {
			return round
		}
	}
	t.Fatalf("round %d not found in payload", roundID)
	return nil
}

func roundIDs(payload map[string]any) []int {
	rounds := payload["rounds"].([]any)
	ids := make([]int, 0, len(rounds))
	for _, entry := range rounds {
		ids = append(ids, int(entry.(map[string]any)["id"].(float64)))
	}
	return ids
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

// newIdleEngine builds an engine whose scheduled fires never arrive inside a
// test, so ticks can be driven by hand.
func newIdleEngine() *timerEngine {
	return newTimerEngine(time.Hour, func(timerKey) {})
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
