package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRootCmd_CommandTree(t *testing.T) {
	root := NewRootCmd()

	want := []string{"login", "ba", "games", "teams", "points"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestClient_SessionCookiesPersistAcrossCalls(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "tok", Path: "/"})
			w.Write([]byte(`{"message":"Login successful"}`))
		case "/api/ba":
			if c, err := r.Cookie("token"); err != nil || c.Value != "tok" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			w.Write([]byte(`[{"id":"p-2"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, err := c.Post("/api/auth/login", map[string]string{"username": "a", "password": "b"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	raw, err := c.Get("/api/ba")
	if err != nil {
		t.Fatalf("authenticated call failed: %v", err)
	}
	if !strings.Contains(string(raw), "p-2") {
		t.Errorf("response = %s", raw)
	}
}

func TestClient_APIErrorSurfaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := c.Get("/api/teams")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Unauthorized" {
		t.Errorf("error = %q, want the API error message", err.Error())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, json.RawMessage(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("printJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"id": "1"`) {
		t.Errorf("output = %s, want indented JSON", buf.String())
	}
}
