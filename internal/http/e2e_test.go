package httpapp_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/waypost/waypost/internal/auth"
	"github.com/waypost/waypost/internal/config"
	httpapp "github.com/waypost/waypost/internal/http"
	"github.com/waypost/waypost/internal/media"
	"github.com/waypost/waypost/internal/store/sqlite"
)

// TestEndToEndServer exercises the full register, add, list flow over a
// real TCP listener.
func TestEndToEndServer(t *testing.T) {
	st, err := sqlite.Open("file:e2e_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	cfg := config.Config{
		Addr:      ":0",
		JWTSecret: "e2e-secret",
		TokenTTL:  time.Hour,
		BaseURL:   "http://localhost:8000",
	}
	mediaStore, err := media.New(t.TempDir(), cfg.BaseURL)
	if err != nil {
		t.Fatalf("init media: %v", err)
	}
	authSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpapp.NewServer(st, authSvc, mediaStore, cfg, logger)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	httpServer := &http.Server{Handler: server}
	go func() {
		_ = httpServer.Serve(listener)
	}()
	defer httpServer.Close()

	baseURL := "http://" + listener.Addr().String()

	body, _ := json.Marshal(map[string]any{
		"fullName": "E2E User",
		"email":    "e2e@example.com",
		"password": "password123",
	})
	resp, err := http.Post(baseURL+"/create-account", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create account: expected 201, got %d", resp.StatusCode)
	}
	var registered map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	resp.Body.Close()
	token, _ := registered["accessToken"].(string)
	if token == "" {
		t.Fatal("no access token on register")
	}

	body, _ = json.Marshal(map[string]any{
		"title":           "E2E Story",
		"story":           "Went somewhere, saw things.",
		"visitedLocation": []string{"Reykjavik"},
		"imageUrl":        "http://localhost:8000/uploads/e2e.png",
		"visitedDate":     "2024-06-15",
	})
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/add-travel-story", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("add story: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add story: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = http.NewRequest(http.MethodGet, baseURL+"/get-travel-story", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("list stories: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list stories: expected 200, got %d", resp.StatusCode)
	}
	var listed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	resp.Body.Close()
	stories, _ := listed["stories"].([]any)
	if len(stories) != 1 {
		t.Fatalf("expected 1 story, got %d", len(stories))
	}
	story, _ := stories[0].(map[string]any)
	if story["title"] != "E2E Story" {
		t.Fatalf("unexpected story %v", story)
	}
}
