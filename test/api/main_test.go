package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

// These tests run against a live server. They are skipped when no server is
// reachable, so `go test ./...` stays green without infrastructure.

var (
	baseURL    = "http://localhost:8080"
	serverUp   bool
	adminToken string
)

func TestMain(m *testing.M) {
	if url := os.Getenv("API_BASE_URL"); url != "" {
		baseURL = url
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err == nil {
		resp.Body.Close()
		serverUp = true
	}

	if serverUp {
		adminToken = loginAdmin()
	}

	os.Exit(m.Run())
}

func requireServer(t *testing.T) {
	t.Helper()
	if !serverUp {
		t.Skipf("no server reachable at %s", baseURL)
	}
}

// loginAdmin picks up admin credentials from the environment. Admin-only
// assertions are skipped when they are not set.
func loginAdmin() string {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return ""
	}

	status, body := doRequest("POST", "/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	if status != http.StatusOK {
		return ""
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return resp.Data.AccessToken
}

func requireAdmin(t *testing.T) {
	t.Helper()
	requireServer(t)
	if adminToken == "" {
		t.Skip("ADMIN_EMAIL/ADMIN_PASSWORD not set")
	}
}

func doRequest(method, path string, payload interface{}, token string) (int, []byte) {
	var buf bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&buf).Encode(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
