package integration

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"trackstat/internal/app/dto"
)

var baseURL = os.Getenv("E2E_BASE_URL")

func e2eGet(t *testing.T, path string, wantStatus int, out any) {
	t.Helper()

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		t.Fatalf("unexpected status %d (want %d), body=%v", resp.StatusCode, wantStatus, errBody)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func requireE2E(t *testing.T) {
	t.Helper()
	if baseURL == "" {
		t.Skip("E2E_BASE_URL not set")
	}
}

func TestE2E_Health(t *testing.T) {
	requireE2E(t)

	var resp map[string]string
	e2eGet(t, "/health", http.StatusOK, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("unexpected health response %v", resp)
	}
}

func TestE2E_ProgressWellFormed(t *testing.T) {
	requireE2E(t)

	var resp dto.ProgressResponse
	e2eGet(t, "/analytics/progress?project_id=p1", http.StatusOK, &resp)

	for _, it := range resp.Items {
		if it.Completed > it.Total {
			t.Fatalf("completed exceeds total: %+v", it)
		}
		if it.CompletedRate < 0 || it.CompletedRate > 100 {
			t.Fatalf("rate out of range: %+v", it)
		}
	}
}

func TestE2E_MissingProjectRejected(t *testing.T) {
	requireE2E(t)

	var resp dto.ErrorResponse
	e2eGet(t, "/analytics/workload", http.StatusBadRequest, &resp)
	if resp.Error.Code != "BAD_REQUEST" {
		t.Fatalf("want BAD_REQUEST, got %+v", resp.Error)
	}
}
