package onesystem

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchArrangePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/arrangementservice/manualArrange/page" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Cookie"); got != "SESSION=abc" {
			t.Errorf("Cookie = %q, want SESSION=abc", got)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if payload["pageNum_"] != float64(2) {
			t.Errorf("pageNum_ = %v, want 2", payload["pageNum_"])
		}
		condition, _ := payload["condition"].(map[string]interface{})
		if condition["calendar"] != float64(121) {
			t.Errorf("calendar = %v, want 121", condition["calendar"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"total_": 350, "list": [
			{"id": 1, "code": "A1"},
			"not a record",
			{"id": "2", "code": "A2"}
		]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.FetchArrangePage(context.Background(), "SESSION=abc", 121, 2, 200)
	if err != nil {
		t.Fatalf("FetchArrangePage error: %v", err)
	}
	if page.Total != 350 {
		t.Errorf("Total = %d, want 350", page.Total)
	}
	// The non-object entry is dropped, not fatal.
	if len(page.List) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(page.List))
	}
	if page.List[1].ID.Int != 2 {
		t.Errorf("second record id = %d, want 2", page.List[1].ID.Int)
	}
}

func TestFetchArrangePageHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream maintenance"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchArrangePage(context.Background(), "SESSION=abc", 121, 1, 200)
	if err == nil {
		t.Fatal("expected error for HTTP 502")
	}
	got := err.Error()
	if !strings.Contains(got, "HTTP 502") || !strings.Contains(got, "upstream maintenance") {
		t.Errorf("error = %q, want it to mention the status and the body excerpt", got)
	}
}

func TestFetchArrangePageBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>login page</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchArrangePage(context.Background(), "SESSION=abc", 121, 1, 200)
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}
}
