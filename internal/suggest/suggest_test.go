package suggest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Suggest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("client") != "firefox" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprintf(w, `[%q,["a1","a2","a3","a4","a5","a6","a7","a8","a9","a10"]]`, r.URL.Query().Get("q"))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	got, err := c.Suggest(context.Background(), "airpods")
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(got) != MaxSuggestions || got[0] != "a1" {
		t.Errorf("unexpected suggestions %v", got)
	}
}

func TestClient_SuggestShortQuery(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	got, err := c.Suggest(context.Background(), "a")
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("expected empty list without error, got %v, %v", got, err)
	}
}

func TestClient_SuggestUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	if _, err := New(ts.URL, ts.Client()).Suggest(context.Background(), "airpods"); err == nil {
		t.Fatal("expected error")
	}
}
