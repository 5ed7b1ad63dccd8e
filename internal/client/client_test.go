package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/stocks/batch" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		var req map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req["symbols"]) != 2 || req["symbols"][0] != "INFY" {
			t.Errorf("symbols = %v", req["symbols"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"symbol":"INFY","price":1430.2,"peRatio":null,"earningsDate":null,"marketCap":null},{"symbol":"TCS","price":0,"peRatio":null,"earningsDate":null,"marketCap":null}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	quotes, err := c.FetchBatch(context.Background(), []string{"INFY", "TCS"})
	if err != nil {
		t.Fatalf("FetchBatch() error = %v", err)
	}
	if len(quotes) != 2 || quotes[0].Price != 1430.2 || quotes[1].Price != 0 {
		t.Errorf("quotes = %+v", quotes)
	}
}

func TestFetchBatchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to fetch stock data"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	if _, err := c.FetchBatch(context.Background(), []string{"INFY"}); err == nil {
		t.Error("FetchBatch() returned nil error on 500")
	}
}

func TestFetchBatchUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := c.FetchBatch(context.Background(), []string{"INFY"}); err == nil {
		t.Error("FetchBatch() returned nil error on unreachable server")
	}
}
