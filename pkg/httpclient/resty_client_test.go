package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRestyClientDoSendsBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		if string(raw) != `{"a":1}` {
			t.Errorf("unexpected body %q", raw)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewRestyClient(0)
	resp, err := c.Do(context.Background(), http.MethodPost, srv.URL, map[string]string{"Content-Type": "application/json"}, []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode())
	}
	if resp.StatusText() != "Created" {
		t.Fatalf("expected status text Created, got %q", resp.StatusText())
	}
	if string(resp.Body()) != `{"ok":true}` {
		t.Fatalf("unexpected response body %q", resp.Body())
	}
}

func TestRestyClientDoNilBodySendsNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if len(raw) != 0 {
			t.Errorf("expected empty body, got %q", raw)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewRestyClient(0).Do(context.Background(), http.MethodGet, srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode())
	}
}

func TestRestyClientNon2xxIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	resp, err := NewRestyClient(0).Do(context.Background(), http.MethodGet, srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusNotFound || resp.StatusText() != "Not Found" {
		t.Fatalf("unexpected status %d %q", resp.StatusCode(), resp.StatusText())
	}
}

func TestReasonPhrase(t *testing.T) {
	cases := []struct {
		code   int
		status string
		want   string
	}{
		{code: 404, status: "404 Not Found", want: "Not Found"},
		{code: 418, status: "418 Short And Stout", want: "Short And Stout"},
		{code: 500, status: "500", want: "Internal Server Error"},
		{code: 502, status: "", want: "Bad Gateway"},
	}
	for _, tc := range cases {
		if got := reasonPhrase(tc.code, tc.status); got != tc.want {
			t.Errorf("reasonPhrase(%d, %q) = %q, want %q", tc.code, tc.status, got, tc.want)
		}
	}
}
