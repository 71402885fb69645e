package quote

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewWithURL(srv.URL)
}

func TestThoughtOfTheDay(t *testing.T) {
	c := serve(t, http.StatusOK, `[{"q":"Stay hungry","a":"Steve Jobs"}]`)
	got := c.ThoughtOfTheDay()
	want := `"Stay hungry" - Steve Jobs`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestThoughtOfTheDayUsesFirstQuote(t *testing.T) {
	c := serve(t, http.StatusOK, `[{"q":"First","a":"A"},{"q":"Second","a":"B"}]`)
	if got := c.ThoughtOfTheDay(); got != `"First" - A` {
		t.Fatalf("should use first element, got %q", got)
	}
}

func TestThoughtOfTheDayNon200(t *testing.T) {
	c := serve(t, http.StatusTooManyRequests, `rate limited`)
	if got := c.ThoughtOfTheDay(); got != FallbackBadResponse {
		t.Fatalf("non-200 should yield fallback, got %q", got)
	}
}

func TestThoughtOfTheDayEmptyArray(t *testing.T) {
	c := serve(t, http.StatusOK, `[]`)
	if got := c.ThoughtOfTheDay(); got != FallbackBadResponse {
		t.Fatalf("empty payload should yield fallback, got %q", got)
	}
}

func TestThoughtOfTheDayEmptyQuoteText(t *testing.T) {
	c := serve(t, http.StatusOK, `[{"q":"","a":"Nobody"}]`)
	if got := c.ThoughtOfTheDay(); got != FallbackBadResponse {
		t.Fatalf("blank quote should yield fallback, got %q", got)
	}
}

func TestThoughtOfTheDayMalformedJSON(t *testing.T) {
	c := serve(t, http.StatusOK, `{not json`)
	if got := c.ThoughtOfTheDay(); got != FallbackUnreachable {
		t.Fatalf("malformed body should yield fallback, got %q", got)
	}
}

func TestThoughtOfTheDayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := NewWithURL(srv.URL)
	if got := c.ThoughtOfTheDay(); got != FallbackUnreachable {
		t.Fatalf("transport error should yield fallback, got %q", got)
	}
}
