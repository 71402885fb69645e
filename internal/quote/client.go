// Package quote fetches the thought of the day from the ZenQuotes API.
// Every failure mode degrades to a fixed fallback string; callers never
// see an error and the request is attempted exactly once.
package quote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultURL = "https://zenquotes.io/api/today"

// Fallbacks used when the service is unreachable or returns junk.
const (
	// FallbackBadResponse covers non-200 statuses and empty payloads.
	FallbackBadResponse = "The best way to get started is to quit talking and begin doing. - Walt Disney"
	// FallbackUnreachable covers transport errors and undecodable bodies.
	FallbackUnreachable = "The future depends on what you do today. - Mahatma Gandhi"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New() *Client {
	return NewWithURL(defaultURL)
}

func NewWithURL(url string) *Client {
	return &Client{
		baseURL: url,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type apiQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// ThoughtOfTheDay returns the first quote from the API formatted as
// `"<quote>" - <author>`, or a fallback string on any failure.
func (c *Client) ThoughtOfTheDay() string {
	resp, err := c.http.Get(c.baseURL)
	if err != nil {
		return FallbackUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackBadResponse
	}

	var quotes []apiQuote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return FallbackUnreachable
	}
	if len(quotes) == 0 || quotes[0].Q == "" {
		return FallbackBadResponse
	}
	return fmt.Sprintf("\"%s\" - %s", quotes[0].Q, quotes[0].A)
}
