package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	StatusText() string
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// A nil body sends no request payload. Non-2xx statuses are returned as responses, not errors.
type Client interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (Response, error)
}
