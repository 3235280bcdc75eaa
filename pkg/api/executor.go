package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/samvad-hq/samvad-users-client/pkg/httpclient"
)

const contentTypeJSON = "application/json"

// Executor issues JSON requests against {baseURL}/{resourcePath}{endpoint}.
type Executor struct {
	resourceURL string
	client      httpclient.Client
	log         Logger
}

// Option customizes an Executor.
type Option func(*Executor)

// WithClient swaps the transport, mainly for tests.
func WithClient(c httpclient.Client) Option {
	return func(e *Executor) {
		if c != nil {
			e.client = c
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l Logger) Option {
	return func(e *Executor) { e.log = ensureLogger(l) }
}

// New binds an executor to a base URL and resource path. The URL is joined verbatim.
func New(baseURL, resourcePath string, opts ...Option) *Executor {
	e := &Executor{
		resourceURL: baseURL + "/" + resourcePath,
		log:         noopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		e.client = httpclient.NewRestyClient(0)
	}
	return e
}

// ResourceURL returns the base every endpoint suffix is appended to.
func (e *Executor) ResourceURL() string { return e.resourceURL }

// Request performs one request and returns its settled envelope. It never returns an error
// directly; failures are reported through Result.Err.
func (e *Executor) Request(ctx context.Context, endpoint, method string, body any) *Result {
	res := &Result{Loading: true}
	e.do(ctx, endpoint, method, body, res)
	return res
}

// Start issues the request in the background and returns a handle that can be polled.
func (e *Executor) Start(ctx context.Context, endpoint, method string, body any) *Call {
	c := newCall()
	go func() {
		defer close(c.done)
		e.do(ctx, endpoint, method, body, c.res)
		c.loading.Store(false)
	}()
	return c
}

func (e *Executor) do(ctx context.Context, endpoint, method string, body any, res *Result) {
	defer func() { res.Loading = false }()

	if ctx == nil {
		ctx = context.Background()
	}
	if method == "" {
		method = http.MethodGet
	}
	url := e.resourceURL + endpoint

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			res.Err = &Error{Kind: KindEncode, Message: err.Error(), cause: err}
			e.log.WarnObj("api request encode failed", "request", requestMeta(method, url, res.Err))
			return
		}
		payload = raw
	}

	start := time.Now()
	e.log.DebugObj("api request", "request", map[string]any{
		"method":     method,
		"url":        url,
		"body_bytes": len(payload),
	})

	resp, err := e.client.Do(ctx, method, url, map[string]string{"Content-Type": contentTypeJSON}, payload)
	if err != nil {
		res.Err = &Error{Kind: KindTransport, Message: err.Error(), cause: err}
		e.log.WarnObj("api request failed", "request", requestMeta(method, url, res.Err))
		return
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		text := resp.StatusText()
		res.Err = &Error{
			Kind:       KindHTTP,
			Status:     status,
			StatusText: text,
			Message:    fmt.Sprintf("API error: %d - %s", status, text),
		}
		e.log.WarnObj("api request rejected", "request", requestMeta(method, url, res.Err))
		return
	}

	var data any
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		res.Err = &Error{Kind: KindDecode, Status: status, Message: err.Error(), cause: err}
		e.log.WarnObj("api response decode failed", "request", requestMeta(method, url, res.Err))
		return
	}
	res.Data = data
	res.Raw = json.RawMessage(resp.Body())

	e.log.DebugObj("api request completed", "request", map[string]any{
		"method":     method,
		"url":        url,
		"status":     status,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}

func requestMeta(method, url string, err *Error) map[string]any {
	return map[string]any{
		"method": method,
		"url":    url,
		"kind":   err.Kind,
		"status": err.Status,
		"error":  err.Message,
	}
}
