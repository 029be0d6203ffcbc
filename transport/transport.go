package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Transport is the HTTP-calling primitive the fetcher layer wraps.
// Implementations own connection handling, retries, and TLS; the fetcher
// never looks past this interface.
type Transport interface {
	// Do performs one HTTP exchange. A response with a non-2xx status is
	// returned together with a *Error describing it; the response carries
	// whatever body could be read.
	Do(ctx context.Context, req Request) (*Response, error)
}

// Func adapts a plain function to the Transport interface.
type Func func(ctx context.Context, req Request) (*Response, error)

// Do implements Transport.
func (f Func) Do(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Request describes one outbound HTTP exchange.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// URL is the absolute target URL.
	URL string
	// Headers are the headers to send, keys case-sensitive as supplied.
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any
	// value that will be JSON-encoded.
	Body any
	// Credentials, if set, are applied to the request before sending.
	Credentials *Credentials
	// Timeout overrides the client's default timeout for this request.
	// Zero means no override.
	Timeout time.Duration
}

// Response is the result of an HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Header returns the named response header, or "" if absent.
// Keys are stored in canonical form, so lookup tolerates any casing.
func (r *Response) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	return r.Headers[http.CanonicalHeaderKey(name)]
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
