package fetcher

import (
	"time"

	"github.com/kbukum/fetchkit/transport"
)

// Option configures a Fetcher at construction.
type Option func(*core)

// WithTransport sets the transport used for dispatch. Defaults to the
// package default client when unset.
func WithTransport(t transport.Transport) Option {
	return func(c *core) {
		c.transport = t
	}
}

// WithHeaders sets the initial header layer. Initial headers are re-merged
// on every dispatch as the lowest-priority layer.
func WithHeaders(headers map[string]string) Option {
	return func(c *core) {
		c.initial = cloneHeaders(headers)
	}
}

// CallOption configures a single dispatch.
type CallOption func(*transport.Request)

// WithHeader adds a per-call header. Per-call headers win over both initial
// and runtime headers.
func WithHeader(key, value string) CallOption {
	return func(r *transport.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithCallHeaders adds a set of per-call headers.
func WithCallHeaders(headers map[string]string) CallOption {
	return func(r *transport.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			r.Headers[k] = v
		}
	}
}

// WithQueryParam adds a query parameter, passed through to the transport.
func WithQueryParam(key, value string) CallOption {
	return func(r *transport.Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithCredentials attaches per-call credentials, passed through to the
// transport unmodified.
func WithCredentials(creds *transport.Credentials) CallOption {
	return func(r *transport.Request) {
		r.Credentials = creds
	}
}

// WithTimeout sets a per-call timeout, passed through to the transport.
func WithTimeout(d time.Duration) CallOption {
	return func(r *transport.Request) {
		r.Timeout = d
	}
}

// cloneHeaders copies a header map, returning nil for an empty input.
func cloneHeaders(h map[string]string) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
