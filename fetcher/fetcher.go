package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/kbukum/fetchkit/transport"
)

// ErrorReporter is the side-channel sink notified on every failure path.
// Implementations must be safe for concurrent use.
type ErrorReporter interface {
	ReportError(message string, err error)
}

// Observer is a callback invoked on every transport-level HTTP-status error.
// Observers never fire for connection-level or generic failures.
type Observer func(*transport.Error)

// core holds the state shared by every Fetcher instantiation. The runtime
// header slot and observer list are guarded; dispatch reads snapshots.
type core struct {
	base      string
	initial   map[string]string
	transport transport.Transport
	reporter  ErrorReporter

	mu        sync.Mutex
	runtime   map[string]string
	observers []Observer
}

// Fetcher dispatches HTTP requests through a pluggable transport, merging
// headers in layers and normalizing transport errors. The type parameter
// fixes which target shape its verb methods accept.
type Fetcher[T Target] struct {
	*core
}

// New creates a Fetcher that accepts absolute URL targets.
// A nil reporter disables error reporting.
func New(reporter ErrorReporter, opts ...Option) *Fetcher[URL] {
	return &Fetcher[URL]{core: newCore("", reporter, opts)}
}

// NewWithBase creates a Fetcher that accepts root-relative Path targets,
// resolved against baseURL. The base URL must be absolute; path-segment
// dispatch without a usable base would silently produce malformed URLs, so
// it is rejected here instead.
func NewWithBase(baseURL string, reporter ErrorReporter, opts ...Option) (*Fetcher[Path], error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher: invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("fetcher: base URL %q must be absolute", baseURL)
	}
	return &Fetcher[Path]{core: newCore(baseURL, reporter, opts)}, nil
}

func newCore(base string, reporter ErrorReporter, opts []Option) *core {
	c := &core{
		base:     base,
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		// Config zero value is valid after defaults, so this cannot fail.
		c.transport, _ = transport.NewClient(transport.Config{})
	}
	return c
}

// SetHeaders merges headers into the runtime layer. New keys and values win;
// keys absent from headers keep their previously set runtime value. The
// initial configuration layer is never touched: it is re-merged on every
// dispatch below the runtime layer.
func (c *core) SetHeaders(headers map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runtime == nil {
		c.runtime = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		c.runtime[k] = v
	}
}

// OnHTTPError registers an observer invoked, in registration order, on every
// transport-level HTTP-status error. Registration is append-only for the
// Fetcher's lifetime.
func (c *core) OnHTTPError(fn Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Get performs a GET request.
func (f *Fetcher[T]) Get(ctx context.Context, target T, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodGet, f.resolve(target), nil, opts)
}

// Post performs a POST request without a body.
func (f *Fetcher[T]) Post(ctx context.Context, target T, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodPost, f.resolve(target), nil, opts)
}

// Put performs a PUT request without a body.
func (f *Fetcher[T]) Put(ctx context.Context, target T, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodPut, f.resolve(target), nil, opts)
}

// Delete performs a DELETE request without a body.
func (f *Fetcher[T]) Delete(ctx context.Context, target T, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodDelete, f.resolve(target), nil, opts)
}

// PostJSON performs a POST request with a JSON-encoded body.
func (f *Fetcher[T]) PostJSON(ctx context.Context, target T, body any, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodPost, f.resolve(target), body, opts)
}

// PutJSON performs a PUT request with a JSON-encoded body.
func (f *Fetcher[T]) PutJSON(ctx context.Context, target T, body any, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodPut, f.resolve(target), body, opts)
}

// PatchJSON performs a PATCH request with a JSON-encoded body.
func (f *Fetcher[T]) PatchJSON(ctx context.Context, target T, body any, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodPatch, f.resolve(target), body, opts)
}

// DeleteJSON performs a DELETE request with a JSON-encoded body.
func (f *Fetcher[T]) DeleteJSON(ctx context.Context, target T, body any, opts ...CallOption) (*Result, error) {
	return f.do(ctx, http.MethodDelete, f.resolve(target), body, opts)
}

// resolve produces the final absolute URL for a target.
func (f *Fetcher[T]) resolve(target T) string {
	switch t := any(target).(type) {
	case URL:
		return string(t)
	case Path:
		return joinURL(f.base, string(t))
	default:
		// Target is sealed to Path | URL; unreachable.
		return ""
	}
}

// do performs one HTTP exchange and classifies the outcome.
func (c *core) do(ctx context.Context, method, url string, body any, opts []CallOption) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("could not fetch from %s: %v", url, r)
			c.report(err.Error(), err)
		}
	}()

	req := transport.Request{
		Method: method,
		URL:    url,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}
	req.Headers = c.mergedHeaders(req.Headers)

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, c.classify(err)
	}

	if isJSONContentType(resp.Header("Content-Type")) {
		var value any
		if err := resp.JSON(&value); err != nil {
			err = fmt.Errorf("fetcher: decode JSON response from %s: %w", url, err)
			c.report(err.Error(), err)
			return nil, err
		}
		return &Result{
			Kind:    KindJSON,
			Status:  resp.StatusCode,
			Headers: resp.Headers,
			value:   value,
			raw:     resp.Body,
		}, nil
	}

	return &Result{
		Kind:    KindText,
		Status:  resp.StatusCode,
		Headers: resp.Headers,
		raw:     resp.Body,
	}, nil
}

// classify normalizes a dispatch failure per the error taxonomy. HTTP-status
// errors are reported once, run the observers once, and are upgraded to
// *BackendError when the body matches the backend contract. Everything else
// is reported and passed through.
func (c *core) classify(err error) error {
	var terr *transport.Error
	if errors.As(err, &terr) && terr.HasStatus() {
		c.report(terr.Error(), terr)
		for _, fn := range c.snapshotObservers() {
			fn(terr)
		}
		if payload, ok := decodeBackendPayload(terr.Body); ok {
			return newBackendError(terr, payload)
		}
		// The original error already carries the unparsed body; no second
		// report, no second observer run.
		return terr
	}

	c.report(err.Error(), err)
	return err
}

// mergedHeaders layers initial, runtime, and per-call headers, last writer
// winning per key. Evaluated fresh on every dispatch.
func (c *core) mergedHeaders(perCall map[string]string) map[string]string {
	c.mu.Lock()
	merged := make(map[string]string, len(c.initial)+len(c.runtime)+len(perCall))
	for k, v := range c.initial {
		merged[k] = v
	}
	for k, v := range c.runtime {
		merged[k] = v
	}
	c.mu.Unlock()

	for k, v := range perCall {
		merged[k] = v
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// snapshotObservers copies the observer list so registrations during a
// dispatch do not fire for already classified errors.
func (c *core) snapshotObservers() []Observer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Observer, len(c.observers))
	copy(out, c.observers)
	return out
}

func (c *core) report(message string, err error) {
	if c.reporter != nil {
		c.reporter.ReportError(message, err)
	}
}
