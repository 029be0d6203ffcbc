// Package transport defines the HTTP-calling contract the fetcher layer is
// built on, plus a default implementation backed by net/http.
//
// The fetcher package only depends on the Transport interface; any
// implementation that honors the Request/Response/Error contract can be
// plugged in. The default Client handles TLS, timeouts, query encoding,
// credentials, request-ID injection, and optional OpenTelemetry spans.
// Retry and backoff are intentionally out of scope: implementations that
// need them should layer their own policy around Do.
//
//	tr, err := transport.NewClient(transport.Config{
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := tr.Do(ctx, transport.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.example.com/users/123",
//	})
package transport
