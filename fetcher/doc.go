// Package fetcher provides a thin, typed convenience layer over a pluggable
// HTTP transport: base-URL resolution, layered header merging, structured
// error mapping, and an error-observer hook.
//
// A Fetcher is parameterized by its target shape. Fetchers built with
// NewWithBase accept root-relative Path targets resolved against the
// configured base URL; fetchers built with New accept absolute URL targets.
// The constraint is enforced at compile time.
//
//	f, err := fetcher.NewWithBase("https://api.example.com/v2", reporter)
//	if err != nil { ... }
//
//	res, err := f.Get(ctx, "/users/123")
//	if err != nil { ... }
//	if res.Kind == fetcher.KindJSON {
//	    var u User
//	    _ = res.Decode(&u)
//	}
//
// Every failure is reported to the configured ErrorReporter; transport-level
// HTTP-status errors additionally run the registered observers in
// registration order. HTTP error bodies matching the backend contract
// {"errors":[{"errorCode":..., "message":...}]} are normalized to
// *BackendError.
package fetcher
