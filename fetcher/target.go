package fetcher

import "strings"

// Path is a root-relative target, resolved against the Fetcher's base URL.
// Only fetchers constructed with NewWithBase accept Path targets.
type Path string

// URL is an absolute target, used verbatim. Only fetchers constructed with
// New accept URL targets.
type URL string

// Target constrains the target shape a Fetcher accepts. Which shape is legal
// is fixed by the constructor: NewWithBase yields a Fetcher[Path], New yields
// a Fetcher[URL].
type Target interface {
	Path | URL
}

// joinURL joins a base URL and a path segment with exactly one slash,
// regardless of how many trailing or leading slashes either side carries.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
