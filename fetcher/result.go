package fetcher

import (
	"encoding/json"
	"mime"
	"strings"
)

// Kind discriminates the two response shapes a dispatch can succeed with.
type Kind int

const (
	// KindJSON means the response declared a JSON content type and the body
	// was parsed.
	KindJSON Kind = iota
	// KindText means the body was returned as raw text.
	KindText
)

// Result is the success value of a dispatch: either a parsed JSON value or
// the raw text body, selected by the response's declared content type.
type Result struct {
	// Kind selects between the JSON and text variants.
	Kind Kind
	// Status is the HTTP status code.
	Status int
	// Headers are the response headers.
	Headers map[string]string

	value any
	raw   []byte
}

// JSON returns the parsed JSON value. It is nil for text results.
func (r *Result) JSON() any {
	return r.value
}

// Text returns the raw response body as a string.
func (r *Result) Text() string {
	return string(r.raw)
}

// Decode unmarshals the raw body into v. It works for both variants as long
// as the body is valid JSON.
func (r *Result) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// isJSONContentType reports whether a Content-Type header declares JSON.
func isJSONContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(strings.SplitN(ct, ";", 2)[0]))
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
