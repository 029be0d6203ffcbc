package transport

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code      int
		wantNil   bool
		wantClass Class
	}{
		{200, true, 0},
		{204, true, 0},
		{299, true, 0},
		{400, false, ClassValidation},
		{401, false, ClassAuth},
		{403, false, ClassAuth},
		{404, false, ClassNotFound},
		{418, false, ClassValidation},
		{429, false, ClassRateLimit},
		{500, false, ClassServer},
		{503, false, ClassServer},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("HTTP_%d", tc.code), func(t *testing.T) {
			err := ClassifyStatus(tc.code, nil, []byte("body"), &Request{URL: "http://x"})
			if tc.wantNil {
				if err != nil {
					t.Fatalf("expected nil for %d, got %v", tc.code, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error for %d", tc.code)
			}
			if err.Class != tc.wantClass {
				t.Errorf("class = %v, want %v", err.Class, tc.wantClass)
			}
			if err.StatusCode != tc.code {
				t.Errorf("status = %d, want %d", err.StatusCode, tc.code)
			}
			if string(err.Body) != "body" {
				t.Errorf("body = %q, want attached", err.Body)
			}
			if !err.HasStatus() {
				t.Error("classified status errors must report HasStatus")
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	withStatus := ClassifyStatus(404, nil, nil, nil)
	if got := withStatus.Error(); got != "transport: not_found (HTTP 404): HTTP 404" {
		t.Errorf("Error() = %q", got)
	}

	noStatus := NewConnectionError(nil, errors.New("dial tcp: refused"))
	if got := noStatus.Error(); got != "transport: connection: dial tcp: refused" {
		t.Errorf("Error() = %q", got)
	}
	if noStatus.HasStatus() {
		t.Error("connection errors must not report HasStatus")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewTimeoutError(nil, cause)
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap chain to reach the cause")
	}
}

func TestError_JSON(t *testing.T) {
	err := ClassifyStatus(500, nil, []byte(`{"k":"v"}`), nil)
	var body map[string]string
	if jerr := err.JSON(&body); jerr != nil {
		t.Fatalf("unexpected error: %v", jerr)
	}
	if body["k"] != "v" {
		t.Errorf("decoded = %v", body)
	}

	empty := ClassifyStatus(500, nil, nil, nil)
	if jerr := empty.JSON(&body); jerr == nil {
		t.Error("expected error decoding empty body")
	}
}

func TestClassHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"timeout", NewTimeoutError(nil, errors.New("t")), IsTimeout},
		{"connection", NewConnectionError(nil, errors.New("c")), IsConnection},
		{"auth", ClassifyStatus(401, nil, nil, nil), IsAuth},
		{"not found", ClassifyStatus(404, nil, nil, nil), IsNotFound},
		{"rate limit", ClassifyStatus(429, nil, nil, nil), IsRateLimit},
		{"server", ClassifyStatus(500, nil, nil, nil), IsServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.checker(tc.err) {
				t.Errorf("checker rejected %v", tc.err)
			}
			wrapped := fmt.Errorf("wrapped: %w", tc.err)
			if !tc.checker(wrapped) {
				t.Errorf("checker must see through wrapping: %v", wrapped)
			}
		})
	}

	if IsAuth(errors.New("plain")) {
		t.Error("plain errors must not classify")
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{ClassTimeout, "timeout"},
		{ClassConnection, "connection"},
		{ClassAuth, "auth"},
		{ClassNotFound, "not_found"},
		{ClassRateLimit, "rate_limit"},
		{ClassValidation, "validation"},
		{ClassServer, "server"},
		{Class(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.class.String(); got != tc.want {
			t.Errorf("Class(%d).String() = %q, want %q", tc.class, got, tc.want)
		}
	}
}
