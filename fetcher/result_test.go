package fetcher

import "testing"

func TestIsJSONContentType(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"APPLICATION/JSON", true},
		{"application/problem+json", true},
		{"application/hal+json; charset=utf-8", true},
		{"text/plain", false},
		{"text/html; charset=utf-8", false},
		{"application/xml", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.ct, func(t *testing.T) {
			if got := isJSONContentType(tc.ct); got != tc.want {
				t.Errorf("isJSONContentType(%q) = %v, want %v", tc.ct, got, tc.want)
			}
		})
	}
}

func TestResult_Decode(t *testing.T) {
	r := &Result{Kind: KindJSON, raw: []byte(`{"name":"Alice","age":30}`)}

	var v struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	if err := r.Decode(&v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != "Alice" || v.Age != 30 {
		t.Errorf("decoded = %+v, want Alice/30", v)
	}
}

func TestResult_Text(t *testing.T) {
	r := &Result{Kind: KindText, raw: []byte("raw body")}
	if r.Text() != "raw body" {
		t.Errorf("Text() = %q, want %q", r.Text(), "raw body")
	}
}
