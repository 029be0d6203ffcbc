// Package validation provides struct validation for fetchkit configuration
// using go-playground/validator.
//
//	type Settings struct {
//	    BaseURL string `json:"base_url" validate:"omitempty,url"`
//	}
//
//	if err := validation.Validate(s); err != nil { ... }
package validation
