package transport

import "net/http"

// CredentialsType identifies how credentials are attached to a request.
type CredentialsType int

const (
	// CredentialsNone sends no credentials.
	CredentialsNone CredentialsType = iota
	// CredentialsBearer sends an Authorization: Bearer header.
	CredentialsBearer
	// CredentialsBasic sends HTTP Basic credentials.
	CredentialsBasic
	// CredentialsAPIKey sends an API key header.
	CredentialsAPIKey
)

// Credentials are static credentials attached to a request. They are passed
// through to the wire unmodified; token acquisition and refresh are the
// caller's concern.
type Credentials struct {
	// Type is the attachment method.
	Type CredentialsType
	// Token is the bearer token (CredentialsBearer).
	Token string
	// Username is the basic auth username (CredentialsBasic).
	Username string
	// Password is the basic auth password (CredentialsBasic).
	Password string
	// Key is the API key value (CredentialsAPIKey).
	Key string
	// Header is the API key header name. Defaults to "X-API-Key".
	Header string
}

// BearerCredentials creates bearer token credentials.
func BearerCredentials(token string) *Credentials {
	return &Credentials{Type: CredentialsBearer, Token: token}
}

// BasicCredentials creates HTTP Basic credentials.
func BasicCredentials(username, password string) *Credentials {
	return &Credentials{Type: CredentialsBasic, Username: username, Password: password}
}

// APIKeyCredentials creates API key credentials sent via header.
func APIKeyCredentials(key, header string) *Credentials {
	if header == "" {
		header = "X-API-Key"
	}
	return &Credentials{Type: CredentialsAPIKey, Key: key, Header: header}
}

// apply attaches the credentials to an HTTP request.
func (c *Credentials) apply(req *http.Request) {
	if c == nil {
		return
	}
	switch c.Type {
	case CredentialsBearer:
		req.Header.Set("Authorization", "Bearer "+c.Token)
	case CredentialsBasic:
		req.SetBasicAuth(c.Username, c.Password)
	case CredentialsAPIKey:
		name := c.Header
		if name == "" {
			name = "X-API-Key"
		}
		req.Header.Set(name, c.Key)
	}
}
