package models

import (
	"time"

	"golang.org/x/oauth2"
)

// Token is the OAuth 2.0 credential shape returned by the Fitbit token endpoint.
// Nothing in this service exchanges or stores tokens yet.
type Token struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    string `json:"expires_at"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	UserID       string `json:"user_id"`
}

// OAuth2 maps the token onto an oauth2.Token. ExpiresAt is parsed as RFC3339; when it is missing or malformed the
// expiry is left zero, which oauth2 treats as "never expires".
func (t Token) OAuth2() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		ExpiresIn:    t.ExpiresIn,
	}
	if expiry, err := time.Parse(time.RFC3339, t.ExpiresAt); err == nil {
		tok.Expiry = expiry
	}
	return tok.WithExtra(map[string]any{
		"scope":   t.Scope,
		"user_id": t.UserID,
	})
}
