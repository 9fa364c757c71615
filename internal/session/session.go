package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// TTL is the session cookie lifetime. There is no server-side renewal; the
// client re-authenticates after expiry.
const TTL = 24 * time.Hour

// Config controls cookie names and attributes.
type Config struct {
	TokenCookie string // name of the bearer token cookie
	UserCookie  string // name of the serialized identity cookie
	AdminID     string // the only identity value a valid session may carry
	Secure      bool   // set the Secure attribute (HTTPS deployments)
}

// Session is the decoded two-cookie session. It is the only authentication
// state in the system; nothing is stored server-side.
type Session struct {
	Token  string          // opaque bearer token, authority lives upstream
	User   json.RawMessage // identity record as minted at login
	UserID string          // identity.id, always equal to the admin id
}

// Codec encodes and decodes the session cookie pair.
type Codec struct {
	cfg Config
}

// NewCodec creates a session codec.
func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// identity is the subset of the upstream identity record the codec inspects.
type identity struct {
	ID string `json:"id"`
}

// Encode writes the token and identity cookies. The identity JSON is
// URL-escaped so arbitrary payloads survive the cookie value grammar.
func (c *Codec) Encode(w http.ResponseWriter, token string, user json.RawMessage) {
	maxAge := int(TTL.Seconds())
	c.setCookie(w, c.cfg.TokenCookie, url.QueryEscape(token), maxAge)
	c.setCookie(w, c.cfg.UserCookie, url.QueryEscape(string(user)), maxAge)
}

// Decode reads the session from the request's cookies. It returns nil, never
// an error, for any of: missing cookie, undecodable value, identity that is
// not JSON, or an identity whose id is not the configured admin id.
func (c *Codec) Decode(r *http.Request) *Session {
	tokenCookie, err := r.Cookie(c.cfg.TokenCookie)
	if err != nil {
		return nil
	}
	userCookie, err := r.Cookie(c.cfg.UserCookie)
	if err != nil {
		return nil
	}

	token, err := url.QueryUnescape(tokenCookie.Value)
	if err != nil || token == "" {
		return nil
	}
	raw, err := url.QueryUnescape(userCookie.Value)
	if err != nil || raw == "" {
		return nil
	}

	var id identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil
	}
	if id.ID != c.cfg.AdminID {
		return nil
	}

	return &Session{Token: token, User: json.RawMessage(raw), UserID: id.ID}
}

// Clear overwrites both cookies with an immediately-expiring empty value.
// Safe to call with or without an existing session.
func (c *Codec) Clear(w http.ResponseWriter) {
	c.setCookie(w, c.cfg.TokenCookie, "", -1)
	c.setCookie(w, c.cfg.UserCookie, "", -1)
}

func (c *Codec) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
