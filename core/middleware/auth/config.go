package auth

import "time"

// Config defines the session cookie settings.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `mapstructure:"cookie_name" default:"mc_panel_session"`
	// ExpirationMinutes is the idle lifetime of a session. Every protected
	// request restarts it.
	ExpirationMinutes int `mapstructure:"expiration_minutes" default:"1440"`
	// Secure restricts the cookie to HTTPS.
	Secure bool `mapstructure:"secure" default:"false"`
}

// Expiration returns the session lifetime.
func (c Config) Expiration() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}
