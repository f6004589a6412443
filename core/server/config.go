package server

import (
	"encoding/base64"
	"fmt"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Debug serves canned manager output instead of invoking the CLI.
	Debug bool `mapstructure:"debug" default:"false"`
	// CookieKey is a base64 encoded 32 byte key used to encrypt cookies.
	// Cookies are sent in the clear when empty.
	CookieKey string `mapstructure:"cookie_key" default:""`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// ValidateCookieKey checks that CookieKey, when set, decodes to 32 bytes.
func (c Config) ValidateCookieKey() error {
	if c.CookieKey == "" {
		return nil
	}
	key, err := base64.StdEncoding.DecodeString(c.CookieKey)
	if err != nil {
		return fmt.Errorf("cookie key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("cookie key must decode to 32 bytes, got %d", len(key))
	}
	return nil
}
