// Package auth guards routes behind a logged-in session.
package auth

import (
	"context"

	"mc-panel/core/middleware/proxy"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// LoginPath is where anonymous visitors are sent.
const LoginPath = "/login/"

const (
	usernameKey = "username"
	nextKey     = "next"
	localsKey   = "auth_username"
)

// Verifier reports whether a session's username still has credentials.
type Verifier interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Gate owns the session store and produces the protecting middleware.
type Gate struct {
	store    *session.Store
	verifier Verifier
}

// NewGate creates a gate backed by the in-memory session store.
func NewGate(cfg Config) *Gate {
	return &Gate{store: session.New(session.Config{
		Expiration:     cfg.Expiration(),
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookiePath:     "/",
	})}
}

// VerifyWith makes Protect drop sessions whose user v no longer knows.
// It must be called before the gate serves requests.
func (g *Gate) VerifyWith(v Verifier) {
	g.verifier = v
}

// Session loads the session of the current request.
func (g *Gate) Session(c *fiber.Ctx) (*Session, error) {
	raw, err := g.store.Get(c)
	if err != nil {
		return nil, err
	}
	return &Session{raw: raw}, nil
}

// Protect rejects anonymous requests. The requested URL is remembered in the
// session and the visitor is redirected to the login form. Authenticated
// requests push the session expiry forward.
func (g *Gate) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := g.Session(c)
		if err != nil {
			return err
		}

		if user := sess.Username(); user != "" {
			known, err := g.known(c, user)
			if err != nil {
				return err
			}
			if known {
				if err := sess.raw.Save(); err != nil {
					return err
				}
				c.Locals(localsKey, user)
				return c.Next()
			}
			// Revoked or renamed: continue as a fresh anonymous session.
			if err := sess.raw.Reset(); err != nil {
				return err
			}
		}

		if err := sess.Stash(proxy.RequestURL(c)); err != nil {
			return err
		}
		return proxy.Redirect(c, LoginPath)
	}
}

func (g *Gate) known(c *fiber.Ctx, user string) (bool, error) {
	if g.verifier == nil {
		return true, nil
	}
	return g.verifier.Exists(c.UserContext(), user)
}

// Username returns the user authenticated by Protect, or "".
func Username(c *fiber.Ctx) string {
	u, _ := c.Locals(localsKey).(string)
	return u
}

// Session wraps a stored session with the panel's keys.
type Session struct {
	raw *session.Session
}

// Username returns the logged-in user, or "" when anonymous.
func (s *Session) Username() string {
	u, _ := s.raw.Get(usernameKey).(string)
	return u
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	return s.Username() != ""
}

// Stash remembers url as the post-login destination.
func (s *Session) Stash(url string) error {
	s.raw.Set(nextKey, url)
	return s.raw.Save()
}

// Login binds username to a fresh session id and returns the stashed
// destination, or "" if none. The stash is consumed.
func (s *Session) Login(username string) (string, error) {
	next, _ := s.raw.Get(nextKey).(string)
	if err := s.raw.Regenerate(); err != nil {
		return "", err
	}
	s.raw.Delete(nextKey)
	s.raw.Set(usernameKey, username)
	if err := s.raw.Save(); err != nil {
		return "", err
	}
	return next, nil
}

// Logout discards the session.
func (s *Session) Logout() error {
	return s.raw.Destroy()
}
