// Package proxy applies the headers set by a fronting reverse proxy.
package proxy

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	HeaderScriptName      = "X-Script-Name"
	HeaderScheme          = "X-Scheme"
	HeaderForwardedServer = "X-Forwarded-Server"
)

const (
	scriptNameKey = "proxy_script_name"
	schemeKey     = "proxy_scheme"
)

// New creates the middleware. It must be registered before any route so the
// stripped path is the one that gets routed.
//
//   - X-Script-Name: the mount prefix. It is removed from the routed path when
//     present and prepended to every URL built with URL.
//   - X-Scheme: overrides the request scheme.
//   - X-Forwarded-Server: overrides the Host.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if script := strings.TrimRight(c.Get(HeaderScriptName), "/"); script != "" {
			c.Locals(scriptNameKey, script)
			if p := c.Path(); p == script || strings.HasPrefix(p, script+"/") {
				rest := strings.TrimPrefix(p, script)
				if rest == "" {
					rest = "/"
				}
				c.Path(rest)
			}
		}

		if scheme := c.Get(HeaderScheme); scheme != "" {
			c.Locals(schemeKey, scheme)
			c.Request().URI().SetScheme(scheme)
		}

		if host := c.Get(HeaderForwardedServer); host != "" {
			c.Request().Header.SetHost(host)
			c.Request().URI().SetHost(host)
		}

		return c.Next()
	}
}

// ScriptName returns the mount prefix, or "".
func ScriptName(c *fiber.Ctx) string {
	s, _ := c.Locals(scriptNameKey).(string)
	return s
}

// Scheme returns the scheme as seen by the client.
func Scheme(c *fiber.Ctx) string {
	if s, ok := c.Locals(schemeKey).(string); ok && s != "" {
		return s
	}
	return c.Protocol()
}

// URL prefixes an application path with the mount prefix.
func URL(c *fiber.Ctx, path string) string {
	return ScriptName(c) + path
}

// RequestURL returns the path-absolute URL of the current request as seen by
// the client, query string included.
func RequestURL(c *fiber.Ctx) string {
	u := URL(c, c.Path())
	if q := c.Request().URI().QueryString(); len(q) > 0 {
		u += "?" + string(q)
	}
	return u
}

// Redirect redirects to an application path, honouring the mount prefix.
func Redirect(c *fiber.Ctx, path string) error {
	return c.Redirect(URL(c, path), fiber.StatusFound)
}

// Param returns the decoded route parameter key. Routes match the raw path,
// so parameters arrive still escaped.
func Param(c *fiber.Ctx, key string) (string, error) {
	v, err := url.PathUnescape(c.Params(key))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "malformed path parameter "+key)
	}
	return v, nil
}
