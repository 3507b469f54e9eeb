// Package identitymw resolves the caller's identity and roles from the
// headers injected by the authenticating reverse proxy.
package identitymw

import (
	"strings"

	"govdoc-manager/core/identity"

	"github.com/gofiber/fiber/v2"
)

// Headers set by the OIDC-terminating proxy in front of the service.
const (
	HeaderUserID       = "X-Checkin-Userid"
	HeaderFullName     = "X-Checkin-Name"
	HeaderEmail        = "X-Checkin-Email"
	HeaderEntitlements = "X-Checkin-Entitlements"
)

// Locals keys populated by the middleware.
const (
	LocalAuthor = "author"
	LocalRoles  = "roles"
)

// New returns a middleware that stores the resolved Author and role set
// in the request locals. It never rejects a request itself: a missing or
// malformed identity simply resolves to no author and no roles, and the
// per-route guards decide whether that is acceptable.
func New(cfg identity.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		author := identity.Author{
			CheckinUserID: c.Get(HeaderUserID),
			FullName:      c.Get(HeaderFullName),
			Email:         c.Get(HeaderEmail),
		}

		var entitlements []string
		if raw := c.Get(HeaderEntitlements); raw != "" {
			for _, e := range strings.Split(raw, ",") {
				if e = strings.TrimSpace(e); e != "" {
					entitlements = append(entitlements, e)
				}
			}
		}

		c.Locals(LocalAuthor, author)
		c.Locals(LocalRoles, identity.ParseRoles(cfg, entitlements))

		return c.Next()
	}
}

// RequireAnyRole returns a guard that rejects requests whose caller
// holds none of the given roles.
func RequireAnyRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		held := Roles(c)
		for _, r := range roles {
			if identity.HasRole(held, r) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "permission denied",
		})
	}
}

// Author returns the resolved author of the current request. The zero
// Author is returned when the middleware did not run or the caller is
// anonymous.
func Author(c *fiber.Ctx) identity.Author {
	if a, ok := c.Locals(LocalAuthor).(identity.Author); ok {
		return a
	}
	return identity.Author{}
}

// Roles returns the roles of the current request's caller.
func Roles(c *fiber.Ctx) []string {
	if r, ok := c.Locals(LocalRoles).([]string); ok {
		return r
	}
	return nil
}
