// Package rayid assigns a unique tracing id to every request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on responses, and on requests when an
// upstream proxy already assigned one.
const Header = "X-Ray-Id"

// New returns a middleware that ensures every request carries a ray id.
// An incoming id is kept so traces survive proxy hops; otherwise a fresh
// one is generated. The id is stored in locals under "ray_id" and echoed
// in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
