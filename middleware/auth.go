// auth.go - Identity middleware
//
// Both middlewares run the resolver exactly once per request and store the
// resulting Actor in the Gin context. Handlers never look at credential
// headers themselves.
//
// AuthMiddleware: bearer token required; guests are rejected.
// GuestAuthMiddleware: bearer token if present, otherwise the "User-Type:
// guest" header grants anonymous read access.

package middleware // Declares the package name

import (
	"strings" // String operations (for header parsing)

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)

	"go-pollution-backend/auth"
)

// actorKey is the Gin context key the resolved Actor is stored under.
const actorKey = "actor"

// guestHeaderValue marks a request as anonymous guest access.
const guestHeaderValue = "guest"

// AuthMiddleware returns a middleware that requires a valid bearer token.
// The guest marker is ignored here: these routes need a registered user.
func AuthMiddleware(resolver *auth.Resolver) gin.HandlerFunc {
	return identify(resolver, false)
}

// GuestAuthMiddleware returns a middleware that accepts either a valid
// bearer token or the guest marker header.
func GuestAuthMiddleware(resolver *auth.Resolver) gin.HandlerFunc {
	return identify(resolver, true)
}

func identify(resolver *auth.Resolver, allowGuest bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract the bearer token, if any.
		bearer := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			bearer = strings.TrimPrefix(header, "Bearer ")
		}

		// The guest marker only counts on routes that permit it.
		guestMarker := allowGuest && c.GetHeader("User-Type") == guestHeaderValue

		actor, err := resolver.Resolve(c.Request.Context(), bearer, guestMarker)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(actorKey, actor) // Store the Actor for handlers downstream
		c.Next()
	}
}

// CurrentActor returns the Actor resolved for this request. Routes without
// an identity middleware see the zero guest actor; they should not call this.
func CurrentActor(c *gin.Context) auth.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(auth.Actor); ok {
			return actor
		}
	}
	return auth.Guest()
}
