// actor.go - Request-scoped identity produced by the resolver
//
// An Actor is derived once per request from the credentials and never
// persisted. Handlers and the policy layer branch on the Actor instead of
// threading raw headers or boolean flags around.

package auth

import "github.com/google/uuid"

type ActorKind int // ActorKind tags the identity variant

const (
	ActorGuest         ActorKind = iota // Anonymous read-only access
	ActorAuthenticated                  // Regular registered user
	ActorAdmin                          // Registered user with the admin flag
)

// Actor is the resolved identity making a request.
type Actor struct {
	Kind   ActorKind
	UserID uuid.UUID // Zero for guests
}

// Guest returns the anonymous actor.
func Guest() Actor { return Actor{Kind: ActorGuest} }

// Authenticated returns a regular-user actor.
func Authenticated(id uuid.UUID) Actor { return Actor{Kind: ActorAuthenticated, UserID: id} }

// Admin returns an admin actor.
func Admin(id uuid.UUID) Actor { return Actor{Kind: ActorAdmin, UserID: id} }

func (a Actor) IsGuest() bool { return a.Kind == ActorGuest }

func (a Actor) IsAdmin() bool { return a.Kind == ActorAdmin }
