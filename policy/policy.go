// policy.go - Access-control decisions for pollution readings
//
// The policy is a pure, stateless classification re-evaluated per request:
// given the resolved Actor, the attempted action, and (for mutations) the
// resource's owner, it either denies with a taxonomy error or allows and
// names the data shape the response must use.

package policy

import (
	"github.com/google/uuid"

	"go-pollution-backend/apperrors"
	"go-pollution-backend/auth"
)

type Action int // Action is the operation being attempted

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionDelete
	ActionReadList
	ActionReadOne
	ActionReadLatest
)

type Shape int // Shape selects the field projection for responses

const (
	ShapeFull       Shape = iota // Full record passthrough
	ShapeRestricted              // Reduced guest projection
)

// Decision is the outcome of an allowed authorization check.
type Decision struct {
	Allow bool
	Shape Shape
}

const (
	// DefaultPageSize is used when the caller does not request a limit.
	DefaultPageSize = 10
	// GuestMaxPageSize caps list pages served to guests.
	GuestMaxPageSize = 5
)

// Authorize decides whether the actor may perform the action. ownerID is the
// owning user of the targeted resource; nil for collection-level actions and
// for ownerless (sensor-ingested) readings.
//
// Note: a denied mutation on an existing resource reports 403, not 404. This
// leaks the resource's existence to any authenticated caller; it matches the
// deployed behavior and is kept deliberately.
func Authorize(actor auth.Actor, action Action, ownerID *uuid.UUID) (Decision, error) {
	switch action {
	case ActionCreate, ActionUpdate, ActionDelete:
		if actor.IsGuest() {
			return Decision{}, apperrors.Authorization("Registration required.")
		}
		if action == ActionUpdate || action == ActionDelete {
			// Owner-or-admin. Ownerless readings can only be mutated by admins.
			if !actor.IsAdmin() && (ownerID == nil || *ownerID != actor.UserID) {
				return Decision{}, apperrors.Authorization("Access denied")
			}
		}
	case ActionReadList, ActionReadOne, ActionReadLatest:
		// Reads are open to every actor kind, guests included.
	}

	return Decision{Allow: true, Shape: shapeFor(actor)}, nil
}

// ClampPageSize applies the list pagination rule: default when unset, and a
// hard ceiling for guests. Full actors keep whatever they asked for.
func ClampPageSize(actor auth.Actor, requested int) int {
	size := requested
	if size <= 0 {
		size = DefaultPageSize
	}
	if actor.IsGuest() && size > GuestMaxPageSize {
		size = GuestMaxPageSize
	}
	return size
}

func shapeFor(actor auth.Actor) Shape {
	if actor.IsGuest() {
		return ShapeRestricted
	}
	return ShapeFull
}
