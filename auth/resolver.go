// resolver.go - Turns request credentials into exactly one Actor

package auth

import (
	"context"

	"github.com/google/uuid"

	"go-pollution-backend/apperrors"
	"go-pollution-backend/models"
)

// UserLookup is the slice of the user store the resolver needs.
// Satisfied by repository.Users.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Resolver inspects request credentials and produces an Actor. It is a pure
// function of the credential plus one user lookup; no other side effects.
type Resolver struct {
	Secret string     // JWT signing secret
	Users  UserLookup // For resolving the admin flag
}

// Resolve produces exactly one Actor from the request credentials.
//
// Rules, in order:
//  1. A bearer token always takes precedence: it must verify and reference
//     an existing user, otherwise the request fails outright. The guest
//     marker is only a fallback for fully anonymous access.
//  2. With no token, the guest marker yields the Guest actor.
//  3. With neither, the request is unauthenticated.
func (r *Resolver) Resolve(ctx context.Context, bearerToken string, guestMarker bool) (Actor, error) {
	if bearerToken != "" {
		userID, err := ParseToken(r.Secret, bearerToken)
		if err != nil {
			return Actor{}, err
		}
		user, err := r.Users.FindByID(ctx, userID)
		if err != nil {
			// Token references a user that no longer exists; treat the
			// credential itself as invalid rather than leaking a 404.
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return Actor{}, apperrors.Authentication("Invalid authentication.")
			}
			return Actor{}, err
		}
		if user.IsAdmin {
			return Admin(user.ID), nil
		}
		return Authenticated(user.ID), nil
	}

	if guestMarker {
		return Guest(), nil
	}

	return Actor{}, apperrors.Authentication("Access denied. No credential provided.")
}
