// policy_test.go - Tests for the access-control decision rules

package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pollution-backend/apperrors"
	"go-pollution-backend/auth"
)

func TestGuestIsDeniedAllWrites(t *testing.T) {
	owner := uuid.New()
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		_, err := Authorize(auth.Guest(), action, &owner)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	}
}

func TestOwnerMayUpdateAndDelete(t *testing.T) {
	owner := uuid.New()
	actor := auth.Authenticated(owner)

	for _, action := range []Action{ActionUpdate, ActionDelete} {
		decision, err := Authorize(actor, action, &owner)
		require.NoError(t, err)
		assert.True(t, decision.Allow)
		assert.Equal(t, ShapeFull, decision.Shape)
	}
}

func TestAdminMayUpdateAndDeleteAnything(t *testing.T) {
	owner := uuid.New()
	admin := auth.Admin(uuid.New()) // Not the owner

	for _, ownerID := range []*uuid.UUID{&owner, nil} { // Owned and ownerless
		for _, action := range []Action{ActionUpdate, ActionDelete} {
			decision, err := Authorize(admin, action, ownerID)
			require.NoError(t, err)
			assert.True(t, decision.Allow)
		}
	}
}

func TestNonOwnerIsDeniedRegardlessOfAction(t *testing.T) {
	owner := uuid.New()
	stranger := auth.Authenticated(uuid.New())

	for _, action := range []Action{ActionUpdate, ActionDelete} {
		_, err := Authorize(stranger, action, &owner)
		require.Error(t, err)
		// Reported as forbidden, not not-found: this intentionally reveals
		// that the resource exists.
		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	}
}

func TestOwnerlessReadingOnlyMutableByAdmin(t *testing.T) {
	user := auth.Authenticated(uuid.New())
	_, err := Authorize(user, ActionUpdate, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
}

func TestReadsAreOpenToEveryActor(t *testing.T) {
	actors := []auth.Actor{auth.Guest(), auth.Authenticated(uuid.New()), auth.Admin(uuid.New())}
	for _, actor := range actors {
		for _, action := range []Action{ActionReadList, ActionReadOne, ActionReadLatest} {
			decision, err := Authorize(actor, action, nil)
			require.NoError(t, err)
			assert.True(t, decision.Allow)
		}
	}
}

func TestGuestGetsRestrictedShapeOthersFull(t *testing.T) {
	guestDecision, err := Authorize(auth.Guest(), ActionReadList, nil)
	require.NoError(t, err)
	assert.Equal(t, ShapeRestricted, guestDecision.Shape)

	userDecision, err := Authorize(auth.Authenticated(uuid.New()), ActionReadList, nil)
	require.NoError(t, err)
	assert.Equal(t, ShapeFull, userDecision.Shape)

	adminDecision, err := Authorize(auth.Admin(uuid.New()), ActionReadList, nil)
	require.NoError(t, err)
	assert.Equal(t, ShapeFull, adminDecision.Shape)
}

func TestClampPageSize(t *testing.T) {
	guest := auth.Guest()
	user := auth.Authenticated(uuid.New())

	assert.Equal(t, 10, ClampPageSize(user, 0))   // Default applies
	assert.Equal(t, 50, ClampPageSize(user, 50))  // No ceiling for full actors
	assert.Equal(t, 5, ClampPageSize(guest, 0))   // Guest default clamped too
	assert.Equal(t, 5, ClampPageSize(guest, 6))   // Ceiling kicks in
	assert.Equal(t, 5, ClampPageSize(guest, 100)) // Any large request clamps to 5
	assert.Equal(t, 3, ClampPageSize(guest, 3))   // Below ceiling stays as asked
}
