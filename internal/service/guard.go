package service

import (
	"blogql/internal/apperrors"
)

// RequireAuthenticated fails with Unauthenticated when no identity is
// attached to the request.
func RequireAuthenticated(identity Identity) error {
	if !identity.Authenticated() {
		return apperrors.Unauthenticated("Not authenticated")
	}
	return nil
}

// RequireOwner fails with Forbidden unless the caller created the resource.
// Callers always pass the raw creator id, never a resolved user.
func RequireOwner(creatorID string, identity Identity) error {
	if creatorID != identity.UserID {
		return apperrors.Forbidden("Not authorized")
	}
	return nil
}
