package domain

// Owned is implemented by any resource that belongs to a single user.
// The ownership check only ever inspects the owning user ID, which keeps
// the guard agnostic of the concrete resource type.
type Owned interface {
	OwnerID() int64
}

// CheckOwnership verifies that the resource belongs to the given user.
// Returns ErrForbidden on mismatch and nil otherwise. Existence must be
// established before calling this: a missing resource is a not-found
// condition, never a permission one.
func CheckOwnership(resource Owned, userID int64) error {
	if resource.OwnerID() != userID {
		return ErrForbidden
	}
	return nil
}
