package domain

// Access policy: pure per-call decision functions. No state persists
// across calls; callers pass the resolved principal explicitly.

// CheckOwnership allows the operation when the principal is the resource
// owner or holds the ADMIN role. taskID only parameterizes the message.
func CheckOwnership(p Principal, ownerUsername string, taskID int64) error {
	if p.IsAdmin() || p.Username == ownerUsername {
		return nil
	}
	return Policyf("Task with id=%d belongs to another user", taskID)
}

// CheckOwnerOnly is the stricter variant used for mutations: admins do not
// bypass it, matching the historical behavior where only the creator may
// update, complete or delete a task.
func CheckOwnerOnly(p Principal, ownerUsername string, taskID int64) error {
	if p.Username == ownerUsername {
		return nil
	}
	return Policyf("Task with id=%d belongs to another user", taskID)
}

// RequireUnlocked gates authentication; tokens issued before a lock stay
// valid until expiry (stateless tokens, no revocation list).
func RequireUnlocked(u *User) error {
	if u.Locked {
		return Policyf("User is locked")
	}
	return nil
}

// CheckAdminImmunity denies locking or deleting any ADMIN account,
// regardless of who asks. verb is "lock" or "delete".
func CheckAdminImmunity(target *User, verb string) error {
	if target.Role != RoleAdmin {
		return nil
	}
	return Policyf("You can't %s Administrator", verb)
}
