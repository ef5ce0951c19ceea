package domain

import (
	"errors"
	"testing"
)

func TestCheckOwnership(t *testing.T) {
	owner := Principal{Username: "ivan", Roles: []string{RoleUser}}
	stranger := Principal{Username: "katya", Roles: []string{RoleUser}}
	admin := Principal{Username: "boss", Roles: []string{RoleAdmin}}

	if err := CheckOwnership(owner, "ivan", 7); err != nil {
		t.Fatalf("owner should pass, got %v", err)
	}
	if err := CheckOwnership(admin, "ivan", 7); err != nil {
		t.Fatalf("admin should pass, got %v", err)
	}

	err := CheckOwnership(stranger, "ivan", 7)
	if err == nil {
		t.Fatal("expected error for non-owner")
	}
	var de *Error
	if !errors.As(err, &de) || de.Kind != KindPolicyViolation {
		t.Fatalf("expected policy violation, got %v", err)
	}
	if de.Message != "Task with id=7 belongs to another user" {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}

func TestCheckOwnerOnly_AdminDoesNotBypass(t *testing.T) {
	admin := Principal{Username: "boss", Roles: []string{RoleAdmin}}

	if err := CheckOwnerOnly(admin, "ivan", 7); err == nil {
		t.Fatal("admin must not mutate another user's task")
	}
	if err := CheckOwnerOnly(Principal{Username: "ivan"}, "ivan", 7); err != nil {
		t.Fatalf("owner should pass, got %v", err)
	}
}

func TestRequireUnlocked(t *testing.T) {
	if err := RequireUnlocked(&User{Username: "ivan"}); err != nil {
		t.Fatalf("unlocked user should pass, got %v", err)
	}

	err := RequireUnlocked(&User{Username: "ivan", Locked: true})
	if err == nil {
		t.Fatal("expected error for locked user")
	}
	if err.Error() != "User is locked" {
		t.Fatalf("unexpected message: %q", err)
	}
}

func TestCheckAdminImmunity(t *testing.T) {
	if err := CheckAdminImmunity(&User{Role: RoleUser}, "lock"); err != nil {
		t.Fatalf("regular user is not immune, got %v", err)
	}

	err := CheckAdminImmunity(&User{Role: RoleAdmin}, "lock")
	if err == nil || err.Error() != "You can't lock Administrator" {
		t.Fatalf("unexpected lock immunity result: %v", err)
	}

	err = CheckAdminImmunity(&User{Role: RoleAdmin}, "delete")
	if err == nil || err.Error() != "You can't delete Administrator" {
		t.Fatalf("unexpected delete immunity result: %v", err)
	}
}

func TestPrincipalIsAdmin(t *testing.T) {
	if (Principal{Roles: []string{RoleUser}}).IsAdmin() {
		t.Fatal("USER role must not count as admin")
	}
	if !(Principal{Roles: []string{RoleUser, RoleAdmin}}).IsAdmin() {
		t.Fatal("ADMIN role must count as admin")
	}
}
