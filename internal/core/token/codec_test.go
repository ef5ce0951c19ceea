package token

import (
	"errors"
	"testing"
	"time"
)

func TestCodec_IssueAndParse(t *testing.T) {
	codec := NewCodec("test-secret", 30*time.Minute)

	raw, err := codec.Issue("ivan", []string{"USER"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := codec.Parse(raw)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.Subject != "ivan" {
		t.Fatalf("expected subject ivan, got %q", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "USER" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestCodec_Parse_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt

	codec := NewCodec("test-secret", 30*time.Minute).WithClock(func() time.Time { return clock })

	raw, err := codec.Issue("ivan", []string{"USER"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	// Still valid one minute before expiry.
	clock = issuedAt.Add(29 * time.Minute)
	if _, err := codec.Parse(raw); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}

	// Expired one minute after.
	clock = issuedAt.Add(31 * time.Minute)
	if _, err := codec.Parse(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_Parse_Malformed(t *testing.T) {
	codec := NewCodec("test-secret", 30*time.Minute)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Parse(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed for %q, got %v", raw, err)
		}
	}
}

func TestCodec_Parse_WrongSignature(t *testing.T) {
	issuing := NewCodec("secret-one", 30*time.Minute)
	parsing := NewCodec("secret-two", 30*time.Minute)

	raw, err := issuing.Issue("ivan", []string{"USER"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := parsing.Parse(raw); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
