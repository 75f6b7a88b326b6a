package authority

import (
	"context"
	"testing"
	"time"

	"report-console/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("k", time.Hour)
	signed, issued, err := tokens.Issue(models.User{ID: "u-1", Username: "alice", Role: models.RoleUser})
	if err != nil {
		t.Fatal(err)
	}

	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != "u-1" || claims.Username != "alice" || claims.ID != issued.ID {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenRejections(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens("k", time.Hour)
	tokens.now = func() time.Time { return now }
	signed, _, err := tokens.Issue(models.User{ID: "u-1", Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokens("other", time.Hour).Parse(signed); err == nil {
		t.Error("token signed with another secret was accepted")
	}

	tokens.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := tokens.Parse(signed); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestMemoryRevokerForgetsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRevoker()
	r.now = func() time.Time { return now }
	ctx := context.Background()

	if err := r.Revoke(ctx, "a", now.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := r.Revoke(ctx, "old", now.Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}

	if ok, _ := r.Revoked(ctx, "a"); !ok {
		t.Error("a should be revoked")
	}
	if ok, _ := r.Revoked(ctx, "old"); ok {
		t.Error("already expired token should not be tracked")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := r.Revoked(ctx, "a"); ok {
		t.Error("revocation should lapse with the token")
	}
}
