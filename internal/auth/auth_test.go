package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/domain"
)

var testIdentity = domain.Identity{ID: 7, Email: "a@b.com", Name: "Ann", Role: domain.RoleAdmin}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("secret", 24*time.Hour)

	tok, err := tokens.Issue(testIdentity)
	require.NoError(t, err)

	got, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, got)
}

func TestTokens_Verify(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := NewTokens("secret", 24*time.Hour)
	issuer.now = func() time.Time { return issuedAt }
	tok, err := issuer.Issue(testIdentity)
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		now     time.Time
		token   string
		wantErr error
	}{
		{name: "missing", secret: "secret", now: issuedAt, token: "", wantErr: domain.ErrUnauthorized},
		{name: "garbage", secret: "secret", now: issuedAt, token: "not-a-jwt", wantErr: domain.ErrForbidden},
		{name: "wrong secret", secret: "other", now: issuedAt, token: tok, wantErr: domain.ErrForbidden},
		{name: "expired", secret: "secret", now: issuedAt.Add(25 * time.Hour), token: tok, wantErr: domain.ErrForbidden},
		{name: "just before expiry", secret: "secret", now: issuedAt.Add(23 * time.Hour), token: tok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewTokens(tt.secret, 24*time.Hour)
			v.now = func() time.Time { return tt.now }

			id, err := v.Verify(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testIdentity.Email, id.Email)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
	assert.False(t, CheckPassword("not-a-hash", "admin123"))
}
