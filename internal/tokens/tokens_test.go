package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	raw, err := Sign(userID, "buyer@example.com", "admin", secret)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := Parse(raw, secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := Sign(uuid.New(), "buyer@example.com", "user", []byte("right"))
	require.NoError(t, err)

	_, err = Parse(raw, []byte("wrong"))
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", []byte("secret"))
	require.Error(t, err)
}
