package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "freight-match/pkg/errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "driver@test.com", "driver", "secret", 24)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "driver@test.com", claims.Email)
	assert.Equal(t, "driver", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "driver@test.com", "driver", "secret", 24)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "driver@test.com", "driver", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
