package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("organizer-1", "organizer", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "organizer-1", userID)
	assert.Equal(t, "organizer", role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("organizer-1", "organizer", "test-secret", time.Hour)
	require.NoError(t, err)

	_, _, err = ValidateJWT(token, "different-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("organizer-1", "organizer", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, _, err = ValidateJWT(token, "test-secret")
	assert.Error(t, err)
}
