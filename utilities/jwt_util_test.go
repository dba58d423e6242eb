package utilities_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prepwise-backend/utilities"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	access, refresh, err := utilities.GenerateTokens("client-1")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := utilities.ValidateToken(access, false)
	require.NoError(t, err)
	require.Equal(t, "client-1", claims.ClientID)

	claims, err = utilities.ValidateToken(refresh, true)
	require.NoError(t, err)
	require.Equal(t, "client-1", claims.ClientID)
}

func TestValidateToken_RejectsWrongKind(t *testing.T) {
	access, refresh, err := utilities.GenerateTokens("client-1")
	require.NoError(t, err)

	_, err = utilities.ValidateToken(access, true)
	require.Error(t, err)

	_, err = utilities.ValidateToken(refresh, false)
	require.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	_, err := utilities.ValidateToken("not-a-token", false)
	require.Error(t, err)
}
