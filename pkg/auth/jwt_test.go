package auth

import (
	"testing"
	"time"

	"agriquest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuth_TokenRoundTrip(t *testing.T) {
	a := NewJWTAuth("test-secret", time.Hour)

	user := &model.User{ID: "user-1", Role: model.RoleFarmer}
	token, err := a.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, model.RoleFarmer, claims.Role)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	a := NewJWTAuth("test-secret", time.Hour)
	other := NewJWTAuth("other-secret", time.Hour)

	token, err := a.GenerateToken(&model.User{ID: "user-1", Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTAuth_Garbage(t *testing.T) {
	a := NewJWTAuth("test-secret", time.Hour)

	_, err := a.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTAuth_Expired(t *testing.T) {
	a := NewJWTAuth("test-secret", -time.Minute)

	token, err := a.GenerateToken(&model.User{ID: "user-1", Role: model.RoleFarmer})
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
