package auth

import (
	"testing"
	"time"

	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Perform token generation and verify the generated token to ensure VerifyJwtToken is correct
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "secret", TokenTTL: time.Hour}, zap.NewNop().Sugar())

	accessToken, err := jwtService.GenerateAccessToken(JWTPayload{Role: constant.ROLE_ADMIN})
	require.NoError(t, err)

	claims, err := jwtService.VerifyJwtToken(*accessToken)
	require.NoError(t, err)
	assert.Equal(t, constant.ROLE_ADMIN, claims.Admin.Role)
	assert.Equal(t, constant.JWT_TYPE_ACCESS, claims.Type)
	assert.Equal(t, int64(time.Hour.Seconds()), claims.EXP-claims.IAT)
}

func TestJWTRejects(t *testing.T) {
	logger := zap.NewNop().Sugar()
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "secret", TokenTTL: time.Minute}, logger)

	t.Run("Other secret", func(t *testing.T) {
		other := NewJwt(config.AuthConfig{JWT_SECRET: "another"}, logger)
		token, err := other.GenerateAccessToken(JWTPayload{Role: constant.ROLE_ADMIN})
		require.NoError(t, err)

		_, err = jwtService.VerifyJwtToken(*token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewJwt(config.AuthConfig{JWT_SECRET: "secret", TokenTTL: time.Minute}, logger)
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := expired.GenerateAccessToken(JWTPayload{Role: constant.ROLE_ADMIN})
		require.NoError(t, err)

		_, err = jwtService.VerifyJwtToken(*token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := jwtService.VerifyJwtToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestJWTRandomSecret(t *testing.T) {
	a := NewJwt(config.AuthConfig{}, zap.NewNop().Sugar())
	b := NewJwt(config.AuthConfig{}, zap.NewNop().Sugar())
	assert.Len(t, a.jwtSecret, 64)
	assert.NotEqual(t, a.jwtSecret, b.jwtSecret)
}
