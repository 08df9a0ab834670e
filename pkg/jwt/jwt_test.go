package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Run("round trip preserves the user id", func(t *testing.T) {
		req := require.New(t)
		j := NewJWT("secret", time.Hour)

		token, err := j.GenerateToken(42)
		req.NoError(err)

		claims, err := j.ValidateToken(token)
		req.NoError(err)
		req.Equal(int64(42), claims.UserID)
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		req := require.New(t)
		token, err := NewJWT("one", time.Hour).GenerateToken(1)
		req.NoError(err)

		_, err = NewJWT("two", time.Hour).ValidateToken(token)
		req.Error(err)
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		req := require.New(t)
		j := NewJWT("secret", -time.Minute)

		token, err := j.GenerateToken(1)
		req.NoError(err)

		_, err = j.ValidateToken(token)
		req.Error(err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := NewJWT("secret", time.Hour).ValidateToken("not.a.token")
		require.Error(t, err)
	})
}
