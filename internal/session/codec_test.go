package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := codec.Encode("sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", id)
}

func TestCodec_Decode_InvalidToken(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	_, err := codec.Decode("invalid.token.string")
	assert.Error(t, err)
}

func TestCodec_Decode_Expired(t *testing.T) {
	codec := NewCodec("secret", -time.Hour)

	token, err := codec.Encode("sess-1")
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	token, err := NewCodec("secret1", time.Hour).Encode("sess-1")
	require.NoError(t, err)

	_, err = NewCodec("secret2", time.Hour).Decode(token)
	assert.Error(t, err)
}

func TestCodec_Decode_MissingID(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := codec.Encode("")
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.Error(t, err)
}

func TestCodec_Decode_InvalidSigningMethod(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	claims := &jwt.RegisteredClaims{
		ID:        "sess-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}
