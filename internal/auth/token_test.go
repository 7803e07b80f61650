package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestVerifier_HS256(t *testing.T) {
	v, err := NewVerifier(testSecret, "", "")
	require.NoError(t, err)

	token, err := SignHS256(testSecret, "user_123", "", time.Hour)
	require.NoError(t, err)

	caller, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", caller.UserID)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier(testSecret, "", "https://clerk.example")
	require.NoError(t, err)

	wrongSecret, _ := SignHS256("other", "user_1", "https://clerk.example", time.Hour)
	expired, _ := SignHS256(testSecret, "user_1", "https://clerk.example", -time.Minute)
	wrongIssuer, _ := SignHS256(testSecret, "user_1", "https://evil.example", time.Hour)
	noSubject, _ := SignHS256(testSecret, "", "https://clerk.example", time.Hour)

	for name, token := range map[string]string{
		"wrong secret": wrongSecret,
		"expired":      expired,
		"wrong issuer": wrongIssuer,
		"no subject":   noSubject,
		"garbage":      "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err = v.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifier_RS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	v, err := NewVerifier("", string(pemKey), "")
	require.NoError(t, err)

	claims := Claims{
		SessionID: "sess_1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_rsa",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	caller, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user_rsa", caller.UserID)
	assert.Equal(t, "sess_1", caller.SessionID)

	// HS256-токен не принимается, когда настроен RS256
	hsToken, _ := SignHS256("whatever", "user_rsa", "", time.Hour)
	_, err = v.Verify(hsToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewVerifier_RequiresKey(t *testing.T) {
	_, err := NewVerifier("", "", "")
	assert.Error(t, err)

	_, err = NewVerifier("", "not a pem", "")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	token, ok = BearerToken("bearer xyz")
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = BearerToken("")
	assert.False(t, ok)
}
