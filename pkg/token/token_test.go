package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	svc := NewService("test-secret")

	signed, err := svc.Generate("64f1c0ffee0000000000aaaa", "jane@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000aaaa", claims.DoctorID)
	assert.Equal(t, "jane@x.com", claims.Email)
}

func TestTokenExpiryIsThirtyMinutes(t *testing.T) {
	svc := NewService("test-secret")

	signed, err := svc.Generate("64f1c0ffee0000000000aaaa", "jane@x.com")
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(Expiry), claims.ExpiresAt, 5*time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewService("one-secret").Generate("64f1c0ffee0000000000aaaa", "")
	require.NoError(t, err)

	_, err = NewService("another-secret").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"doctorId": "64f1c0ffee0000000000aaaa",
		"iat":      time.Now().Add(-time.Hour).Unix(),
		"exp":      time.Now().Add(-30 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewService("test-secret").Verify(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewService("test-secret").Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingDoctorID(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewService("test-secret").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
