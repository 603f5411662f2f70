package auth_test

import (
	"testing"
	"time"

	"github.com/Bowya123/swiggybackend/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "64f1b2a3c4d5e6f7a8b9c0d1"

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := auth.NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(testUserID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := auth.NewTokenService([]byte("test-secret"))

	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(bad)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", bad)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := auth.NewTokenService([]byte("secret-a"))
	verifier := auth.NewTokenService([]byte("secret-b"))

	token, err := issuer.Issue(testUserID)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	svc := auth.NewTokenService(secret)

	claims := auth.Claims{
		UserID: testUserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-13 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsMissingUserIDClaim(t *testing.T) {
	secret := []byte("test-secret")
	svc := auth.NewTokenService(secret)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
