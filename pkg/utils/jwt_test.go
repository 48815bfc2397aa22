package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("s3cret", Claims{UserID: "005xx", Role: "Doctor", DoctorID: "d1"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ValidateJWTToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "005xx", claims.UserID)
	assert.Equal(t, "Doctor", claims.Role)
	assert.Equal(t, "d1", claims.DoctorID)
}

func TestValidateJWTToken_Rejects(t *testing.T) {
	token, err := GenerateJWTToken("s3cret", Claims{UserID: "u"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ValidateJWTToken("other", token)
	assert.Error(t, err)

	expired, err := GenerateJWTToken("s3cret", Claims{UserID: "u"}, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = ValidateJWTToken("s3cret", expired)
	assert.Error(t, err)

	_, err = ValidateJWTToken("", token)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = GenerateJWTToken("", Claims{}, time.Now())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateJWTToken_RejectsNoneAlg(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWTToken("s3cret", unsigned)
	assert.Error(t, err)
}
