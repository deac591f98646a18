package services

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lunarcommerce/lunar-backend/internal/config"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  models.RoleUser,
	}
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	svc := testTokenService()

	signed, err := svc.IssueAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.VerifyAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestAccessTokenCarriesRole(t *testing.T) {
	svc := testTokenService()
	admin := testUser()
	admin.Role = models.RoleAdmin

	signed, err := svc.IssueAccessToken(admin)
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAccessTokenExpiry(t *testing.T) {
	svc := testTokenService()

	signed, err := svc.IssueAccessToken(testUser())
	require.NoError(t, err)

	token, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64((15 * time.Minute).Seconds()), exp-iat)

	// refresh token carries no role and lives 7 days
	refresh, err := svc.IssueRefreshToken(testUser())
	require.NoError(t, err)
	token, _, err = jwt.NewParser().ParseUnverified(refresh, jwt.MapClaims{})
	require.NoError(t, err)
	claims = token.Claims.(jwt.MapClaims)
	_, hasRole := claims["role"]
	assert.False(t, hasRole)
	assert.Equal(t, int64((168 * time.Hour).Seconds()),
		int64(claims["exp"].(float64))-int64(claims["iat"].(float64)))
}

func TestVerifyAccessTokenRejectsTampered(t *testing.T) {
	svc := testTokenService()

	signed, err := svc.IssueAccessToken(testUser())
	require.NoError(t, err)

	// flip the payload but keep the original signature
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = svc.VerifyAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	other := NewTokenService(&config.Config{
		JWTSecret:        "other-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	})

	signed, err := other.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = testTokenService().VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	svc := NewTokenService(&config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  -1 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	})

	signed, err := svc.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenRejectsNoneAlgorithm(t *testing.T) {
	svc := testTokenService()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":    float64(42),
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	_, err := testTokenService().VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashToken(t *testing.T) {
	h := HashToken("some-refresh-token")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("some-refresh-token"))
	assert.NotEqual(t, h, HashToken("some-other-token"))
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{15 * time.Minute, "15m"},
		{168 * time.Hour, "168h"},
		{90 * time.Second, "1m30s"},
		{2*time.Hour + 30*time.Minute, "2h30m"},
		{time.Hour, "1h"},
		{30 * time.Second, "30s"},
		{0, "0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatExpiry(tt.d))
	}
}
