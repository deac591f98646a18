package services

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lunarcommerce/lunar-backend/internal/config"
	"github.com/lunarcommerce/lunar-backend/internal/models"
)

// AccessClaims is the identity carried by a decoded access token.
type AccessClaims struct {
	UserID uint
	Email  string
	Role   models.Role
}

// TokenService signs and verifies the HS256 token pair. Access tokens are
// short-lived and self-contained; refresh tokens are long-lived and only
// usable through the token store.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.JWTAccessExpiry,
		refreshTTL: cfg.JWTRefreshExpiry,
	}
}

func (s *TokenService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *TokenService) IssueAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) IssueRefreshToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.refreshTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyAccessToken decodes a signed access token. Expired, tampered, and
// malformed tokens all fail with ErrInvalidToken; the actual cause is
// logged at debug level but never surfaced to the caller.
func (s *TokenService) VerifyAccessToken(signed string) (*AccessClaims, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		slog.Debug("access token rejected", "error", err)
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		slog.Debug("access token rejected", "error", "unexpected claims type")
		return nil, ErrInvalidToken
	}

	id, ok := mapClaims["id"].(float64)
	if !ok {
		slog.Debug("access token rejected", "error", "missing id claim")
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &AccessClaims{
		UserID: uint(id),
		Email:  email,
		Role:   models.Role(role),
	}, nil
}

// HashToken derives the storage key for a refresh token. Only this hash
// hits the database.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

// FormatExpiry renders a TTL the way clients expect it ("15m", not
// "15m0s").
func FormatExpiry(d time.Duration) string {
	s := d.String()
	if d != 0 && d%time.Minute == 0 {
		s = strings.TrimSuffix(s, "0s")
	}
	if d != 0 && d%time.Hour == 0 {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
