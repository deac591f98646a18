package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

// AuthService orchestrates registration, login, the refresh exchange, and
// revocation. Each operation is a short sequence of independent
// statements; there is no transaction wrapping and no shared mutable
// state between requests.
type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
	hasher *PasswordHasher
}

func NewAuthService(db *gorm.DB, tokens *TokenService, hasher *PasswordHasher) *AuthService {
	return &AuthService{db: db, tokens: tokens, hasher: hasher}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent register can slip past the lookup; the unique
		// index is the authority.
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokenPair(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.findByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// RefreshAccessToken exchanges a stored, unexpired, unrevoked refresh
// token for a fresh access token. The refresh token itself is not
// rotated; it stays valid until expiry or explicit revocation.
func (s *AuthService) RefreshAccessToken(refreshToken string) (*dto.RefreshResponse, error) {
	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ?", HashToken(refreshToken)).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user %d: %w", stored.UserID, err)
	}

	accessToken, err := s.tokens.IssueAccessToken(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &dto.RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   FormatExpiry(s.tokens.AccessTTL()),
	}, nil
}

// Logout revokes the matching refresh token. Revoking an already-revoked
// or unknown token is not an error.
func (s *AuthService) Logout(refreshToken string) error {
	now := time.Now()
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked = false", HashToken(refreshToken)).
		Updates(map[string]interface{}{"revoked": true, "revoked_at": now}).Error
}

// LogoutAll revokes every active refresh token the user holds.
func (s *AuthService) LogoutAll(userID uint) error {
	now := time.Now()
	return s.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", userID).
		Updates(map[string]interface{}{"revoked": true, "revoked_at": now}).Error
}

func (s *AuthService) GetProfile(userID uint) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

func (s *AuthService) findByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) issueTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: HashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.tokens.RefreshTTL()),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    FormatExpiry(s.tokens.AccessTTL()),
		User:         dto.NewUserResponse(user),
	}, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}
