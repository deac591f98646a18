package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

// SocialProfile is a third-party identity assertion. Provider-side
// verification (signature, token exchange) happens before this point;
// the bridge trusts these fields.
type SocialProfile struct {
	Provider   models.OAuthProvider
	ProviderID string
	Email      string
	Name       string
	Picture    string
}

// OAuthService maps social profiles onto local user records, creating or
// linking accounts as needed.
type OAuthService struct {
	db     *gorm.DB
	tokens *TokenService
	hasher *PasswordHasher
}

func NewOAuthService(db *gorm.DB, tokens *TokenService, hasher *PasswordHasher) *OAuthService {
	return &OAuthService{db: db, tokens: tokens, hasher: hasher}
}

// SignIn resolves a social profile to a local user. An unknown email
// creates an account with an unusable random password; a known email is
// silently re-linked to the asserted provider. Either way the caller
// gets a fresh access token.
func (s *OAuthService) SignIn(profile SocialProfile) (*dto.OAuthResponse, error) {
	if !profile.Provider.Valid() {
		return nil, ErrInvalidProvider
	}
	if profile.Email == "" {
		return nil, ErrMissingProviderField
	}
	if profile.Provider == models.ProviderApple && profile.ProviderID == "" {
		return nil, ErrMissingProviderField
	}

	email := strings.ToLower(profile.Email)

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if user.OAuthID == nil || user.OAuthProvider == nil || *user.OAuthProvider != profile.Provider {
			if err := s.link(&user, profile.Provider, profile.ProviderID, profile.Picture); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := profile.Name
		if name == "" {
			name = strings.Split(email, "@")[0]
		}

		placeholder, err := s.unusablePassword()
		if err != nil {
			return nil, err
		}

		provider := profile.Provider
		providerID := profile.ProviderID
		user = models.User{
			Name:          name,
			Email:         email,
			Password:      placeholder,
			Role:          models.RoleUser,
			OAuthProvider: &provider,
			OAuthID:       &providerID,
			ProfileImage:  profile.Picture,
		}
		if err := s.db.Create(&user).Error; err != nil {
			if isDuplicateKey(err) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to create OAuth user: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	token, err := s.tokens.IssueAccessToken(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &dto.OAuthResponse{
		Token: token,
		User:  dto.NewUserResponse(&user),
	}, nil
}

// LinkAccount attaches or overwrites the OAuth linkage of an
// authenticated user. Tokens are untouched.
func (s *OAuthService) LinkAccount(userID uint, provider models.OAuthProvider, providerID, picture string) error {
	if !provider.Valid() {
		return ErrInvalidProvider
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.link(&user, provider, providerID, picture)
}

func (s *OAuthService) link(user *models.User, provider models.OAuthProvider, providerID, picture string) error {
	updates := map[string]interface{}{
		"oauth_provider": string(provider),
		"oauth_id":       providerID,
	}
	if picture != "" {
		updates["profile_image"] = picture
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to link %s account: %w", provider, err)
	}

	user.OAuthProvider = &provider
	user.OAuthID = &providerID
	if picture != "" {
		user.ProfileImage = picture
	}
	return nil
}

// unusablePassword produces a bcrypt digest of random bytes nobody
// knows; OAuth-only accounts have no password login path.
func (s *OAuthService) unusablePassword() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random password: %w", err)
	}
	return s.hasher.Hash(base64.RawURLEncoding.EncodeToString(raw))
}
