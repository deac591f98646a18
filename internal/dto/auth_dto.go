package dto

import (
	"errors"
	"regexp"
	"time"

	"github.com/lunarcommerce/lunar-backend/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return errors.New("name, email, and password are required")
	}
	if !emailPattern.MatchString(r.Email) {
		return errors.New("please enter a valid email address")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	if !emailPattern.MatchString(r.Email) {
		return errors.New("please enter a valid email address")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	OAuthProvider string `json:"oauthProvider,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.OAuthProvider != nil {
		resp.OAuthProvider = string(*u.OAuthProvider)
	}
	return resp
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    string       `json:"expiresIn"`
	User         UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   string `json:"expiresIn"`
}
