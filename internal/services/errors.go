package services

import "errors"

var (
	ErrEmailTaken           = errors.New("this email is already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired refresh token")
	ErrUserNotFound         = errors.New("user not found")
	ErrForbidden            = errors.New("forbidden")
	ErrMissingProviderField = errors.New("required provider field is missing")
	ErrInvalidProvider      = errors.New("invalid OAuth provider")
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryExists       = errors.New("category already exists for this gender")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidStatus        = errors.New("invalid status. Must be pending, shipped, delivered, or cancelled")
)
