package dto

// GoogleCallbackRequest carries the Google profile assertion supplied by
// the client after provider-side verification.
type GoogleCallbackRequest struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AppleCallbackRequest carries the Apple profile assertion. When
// IdentityToken is set the server verifies it against Apple's JWKS and
// derives sub/email from the verified claims instead.
type AppleCallbackRequest struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	IdentityToken string `json:"identityToken,omitempty"`
}

type LinkSocialRequest struct {
	Provider string `json:"provider"`
	ID       string `json:"id"`
	Picture  string `json:"picture"`
}

type OAuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
