package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthService(t *testing.T) (*OAuthService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewOAuthService(db, testTokenService(), NewPasswordHasher()), mock
}

func TestOAuthSignInCreatesAccount(t *testing.T) {
	svc, mock := newTestOAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ada@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	resp, err := svc.SignIn(SocialProfile{
		Provider:   models.ProviderGoogle,
		ProviderID: "google-sub-123",
		Email:      "Ada@Example.com",
		Name:       "Ada Lovelace",
		Picture:    "https://example.com/ada.png",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Ada Lovelace", resp.User.Name)
}

func TestOAuthSignInNameFallsBackToEmailLocalPart(t *testing.T) {
	svc, mock := newTestOAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

	resp, err := svc.SignIn(SocialProfile{
		Provider:   models.ProviderApple,
		ProviderID: "apple-sub-456",
		Email:      "grace@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", resp.User.Name)
}

func TestOAuthSignInLinksExistingAccount(t *testing.T) {
	svc, mock := newTestOAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow(3, "Ada Lovelace", "ada@example.com", "user"))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.SignIn(SocialProfile{
		Provider:   models.ProviderGoogle,
		ProviderID: "google-sub-123",
		Email:      "ada@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestOAuthSignInSkipsLinkWhenAlreadyLinked(t *testing.T) {
	svc, mock := newTestOAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "oauth_provider", "oauth_id"}).
			AddRow(3, "Ada Lovelace", "ada@example.com", "user", "google", "google-sub-123"))

	// no UPDATE expected
	resp, err := svc.SignIn(SocialProfile{
		Provider:   models.ProviderGoogle,
		ProviderID: "google-sub-123",
		Email:      "ada@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOAuthSignInSurfacesLookupFailure(t *testing.T) {
	svc, mock := newTestOAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(errors.New("connection refused"))

	_, err := svc.SignIn(SocialProfile{
		Provider:   models.ProviderGoogle,
		ProviderID: "google-sub-123",
		Email:      "ada@example.com",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.Contains(t, err.Error(), "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOAuthSignInRejectsInvalidProvider(t *testing.T) {
	svc, _ := newTestOAuthService(t)

	_, err := svc.SignIn(SocialProfile{
		Provider: models.OAuthProvider("facebook"),
		Email:    "ada@example.com",
	})
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestOAuthSignInRequiresEmail(t *testing.T) {
	svc, _ := newTestOAuthService(t)

	_, err := svc.SignIn(SocialProfile{Provider: models.ProviderGoogle, ProviderID: "sub"})
	assert.ErrorIs(t, err, ErrMissingProviderField)
}

func TestOAuthSignInAppleRequiresSubject(t *testing.T) {
	svc, _ := newTestOAuthService(t)

	_, err := svc.SignIn(SocialProfile{Provider: models.ProviderApple, Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrMissingProviderField)
}

func TestLinkAccountUnknownUser(t *testing.T) {
	svc, mock := newTestOAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.LinkAccount(99, models.ProviderGoogle, "sub", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
