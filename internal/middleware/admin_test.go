package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lunarcommerce/lunar-backend/internal/config"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func adminApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Get("/admin", JWTProtected(cfg), AdminRequired(db), func(c *fiber.Ctx) error {
		return c.JSON(dto.OK("ok", nil))
	})
	return app
}

func mockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAdminRequiredAcceptsAdminClaim(t *testing.T) {
	// role claim short-circuits; the db is never touched
	app := adminApp(t, nil)

	token := signToken(t, testSecret, jwt.MapClaims{
		"id":   float64(1),
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRequiredRejectsPlainUser(t *testing.T) {
	db, mock := mockGorm(t)
	app := adminApp(t, db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(1, "user"))

	token := signToken(t, testSecret, jwt.MapClaims{
		"id":   float64(1),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminRequiredPromotedViaDatabase(t *testing.T) {
	db, mock := mockGorm(t)
	app := adminApp(t, db)

	// stale user claim in the token, admin role in the database
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(1, "admin"))

	token := signToken(t, testSecret, jwt.MapClaims{
		"id":   float64(1),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
