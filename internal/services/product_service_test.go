package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetByID(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductGetByIDInStockFlag(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "stock", "price"}).
			AddRow(1, "Lunar Hoodie", 2, 0, 49.90))
	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "gender"}).AddRow(2, "hoodies", "men"))

	resp, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.False(t, resp.InStock)
	assert.Equal(t, "hoodies", resp.Category)
}

func TestProductCreateReusesExistingCategory(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	stock := 10
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1 AND gender = \$2`).
		WithArgs("hoodies", "men", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "gender"}).AddRow(2, "hoodies", "men"))
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	resp, err := svc.Create(&dto.CreateProductRequest{
		Name:     "Lunar Hoodie",
		Brand:    "Lunar",
		Gender:   "men",
		Category: "hoodies",
		Price:    49.90,
		Stock:    &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), resp.ID)
	assert.True(t, resp.InStock)
	assert.Equal(t, "hoodies", resp.Category)
}

func TestProductCreateCreatesMissingCategory(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	stock := 3
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1 AND gender = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))

	resp, err := svc.Create(&dto.CreateProductRequest{
		Name:     "Lunar Sneakers",
		Brand:    "Lunar",
		Gender:   "women",
		Category: "sneakers",
		Price:    89.90,
		Stock:    &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, "sneakers", resp.Category)
}

func TestProductDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectExec(`DELETE FROM "products"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCategoryCreateConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1 AND gender = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "gender"}).AddRow(2, "hoodies", "men"))

	_, err := svc.Create(&dto.CreateCategoryRequest{Name: "hoodies", Gender: "men"})
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestCategoryNamesByGender(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery(`SELECT DISTINCT "?name"? FROM "categories" WHERE gender = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("hoodies").AddRow("sneakers"))

	names, err := svc.NamesByGender(models.GenderMen)
	require.NoError(t, err)
	assert.Equal(t, []string{"hoodies", "sneakers"}, names)
}

func TestSweepRefreshTokens(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "refresh_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := SweepRefreshTokens(db)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
