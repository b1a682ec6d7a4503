package product

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  sub_category TEXT NOT NULL,
  price INTEGER NOT NULL,
  description TEXT NOT NULL,
  full_description TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL,
  cal INTEGER NOT NULL DEFAULT 0,
  protein TEXT NOT NULL DEFAULT '0g',
  fiber TEXT NOT NULL DEFAULT '0g',
  carbs TEXT NOT NULL DEFAULT '0g',
  fats TEXT NOT NULL DEFAULT '0g',
  ingredients TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(products).Error)
	return conn
}

func seedProduct(t *testing.T, conn *gorm.DB, slug string, category enums.Category, createdAt time.Time) *models.Product {
	t.Helper()
	row := &models.Product{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        "Produit " + slug,
		Category:    category,
		SubCategory: enums.SubCategorySmoothie,
		Price:       25,
		Description: "desc",
		Image:       "https://cdn.example.com/" + slug + ".png",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, conn.Create(row).Error)
	return row
}

func TestProductRepositoryRoundTrip(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Product{
		ID:          uuid.New(),
		Slug:        "smoothie-vert",
		Name:        "Smoothie Vert",
		Category:    enums.CategoryBeverages,
		SubCategory: enums.SubCategorySmoothie,
		Price:       25,
		Description: "desc",
		Image:       "https://cdn.example.com/smoothie.png",
		Calories:    180,
		Protein:     "4g",
		Ingredients: types.Ingredients{{Name: "Epinards", Amount: "50g", Benefit: "Fer"}},
	})
	require.NoError(t, err)

	loaded, err := repo.FindBySlug(ctx, "smoothie-vert")
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, 180, loaded.Nutrition().Calories)
	require.Len(t, loaded.Ingredients, 1)
	assert.Equal(t, "Epinards", loaded.Ingredients[0].Name)
}

func TestProductRepositoryListFiltersByCategory(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, conn, "jus-orange", enums.CategoryBeverages, base)
	seedProduct(t, conn, "granola-bio", enums.CategorySnacks, base.Add(time.Hour))

	category := enums.CategoryBeverages
	rows, err := repo.List(ctx, ListFilters{Category: &category}, nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "jus-orange", rows[0].Slug)
}

func TestProductRepositoryListPaginates(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		seedProduct(t, conn, fmt.Sprintf("produit-%d", i), enums.CategorySnacks, base.Add(time.Duration(i)*time.Minute))
	}

	first, err := repo.List(ctx, ListFilters{}, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 3) // buffer row included
	assert.Equal(t, "produit-3", first[0].Slug)

	page, hasMore := pagination.TrimPage(first, 2)
	require.True(t, hasMore)

	cursor := &pagination.Cursor{Timestamp: page[1].CreatedAt, ID: page[1].ID}
	second, err := repo.List(ctx, ListFilters{}, cursor, 2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "produit-1", second[0].Slug)
	assert.Equal(t, "produit-0", second[1].Slug)
}

func TestProductRepositoryDelete(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	row := seedProduct(t, conn, "wrap-poulet", enums.CategorySnacks, time.Now().UTC())

	require.NoError(t, repo.Delete(ctx, row.ID))

	_, err := repo.FindByID(ctx, row.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
