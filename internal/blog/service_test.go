package blog

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

	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
)

func setupBlogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	posts := `
CREATE TABLE IF NOT EXISTS blog_posts (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  excerpt TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL,
  author TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  published_at DATETIME NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(posts).Error)
	return conn
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupBlogTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestCreateDefaultsPublishedAt(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Create(context.Background(), CreatePostInput{
		Title:   "Bienfaits du petit-dejeuner",
		Content: "contenu",
	})
	require.NoError(t, err)
	assert.False(t, dto.PublishedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreatePostInput{Content: "contenu"})
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create(context.Background(), CreatePostInput{Title: "Titre"})
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListOrdersByPublishedAt(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	base := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, CreatePostInput{
			Title:       fmt.Sprintf("Article %d", i),
			Content:     "contenu",
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	result, err := svc.List(ctx, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, "Article 2", result.Posts[0].Title)
	assert.Equal(t, "Article 1", result.Posts[1].Title)
	require.NotEmpty(t, result.NextCursor)

	second, err := svc.List(ctx, pagination.Params{Limit: 2, Cursor: result.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Posts, 1)
	assert.Equal(t, "Article 0", second.Posts[0].Title)
	assert.Empty(t, second.NextCursor)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePostInput{Title: "Titre", Content: "contenu"})
	require.NoError(t, err)

	title := "Titre revise"
	updated, err := svc.Update(ctx, created.ID, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestGetByIDRequiresID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), uuid.Nil)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
