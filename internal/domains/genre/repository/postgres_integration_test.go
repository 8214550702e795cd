//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/genre/model"
	"catalog-backend/internal/infrastructure/database/dbtest"
	"catalog-backend/pkg/cache"
)

func TestPostgresRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool, cache.NewNoop(), time.Minute)

	created, err := repo.Create(ctx, &model.Genre{Name: "Fantasy"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Name)

	found, err := repo.FindByName(ctx, "Fantasy")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	miss, err := repo.FindByName(ctx, "fantasy")
	require.NoError(t, err)
	assert.Nil(t, miss)

	ok, err := repo.Update(ctx, created.ID, "HighFantasy")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Update(ctx, uuid.New(), "Nothing")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestPostgresRepository_ListOrdersByName(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool, cache.NewNoop(), time.Minute)

	for _, name := range []string{"Poetry", "Drama", "Mystery"} {
		_, err := repo.Create(ctx, &model.Genre{Name: name})
		require.NoError(t, err)
	}

	genres, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, []string{"Drama", "Mystery", "Poetry"}, []string{genres[0].Name, genres[1].Name, genres[2].Name})
}

func TestPostgresRepository_DeleteReferencedGenre(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool, cache.NewNoop(), time.Minute)

	g, err := repo.Create(ctx, &model.Genre{Name: "Horror"})
	require.NoError(t, err)
	authorID := dbtest.InsertAuthor(t, pool, "Stephen", "King")
	dbtest.InsertBook(t, pool, "Carrie", authorID, g.ID.String())

	_, err = repo.Delete(ctx, g.ID)
	assert.ErrorIs(t, err, model.ErrGenreHasBooks)

	_, err = repo.GetByID(ctx, g.ID)
	assert.NoError(t, err)
}
