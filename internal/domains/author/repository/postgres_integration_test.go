//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/infrastructure/database/dbtest"
	"catalog-backend/pkg/cache"
)

func TestPostgresRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool, cache.NewNoop(), time.Minute)

	birth := time.Date(1920, 1, 2, 0, 0, 0, 0, time.UTC)
	death := time.Date(1992, 4, 6, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &model.Author{
		FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: &birth, DateOfDeath: &death,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asimov, Isaac", got.Name())
	assert.Equal(t, "Jan 2, 1920 – Apr 6, 1992", got.LifespanFormatted())

	got.DateOfDeath = nil
	ok, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DateOfDeath)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	ok, err = repo.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresRepository_DeleteAuthorWithBooks(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool, cache.NewNoop(), time.Minute)

	a, err := repo.Create(ctx, &model.Author{FirstName: "Ben", FamilyName: "Bova"})
	require.NoError(t, err)
	dbtest.InsertBook(t, pool, "Death Wave", a.ID.String())

	_, err = repo.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
}

func TestPostgresRepository_ListOrdersByFamilyName(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool, cache.NewNoop(), time.Minute)

	for _, a := range []model.Author{{FirstName: "Ben", FamilyName: "Bova"}, {FirstName: "Isaac", FamilyName: "Asimov"}} {
		_, err := repo.Create(ctx, &a)
		require.NoError(t, err)
	}

	authors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Asimov", authors[0].FamilyName)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
