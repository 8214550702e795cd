//go:build integration

// Package dbtest starts a throwaway PostgreSQL for repository tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"catalog-backend/internal/infrastructure/database"
)

// NewPool starts a container, applies the embedded migrations and returns
// a pool. Everything is torn down with the test.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("local_library"),
		postgres.WithUsername("library"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return pool
}

// InsertAuthor adds an author without dates and returns its id.
func InsertAuthor(t *testing.T, pool *pgxpool.Pool, first, family string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(),
		`INSERT INTO authors (first_name, family_name) VALUES ($1, $2) RETURNING id::text`,
		first, family).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert author: %v", err)
	}
	return id
}

// InsertBook adds a book by author, tagged with genreIDs, and returns its id.
func InsertBook(t *testing.T, pool *pgxpool.Pool, title, authorID string, genreIDs ...string) string {
	t.Helper()
	ctx := context.Background()

	var id string
	err := pool.QueryRow(ctx,
		`INSERT INTO books (title, author_id) VALUES ($1, $2) RETURNING id::text`,
		title, authorID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert book: %v", err)
	}
	for _, g := range genreIDs {
		if _, err := pool.Exec(ctx, `INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`, id, g); err != nil {
			t.Fatalf("Failed to tag book: %v", err)
		}
	}
	return id
}
