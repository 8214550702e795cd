package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Summary counts what Populate inserted.
type Summary struct {
	Genres  int
	Authors int
	Books   int
}

type sampleAuthor struct {
	first, family string
	birth, death  string
}

type sampleBook struct {
	title, summary, isbn string
	author               int
	genres               []int
}

var (
	sampleGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}

	sampleAuthors = []sampleAuthor{
		{"Patrick", "Rothfuss", "1973-06-06", ""},
		{"Ben", "Bova", "1932-11-08", ""},
		{"Isaac", "Asimov", "1920-01-02", "1992-04-06"},
		{"Bob", "Billings", "", ""},
		{"Jim", "Jones", "1971-12-16", ""},
	}

	sampleBooks = []sampleBook{
		{"The Name of the Wind (The Kingkiller Chronicle, #1)", "A boy grows into the most notorious wizard his world has ever seen.", "9781473211896", 0, []int{0}},
		{"The Wise Man's Fear (The Kingkiller Chronicle, #2)", "Kvothe searches for answers about the Chandrian.", "9788401352836", 0, []int{0}},
		{"The Slow Regard of Silent Things (Kingkiller Chronicle)", "A brief, bittersweet glimpse of Auri's life.", "9780756411336", 0, []int{0}},
		{"Apes and Angels", "Humankind's first interstellar expedition finds a wave of death.", "9780765379528", 1, []int{1}},
		{"Death Wave", "Ben Bova's previous novel, New Earth, continued.", "9780765379504", 1, []int{1}},
		{"Test Book 1", "Summary of test book 1", "ISBN111111", 3, []int{0, 1}},
		{"Test Book 2", "Summary of test book 2", "ISBN222222", 3, nil},
	}
)

// Populate inserts the sample catalog through tx.
func Populate(ctx context.Context, tx pgx.Tx) (Summary, error) {
	genreIDs := make([]uuid.UUID, len(sampleGenres))
	for i, name := range sampleGenres {
		if err := tx.QueryRow(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id`, name).Scan(&genreIDs[i]); err != nil {
			return Summary{}, fmt.Errorf("failed to insert genre %q: %w", name, err)
		}
	}

	authorIDs := make([]uuid.UUID, len(sampleAuthors))
	for i, a := range sampleAuthors {
		birth, err := optionalDate(a.birth)
		if err != nil {
			return Summary{}, err
		}
		death, err := optionalDate(a.death)
		if err != nil {
			return Summary{}, err
		}
		if err := tx.QueryRow(ctx, `
			INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, a.first, a.family, birth, death).Scan(&authorIDs[i]); err != nil {
			return Summary{}, fmt.Errorf("failed to insert author %s %s: %w", a.first, a.family, err)
		}
	}

	batch := &pgx.Batch{}
	for _, b := range sampleBooks {
		bookID := uuid.New()
		batch.Queue(`
			INSERT INTO books (id, title, author_id, summary, isbn)
			VALUES ($1, $2, $3, $4, $5)
		`, bookID, b.title, authorIDs[b.author], b.summary, b.isbn)
		for _, g := range b.genres {
			batch.Queue(`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`, bookID, genreIDs[g])
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return Summary{}, fmt.Errorf("failed to insert books: %w", err)
	}

	return Summary{
		Genres:  len(genreIDs),
		Authors: len(authorIDs),
		Books:   len(sampleBooks),
	}, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid sample date %q: %w", s, err)
	}
	return &t, nil
}
