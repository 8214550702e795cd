package model

import (
	"time"

	"github.com/google/uuid"
)

// Book is read-only from the catalog's point of view: genres and authors
// query it to render details and to refuse deletes.
type Book struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name" db:"-"` // "family, first", filled by joins
	Summary    string    `json:"summary" db:"summary"`
	ISBN       string    `json:"isbn" db:"isbn"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

type BookResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	ISBN    string    `json:"isbn"`
	URL     string    `json:"url"`
}

func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Summary: b.Summary,
		ISBN:    b.ISBN,
		URL:     b.URL(),
	}
}

// GenreRef is the slice of a genre a book page needs.
type GenreRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (g GenreRef) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

// BookDetail is a book with the genres it is filed under.
type BookDetail struct {
	Book   *Book      `json:"book"`
	Genres []GenreRef `json:"genres"`
}

// AuthorURL links back to the author page.
func (b Book) AuthorURL() string {
	return "/catalog/author/" + b.AuthorID.String()
}
