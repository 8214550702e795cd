package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	bookModel "catalog-backend/internal/domains/book/model"
)

const (
	MinNameLength = 3
	MaxNameLength = 100

	// CollectionURL is where list, delete and update flows land.
	CollectionURL = "/catalog/genres"
)

// Genre is a book category. Names are not unique at the storage level.
type Genre struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the canonical location of the genre detail page.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

// Validate enforces the persisted shape of a genre.
func (g Genre) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name,
			validation.Required.Error("Genre name required"),
			validation.RuneLength(MinNameLength, MaxNameLength).
				Error("Genre name must be between 3 and 100 characters"),
		),
	)
}

// GenreDetail is a genre together with the books that reference it.
type GenreDetail struct {
	Genre *Genre           `json:"genre"`
	Books []bookModel.Book `json:"books"`
}

// HasBooks reports whether deleting the genre would orphan references.
func (d GenreDetail) HasBooks() bool {
	return len(d.Books) > 0
}

type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

type GenreDetailResponse struct {
	GenreResponse
	Books []bookModel.BookResponse `json:"books"`
}

func (g Genre) ToResponse() GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name, URL: g.URL()}
}

func (d GenreDetail) ToResponse() GenreDetailResponse {
	books := make([]bookModel.BookResponse, len(d.Books))
	for i, b := range d.Books {
		books[i] = b.ToResponse()
	}
	return GenreDetailResponse{GenreResponse: d.Genre.ToResponse(), Books: books}
}
