package model

import (
	"errors"
	"fmt"
	"net/http"

	bookModel "catalog-backend/internal/domains/book/model"
)

var (
	ErrGenreNotFound = errors.New("Genre not found")
	ErrGenreHasBooks = errors.New("cannot delete genre with linked books")
)

// GenreInUseError is returned instead of deleting a referenced genre.
// It carries what the confirmation view needs to show the conflict.
type GenreInUseError struct {
	Genre *Genre
	Books []bookModel.Book
}

func (e *GenreInUseError) Error() string {
	return fmt.Sprintf("%s: %d linked books", ErrGenreHasBooks, len(e.Books))
}

func (e *GenreInUseError) Is(target error) bool {
	return target == ErrGenreHasBooks
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGenreHasBooks):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
