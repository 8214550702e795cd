package model

import (
	"errors"
	"fmt"
	"net/http"

	bookModel "catalog-backend/internal/domains/book/model"
)

var (
	ErrAuthorNotFound = errors.New("Author not found")
	ErrAuthorHasBooks = errors.New("cannot delete author with books")
)

// AuthorInUseError is returned instead of deleting an author who still has books.
type AuthorInUseError struct {
	Author *Author
	Books  []bookModel.Book
}

func (e *AuthorInUseError) Error() string {
	return fmt.Sprintf("%s: %d books", ErrAuthorHasBooks, len(e.Books))
}

func (e *AuthorInUseError) Is(target error) bool {
	return target == ErrAuthorHasBooks
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorHasBooks):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
