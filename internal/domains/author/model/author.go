package model

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	bookModel "catalog-backend/internal/domains/book/model"
)

const (
	MaxNameLength = 100

	// CollectionURL is where delete and update flows land.
	CollectionURL = "/catalog/authors"

	// DisplayDateLayout is the medium date used on every page.
	DisplayDateLayout = "Jan 2, 2006"
)

// Author is a book writer. Dates are calendar dates and may be absent.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ========== DERIVED FIELDS ==========

// Name is "family, first".
func (a Author) Name() string {
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan is the difference of the death and birth years.
// ok is false unless both dates are known.
func (a Author) Lifespan() (years int, ok bool) {
	if a.DateOfBirth == nil || a.DateOfDeath == nil {
		return 0, false
	}
	return a.DateOfDeath.UTC().Year() - a.DateOfBirth.UTC().Year(), true
}

func (a Author) DateOfBirthFormatted() string {
	return formatDate(a.DateOfBirth)
}

func (a Author) DateOfDeathFormatted() string {
	return formatDate(a.DateOfDeath)
}

// LifespanFormatted is "birth – death", just "birth" when the author is
// alive or the death date is unknown, and empty without a birth date.
func (a Author) LifespanFormatted() string {
	switch {
	case a.DateOfBirth != nil && a.DateOfDeath != nil:
		return a.DateOfBirthFormatted() + " – " + a.DateOfDeathFormatted()
	case a.DateOfBirth != nil:
		return a.DateOfBirthFormatted()
	default:
		return ""
	}
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(DisplayDateLayout)
}

// Validate enforces the persisted shape of an author.
func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FirstName, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&a.FamilyName, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&a.DateOfDeath, validation.By(func(interface{}) error {
			if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
				return validation.NewError("validation_death_before_birth", "must not be before the date of birth")
			}
			return nil
		})),
	)
}

// AuthorDetail is an author together with the books they wrote.
type AuthorDetail struct {
	Author *Author          `json:"author"`
	Books  []bookModel.Book `json:"books"`
}

func (d AuthorDetail) HasBooks() bool {
	return len(d.Books) > 0
}

// ========== RESPONSES ==========

type AuthorResponse struct {
	ID                   uuid.UUID `json:"id"`
	FirstName            string    `json:"first_name"`
	FamilyName           string    `json:"family_name"`
	Name                 string    `json:"name"`
	DateOfBirth          *string   `json:"date_of_birth,omitempty"`
	DateOfDeath          *string   `json:"date_of_death,omitempty"`
	DateOfBirthFormatted string    `json:"date_of_birth_formatted"`
	DateOfDeathFormatted string    `json:"date_of_death_formatted"`
	Lifespan             *string   `json:"lifespan,omitempty"`
	LifespanFormatted    string    `json:"lifespan_formatted"`
	URL                  string    `json:"url"`
}

type AuthorDetailResponse struct {
	AuthorResponse
	Books []bookModel.BookResponse `json:"books"`
}

func (a Author) ToResponse() AuthorResponse {
	resp := AuthorResponse{
		ID:                   a.ID,
		FirstName:            a.FirstName,
		FamilyName:           a.FamilyName,
		Name:                 a.Name(),
		DateOfBirth:          isoDate(a.DateOfBirth),
		DateOfDeath:          isoDate(a.DateOfDeath),
		DateOfBirthFormatted: a.DateOfBirthFormatted(),
		DateOfDeathFormatted: a.DateOfDeathFormatted(),
		LifespanFormatted:    a.LifespanFormatted(),
		URL:                  a.URL(),
	}
	if years, ok := a.Lifespan(); ok {
		s := strconv.Itoa(years)
		resp.Lifespan = &s
	}
	return resp
}

func (d AuthorDetail) ToResponse() AuthorDetailResponse {
	books := make([]bookModel.BookResponse, len(d.Books))
	for i, b := range d.Books {
		books[i] = b.ToResponse()
	}
	return AuthorDetailResponse{AuthorResponse: d.Author.ToResponse(), Books: books}
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateInputLayout)
	return &s
}
