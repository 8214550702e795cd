package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var alphanumeric = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// GenreForm is the sanitized create/update submission. Name is trimmed and
// HTML-escaped before validation so it can be redisplayed safely.
type GenreForm struct {
	ID   uuid.UUID `form:"-" json:"-"`
	Name string    `form:"name" json:"name"`
}

// ValidateCreate only requires a name; the length rule of the stored
// record is checked as part of the same pass.
func (f GenreForm) ValidateCreate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Genre name required"),
			lengthRule(),
		),
	)
}

// ValidateUpdate is stricter than create: the name must be alphanumeric.
func (f GenreForm) ValidateUpdate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("You need to enter a name for Genre"),
			validation.Match(alphanumeric).Error("Your name must be alphanumeric"),
			lengthRule(),
		),
	)
}

// ToEntity builds the genre the form describes.
func (f GenreForm) ToEntity() *Genre {
	return &Genre{ID: f.ID, Name: f.Name}
}

func lengthRule() validation.Rule {
	return validation.RuneLength(MinNameLength, MaxNameLength).
		Error("Genre name must be between 3 and 100 characters")
}
