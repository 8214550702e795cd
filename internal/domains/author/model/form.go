package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// DateInputLayout is what <input type="date"> submits.
const DateInputLayout = "2006-01-02"

// AuthorForm is the sanitized create/update submission. Dates stay strings
// so an invalid value can be redisplayed as typed.
type AuthorForm struct {
	ID          uuid.UUID `form:"-" json:"-"`
	FirstName   string    `form:"first_name" json:"first_name"`
	FamilyName  string    `form:"family_name" json:"family_name"`
	DateOfBirth string    `form:"date_of_birth" json:"date_of_birth"`
	DateOfDeath string    `form:"date_of_death" json:"date_of_death"`
}

func (f AuthorForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName,
			validation.Required.Error("First name must be specified."),
			validation.RuneLength(1, MaxNameLength).Error("First name must be at most 100 characters."),
			is.Alphanumeric.Error("First name has non-alphanumeric characters."),
		),
		validation.Field(&f.FamilyName,
			validation.Required.Error("Family name must be specified."),
			validation.RuneLength(1, MaxNameLength).Error("Family name must be at most 100 characters."),
			is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
		),
		validation.Field(&f.DateOfBirth,
			validation.Date(DateInputLayout).Error("Invalid date of birth"),
		),
		validation.Field(&f.DateOfDeath,
			validation.Date(DateInputLayout).Error("Invalid date of death"),
			validation.By(f.notBeforeBirth),
		),
	)
}

func (f AuthorForm) notBeforeBirth(interface{}) error {
	birth, errB := parseDate(f.DateOfBirth)
	death, errD := parseDate(f.DateOfDeath)
	if errB != nil || errD != nil || birth == nil || death == nil {
		return nil
	}
	if death.Before(*birth) {
		return validation.NewError("validation_death_before_birth", "Date of death must not be before date of birth")
	}
	return nil
}

// ToEntity converts a validated form into an author.
func (f AuthorForm) ToEntity() (*Author, error) {
	birth, err := parseDate(f.DateOfBirth)
	if err != nil {
		return nil, err
	}
	death, err := parseDate(f.DateOfDeath)
	if err != nil {
		return nil, err
	}
	return &Author{
		ID:          f.ID,
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: birth,
		DateOfDeath: death,
	}, nil
}

// FormFromAuthor pre-populates the update form.
func FormFromAuthor(a *Author) AuthorForm {
	f := AuthorForm{ID: a.ID, FirstName: a.FirstName, FamilyName: a.FamilyName}
	if a.DateOfBirth != nil {
		f.DateOfBirth = a.DateOfBirth.UTC().Format(DateInputLayout)
	}
	if a.DateOfDeath != nil {
		f.DateOfDeath = a.DateOfDeath.UTC().Format(DateInputLayout)
	}
	return f
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateInputLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
