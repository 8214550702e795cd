package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestName(t *testing.T) {
	a := Author{FirstName: "Ursula", FamilyName: "Le Guin"}
	assert.Equal(t, "Le Guin, Ursula", a.Name())
}

func TestURL(t *testing.T) {
	id := uuid.MustParse("6f1c1d2e-3a4b-4c5d-8e6f-7a8b9c0d1e2f")
	assert.Equal(t, "/catalog/author/6f1c1d2e-3a4b-4c5d-8e6f-7a8b9c0d1e2f", Author{ID: id}.URL())
}

func TestLifespan(t *testing.T) {
	tests := []struct {
		name      string
		author    Author
		wantYears int
		wantOK    bool
	}{
		{"both dates", Author{DateOfBirth: date(1900, 1, 1), DateOfDeath: date(1980, 6, 15)}, 80, true},
		{"alive", Author{DateOfBirth: date(1900, 1, 1)}, 0, false},
		{"death only", Author{DateOfDeath: date(1980, 6, 15)}, 0, false},
		{"no dates", Author{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, ok := tt.author.Lifespan()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantYears, years)
		})
	}
}

func TestLifespanFormatted(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{"both dates", Author{DateOfBirth: date(1900, 1, 1), DateOfDeath: date(1980, 6, 15)}, "Jan 1, 1900 – Jun 15, 1980"},
		{"birth only", Author{DateOfBirth: date(1900, 1, 1)}, "Jan 1, 1900"},
		{"death only", Author{DateOfDeath: date(1980, 6, 15)}, ""},
		{"no dates", Author{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.author.LifespanFormatted())
		})
	}
}

func TestFormattedDates_UseUTC(t *testing.T) {
	// Midnight UTC is still the previous day west of Greenwich.
	birth := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).In(time.FixedZone("PST", -8*3600))
	a := Author{DateOfBirth: &birth}

	assert.Equal(t, "Jan 1, 1900", a.DateOfBirthFormatted())
	assert.Equal(t, "", a.DateOfDeathFormatted())
}

func TestValidate(t *testing.T) {
	valid := Author{FirstName: "Ursula", FamilyName: "LeGuin", DateOfBirth: date(1929, 10, 21), DateOfDeath: date(2018, 1, 22)}
	require.NoError(t, valid.Validate())

	missing := Author{FamilyName: "LeGuin"}
	assert.Error(t, missing.Validate())

	reversed := valid
	reversed.DateOfDeath = date(1920, 1, 1)
	assert.Error(t, reversed.Validate())
}

func TestAuthorForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    AuthorForm
		wantErr map[string]string
	}{
		{
			name: "valid without dates",
			form: AuthorForm{FirstName: "Ursula", FamilyName: "LeGuin"},
		},
		{
			name: "valid with dates",
			form: AuthorForm{FirstName: "Ursula", FamilyName: "LeGuin", DateOfBirth: "1929-10-21", DateOfDeath: "2018-01-22"},
		},
		{
			name:    "missing names",
			form:    AuthorForm{},
			wantErr: map[string]string{"first_name": "First name must be specified.", "family_name": "Family name must be specified."},
		},
		{
			name:    "non alphanumeric",
			form:    AuthorForm{FirstName: "Ursula K.", FamilyName: "LeGuin"},
			wantErr: map[string]string{"first_name": "First name has non-alphanumeric characters."},
		},
		{
			name:    "bad date",
			form:    AuthorForm{FirstName: "Ursula", FamilyName: "LeGuin", DateOfBirth: "21/10/1929"},
			wantErr: map[string]string{"date_of_birth": "Invalid date of birth"},
		},
		{
			name:    "death before birth",
			form:    AuthorForm{FirstName: "Ursula", FamilyName: "LeGuin", DateOfBirth: "1929-10-21", DateOfDeath: "1920-01-01"},
			wantErr: map[string]string{"date_of_death": "Date of death must not be before date of birth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for field, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), field+": "+msg)
			}
		})
	}
}

func TestAuthorForm_ToEntityAndBack(t *testing.T) {
	f := AuthorForm{ID: uuid.New(), FirstName: "Ursula", FamilyName: "LeGuin", DateOfBirth: "1929-10-21"}

	a, err := f.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, "Oct 21, 1929", a.DateOfBirthFormatted())
	assert.Nil(t, a.DateOfDeath)
	assert.Equal(t, f, FormFromAuthor(a))
}

func TestToResponse(t *testing.T) {
	a := Author{FirstName: "Ursula", FamilyName: "LeGuin", DateOfBirth: date(1929, 10, 21)}

	resp := a.ToResponse()
	assert.Equal(t, "LeGuin, Ursula", resp.Name)
	assert.Nil(t, resp.Lifespan)
	require.NotNil(t, resp.DateOfBirth)
	assert.Equal(t, "1929-10-21", *resp.DateOfBirth)
	assert.Equal(t, "Oct 21, 1929", resp.LifespanFormatted)
}
