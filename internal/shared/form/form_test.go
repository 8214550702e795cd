package form

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Fantasy  ", "Fantasy"},
		{"Sci/Fi", "Sci&#x2F;Fi"},
		{`<b>"Tom" & 'Jerry'</b>`, "&lt;b&gt;&quot;Tom&quot; &amp; &#x27;Jerry&#x27;&lt;&#x2F;b&gt;"},
		{"back\\tick`", "back&#x5C;tick&#96;"},
		{"   ", ""},
	}
	for _, tt := range tests {
		got := Sanitize(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, strings.TrimSpace(tt.in), Unescape(got))
	}
}

func TestItemize(t *testing.T) {
	err := validation.Errors{
		"zeta":  errors.New("z failed"),
		"alpha": errors.New("a failed"),
		"name":  errors.New("name failed"),
	}

	items, ierr := Itemize(err, "name")
	require.NoError(t, ierr)
	require.Len(t, items, 3)
	assert.Equal(t, FieldError{Param: "name", Msg: "name failed"}, items[0])
	assert.Equal(t, "alpha", items[1].Param)
	assert.Equal(t, "zeta", items[2].Param)
}

func TestItemize_PassesThroughOtherErrors(t *testing.T) {
	items, err := Itemize(nil)
	assert.NoError(t, err)
	assert.Nil(t, items)

	boom := errors.New("boom")
	_, err = Itemize(boom)
	assert.ErrorIs(t, err, boom)
}

type nameForm struct {
	Name string `form:"name" json:"name"`
}

func parseName(c *gin.Context) (nameForm, error) {
	f := nameForm{Name: Sanitize(c.PostForm("name"))}
	return f, validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("name required")),
	)
}

func TestStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got Result[nameForm]
	r := gin.New()
	r.POST("/", Stage(parseName, "name"), func(c *gin.Context) {
		got = From[nameForm](c)
		c.Status(http.StatusNoContent)
	})

	post := func(name string) {
		body := url.Values{"name": {name}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}

	post("  Horror ")
	assert.True(t, got.Valid())
	assert.Equal(t, "Horror", got.Value.Name)

	post("   ")
	assert.False(t, got.Valid())
	assert.Equal(t, []FieldError{{Param: "name", Msg: "name required"}}, got.Errors)
}
