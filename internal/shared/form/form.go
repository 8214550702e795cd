// Package form splits request handling into a validation stage and a
// terminal handler. The stage binds, sanitizes and validates the submitted
// form, then stores a Result in the gin context; the terminal handler only
// branches on that Result.
package form

import (
	"errors"
	"html"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/shared/middleware"
)

const resultKey = "form.result"

// FieldError is one itemized validation message.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// Result carries the sanitized value and, when invalid, its errors.
type Result[T any] struct {
	Value  T
	Errors []FieldError
}

func (r Result[T]) Valid() bool { return len(r.Errors) == 0 }

// ParseFunc binds and validates a submission. A returned error that is not
// a validation.Errors is treated as an internal failure.
type ParseFunc[T any] func(c *gin.Context) (T, error)

// Stage wraps parse as a middleware that must precede the terminal handler.
// order lists field names in display order; unlisted fields follow sorted.
func Stage[T any](parse ParseFunc[T], order ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := parse(c)

		fieldErrors, err := Itemize(err, order...)
		if err != nil {
			middleware.Fail(c, http.StatusInternalServerError, err)
			return
		}

		c.Set(resultKey, Result[T]{Value: value, Errors: fieldErrors})
		c.Next()
	}
}

// From returns the Result stored by Stage. It panics if the route was wired
// without the stage, which is a programming error.
func From[T any](c *gin.Context) Result[T] {
	return c.MustGet(resultKey).(Result[T])
}

// Itemize flattens ozzo validation errors into an ordered list.
func Itemize(err error, order ...string) ([]FieldError, error) {
	if err == nil {
		return nil, nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	keys := make([]string, 0, len(verrs))
	for k := range verrs {
		keys = append(keys, k)
	}
	rank := make(map[string]int, len(order))
	for i, k := range order {
		rank[k] = i + 1
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank[keys[i]], rank[keys[j]]
		switch {
		case ri != 0 && rj != 0:
			return ri < rj
		case ri != 0:
			return true
		case rj != 0:
			return false
		}
		return keys[i] < keys[j]
	})

	out := make([]FieldError, 0, len(keys))
	for _, k := range keys {
		fe := verrs[k]
		var internal validation.InternalError
		if errors.As(fe, &internal) {
			return nil, internal
		}
		out = append(out, FieldError{Param: k, Msg: fe.Error()})
	}
	return out, nil
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML-significant characters with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape for display through an auto-escaping template.
func Unescape(s string) string {
	return html.UnescapeString(s)
}

// Sanitize trims surrounding whitespace and escapes the rest.
func Sanitize(s string) string {
	return Escape(strings.TrimSpace(s))
}
