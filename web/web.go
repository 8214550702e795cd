// Package web holds the server-rendered views. Every page is a named
// template ("genre_list", "author_form", ...) sharing a header and footer.
package web

import (
	"embed"
	"html/template"

	"catalog-backend/internal/shared/form"
)

//go:embed templates/*.tmpl
var files embed.FS

// Funcs are available to every view. Stored names are HTML-escaped at
// input time, so plain decodes them before the template escapes again.
var Funcs = template.FuncMap{
	"plain": form.Unescape,
}

// Templates parses every embedded view.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.tmpl")
}

// MustTemplates is Templates for process start-up and tests.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
