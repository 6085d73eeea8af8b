package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageTemplate  = "page.html"
	tableTemplate = "reviews_table"
)

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Templates returns the parsed page and table templates, ready for
// gin's SetHTMLTemplate
func Templates() *template.Template {
	return templates
}
