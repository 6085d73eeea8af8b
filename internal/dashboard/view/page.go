package view

import (
	"bytes"
	"io"

	"whatsapp-reviews/internal/dashboard/model"
)

const (
	PageTitle = "WhatsApp Product Reviews"

	// reloadSeconds is how often a loading page polls for the result
	reloadSeconds = 2
)

// Body is what fills the page under the header and error panel
type Body string

const (
	BodyLoading Body = "loading"
	BodyEmpty   Body = "empty"
	BodyTable   Body = "table"
	// BodyNone leaves the error panel alone on the page
	BodyNone Body = "none"
)

// SelectBody applies the page rules: a loading placeholder only while
// nothing is on screen yet, the empty message once a fetch settled with no
// reviews and no error, the table otherwise. The error panel itself is
// rendered independently of the body.
func SelectBody(reviewCount int, loading, failed bool) Body {
	switch {
	case reviewCount == 0 && loading:
		return BodyLoading
	case reviewCount == 0 && failed:
		return BodyNone
	case reviewCount == 0:
		return BodyEmpty
	default:
		return BodyTable
	}
}

// Page is the view model behind page.html
type Page struct {
	Title         string
	Loading       bool
	Error         string
	Body          Body
	Table         Table
	ButtonLabel   string
	AutoReload    bool
	ReloadSeconds int
}

// NewPage derives everything the template needs from the three state fields
func NewPage(reviews []model.Review, loading bool, errMsg string, formatter DateFormatter) Page {
	label := "Refresh"
	if loading {
		label = "Loading..."
	}

	return Page{
		Title:         PageTitle,
		Loading:       loading,
		Error:         errMsg,
		Body:          SelectBody(len(reviews), loading, errMsg != ""),
		Table:         BuildTable(reviews, formatter),
		ButtonLabel:   label,
		AutoReload:    loading,
		ReloadSeconds: reloadSeconds,
	}
}

func RenderPage(w io.Writer, page Page) error {
	return templates.ExecuteTemplate(w, PageTemplate, page)
}

func RenderPageString(page Page) (string, error) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
