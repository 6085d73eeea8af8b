package view

import (
	"bytes"
	"io"
	"strconv"

	"whatsapp-reviews/internal/dashboard/model"
)

// Columns are the fixed table headers, in display order
var Columns = []string{"ID", "Contact Number", "User Name", "Product Name", "Review", "Created At"}

// Row is one review ready for display; no field is ever empty
type Row struct {
	Key           string
	ID            string
	ContactNumber string
	UserName      string
	ProductName   string
	ProductReview string
	CreatedAt     string
}

type Table struct {
	Columns []string
	Rows    []Row
	Total   int
}

// Empty tables render the standalone "no data" message instead of a table
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// BuildTable projects reviews into display rows. A nil formatter selects
// the table's built-in formatter.
func BuildTable(reviews []model.Review, formatter DateFormatter) Table {
	if formatter == nil {
		formatter = NewTableFormatter(nil)
	}

	rows := make([]Row, 0, len(reviews))
	for i, r := range reviews {
		key := r.ID
		if key == "" {
			key = "row-" + strconv.Itoa(i)
		}

		rows = append(rows, Row{
			Key:           key,
			ID:            orNA(r.ID),
			ContactNumber: orNA(r.ContactNumber),
			UserName:      orNA(r.UserName),
			ProductName:   orNA(r.ProductName),
			ProductReview: orNA(r.ProductReview),
			CreatedAt:     formatSafely(formatter, r.CreatedAt),
		})
	}

	return Table{
		Columns: Columns,
		Rows:    rows,
		Total:   len(rows),
	}
}

// RenderTable writes the table fragment for reviews to w
func RenderTable(w io.Writer, reviews []model.Review, formatter DateFormatter) error {
	return templates.ExecuteTemplate(w, tableTemplate, BuildTable(reviews, formatter))
}

// RenderTableString is RenderTable into a string
func RenderTableString(reviews []model.Review, formatter DateFormatter) (string, error) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, reviews, formatter); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// formatSafely shields the row from an injected formatter that panics or
// returns nothing
func formatSafely(f DateFormatter, raw string) (out string) {
	defer func() {
		if recover() != nil {
			out = orNA(raw)
		}
	}()
	return orNA(f.Format(raw))
}
