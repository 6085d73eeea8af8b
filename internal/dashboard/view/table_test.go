package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whatsapp-reviews/internal/dashboard/model"
)

func fullReview(id string) model.Review {
	return model.Review{
		ID:            id,
		ContactNumber: "+15550001111",
		UserName:      "Alice",
		ProductName:   "Widget X",
		ProductReview: "This product is great!",
		CreatedAt:     "2026-10-17T14:05:09Z",
	}
}

func TestBuildTableFallsBackPerField(t *testing.T) {
	fields := []func(r *model.Review){
		func(r *model.Review) { r.ID = "" },
		func(r *model.Review) { r.ContactNumber = "" },
		func(r *model.Review) { r.UserName = "" },
		func(r *model.Review) { r.ProductName = "" },
		func(r *model.Review) { r.ProductReview = "" },
		func(r *model.Review) { r.CreatedAt = "" },
	}

	// every subset of missing fields
	for mask := 0; mask < 1<<len(fields); mask++ {
		r := fullReview("7")
		for i, clear := range fields {
			if mask&(1<<i) != 0 {
				clear(&r)
			}
		}

		var table Table
		require.NotPanics(t, func() { table = BuildTable([]model.Review{r}, NewTableFormatter(time.UTC)) })
		row := table.Rows[0]

		cells := []string{row.ID, row.ContactNumber, row.UserName, row.ProductName, row.ProductReview, row.CreatedAt}
		for i, cell := range cells {
			if mask&(1<<i) != 0 {
				assert.Equal(t, NotAvailable, cell, "mask %b field %d", mask, i)
			} else {
				assert.NotEqual(t, NotAvailable, cell, "mask %b field %d", mask, i)
			}
		}
	}
}

func TestBuildTableKeyFallsBackToIndex(t *testing.T) {
	reviews := []model.Review{fullReview("9"), {}}

	table := BuildTable(reviews, nil)

	assert.Equal(t, "9", table.Rows[0].Key)
	assert.Equal(t, "row-1", table.Rows[1].Key)
	assert.Equal(t, NotAvailable, table.Rows[1].ID)
}

func TestBuildTableCountsRows(t *testing.T) {
	reviews := []model.Review{fullReview("1"), fullReview("2"), fullReview("3")}

	table := BuildTable(reviews, nil)
	assert.Equal(t, 3, table.Total)
	assert.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{table.Rows[0].Key, table.Rows[1].Key, table.Rows[2].Key})
}

func TestBuildTableDefaultFormatterReturnsNA(t *testing.T) {
	r := fullReview("1")
	r.CreatedAt = "not a date"

	table := BuildTable([]model.Review{r}, nil)
	assert.Equal(t, NotAvailable, table.Rows[0].CreatedAt)

	table = BuildTable([]model.Review{r}, NewPageFormatter(time.UTC))
	assert.Equal(t, "not a date", table.Rows[0].CreatedAt)
}

func TestBuildTableSurvivesPanickingFormatter(t *testing.T) {
	boom := DateFormatterFunc(func(string) string { panic("formatter bug") })

	table := BuildTable([]model.Review{fullReview("1")}, boom)
	assert.Equal(t, "2026-10-17T14:05:09Z", table.Rows[0].CreatedAt)
}

func TestRenderTableEmpty(t *testing.T) {
	for _, reviews := range [][]model.Review{nil, {}} {
		html, err := RenderTableString(reviews, nil)
		require.NoError(t, err)
		assert.Contains(t, html, "No reviews to display")
		assert.NotContains(t, html, "<table")
		assert.NotContains(t, html, "<tr")
	}
}

func TestRenderTable(t *testing.T) {
	reviews := []model.Review{fullReview("1"), {ID: "2"}}

	html, err := RenderTableString(reviews, NewPageFormatter(time.UTC))
	require.NoError(t, err)

	for _, col := range Columns {
		assert.Contains(t, html, "<th>"+col+"</th>")
	}
	assert.Equal(t, 2, strings.Count(html, "<tr data-key="))
	assert.Contains(t, html, `data-key="1"`)
	assert.Contains(t, html, "Oct 17, 2026, 02:05:09 PM UTC")
	assert.Contains(t, html, "Total reviews: 2")
	assert.Equal(t, 5, strings.Count(html, "<td>N/A</td>")+strings.Count(html, `<td class="review-text">N/A</td>`))
}

func TestRenderTableEscapesContent(t *testing.T) {
	r := fullReview("1")
	r.ProductReview = `<script>alert("x")</script>`

	html, err := RenderTableString([]model.Review{r}, nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
