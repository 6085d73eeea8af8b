package view

import (
	"strings"
	"time"
)

// NotAvailable is shown for every missing value
const NotAvailable = "N/A"

// DisplayLayout renders like en-US toLocaleString with year, short month,
// day, 2-digit h:m:s and a short zone name: "Oct 17, 2026, 02:05:09 PM UTC".
const DisplayLayout = "Jan 2, 2006, 03:04:05 PM MST"

// DateFormatter turns a raw created_at value into display text.
// Implementations must not panic on any input.
type DateFormatter interface {
	Format(raw string) string
}

// DateFormatterFunc adapts a plain function to DateFormatter
type DateFormatterFunc func(raw string) string

func (f DateFormatterFunc) Format(raw string) string {
	return f(raw)
}

// Fallback decides what an unparseable but non-empty value turns into
type Fallback int

const (
	// FallbackRaw shows the value unchanged
	FallbackRaw Fallback = iota
	// FallbackNA shows NotAvailable
	FallbackNA
)

// LocaleFormatter formats timestamps in Location (time.Local when nil)
type LocaleFormatter struct {
	Location *time.Location
	Fallback Fallback
}

// NewPageFormatter is the page level variant: unparseable input is echoed back.
func NewPageFormatter(loc *time.Location) *LocaleFormatter {
	return &LocaleFormatter{Location: loc, Fallback: FallbackRaw}
}

// NewTableFormatter is the table's built-in variant: unparseable input becomes N/A.
func NewTableFormatter(loc *time.Location) *LocaleFormatter {
	return &LocaleFormatter{Location: loc, Fallback: FallbackNA}
}

// inputLayouts are tried in order. Layouts without a zone are read in the
// display location.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (f *LocaleFormatter) Format(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return NotAvailable
	}

	t, ok := f.parse(strings.TrimSpace(raw))
	if !ok {
		if f.Fallback == FallbackNA {
			return NotAvailable
		}
		return raw
	}
	return t.In(f.location()).Format(DisplayLayout)
}

func (f *LocaleFormatter) parse(raw string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, raw, f.location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (f *LocaleFormatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}
