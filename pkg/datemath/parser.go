package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ErrUnrecognized is returned when an expression matches no known date pattern.
// Callers should treat it as "no due date provided", not as a hard failure.
var ErrUnrecognized = errors.New("datemath: unrecognized date expression")

// isoLayouts are tried first; a time component is discarded for due dates.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// partialLayouts carry no year. They parse against Go's sentinel year and the
// year is then overwritten with the current one.
var partialLayouts = []string{
	"01-02",
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
}

// Parser converts relative or partial date expressions to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves expr to an absolute calendar date (midnight in the parser's
// timezone), anchored at now.
//
// Partial dates with no year ("02-20", "Feb 20") always take now's year. This
// is a deliberate policy for spoken dates, not a parsing accident: a date
// mentioned in December that already passed this year does NOT roll over to
// next year.
func (p *Parser) Parse(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, ErrUnrecognized
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, expr); err == nil {
			// Keep the wall date as written; only the time component is dropped.
			return p.date(t.Year(), t.Month(), t.Day()), nil
		}
	}

	// Month names are case-sensitive in time.Parse.
	titled := titleWords(expr)
	for _, layout := range partialLayouts {
		if t, err := time.Parse(layout, titled); err == nil {
			return p.date(now.In(p.location).Year(), t.Month(), t.Day()), nil
		}
	}

	if offset, ok := Offset(strings.ToLower(expr)); ok {
		target := now.In(p.location).AddDate(0, 0, offset)
		return p.date(target.Year(), target.Month(), target.Day()), nil
	}

	return time.Time{}, ErrUnrecognized
}

func (p *Parser) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, p.location)
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
