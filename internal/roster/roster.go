// Package roster sorts and searches lists of contact records.
package roster

import (
	"slices"
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
)

// Field selects the record value a sort compares.
type Field string

const (
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
)

// ParseField matches text case-insensitively against the known fields.
func ParseField(text string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(text))) {
	case FieldUsername:
		return FieldUsername, true
	case FieldEmail:
		return FieldEmail, true
	default:
		return "", false
	}
}

// Direction is a sort order.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ParseDirection matches text case-insensitively against the known directions.
func ParseDirection(text string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(text))) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	default:
		return "", false
	}
}

// key returns the accessor for field. Absent emails compare by their sentinel.
func key(field Field) (func(contact.Record) string, bool) {
	switch field {
	case FieldUsername:
		return contact.Record.DisplayName, true
	case FieldEmail:
		return contact.Record.Email, true
	default:
		return nil, false
	}
}

// Sort returns a stably sorted copy of contacts. An unknown field or
// direction returns the copy in input order.
func Sort(field Field, dir Direction, contacts []contact.Record) []contact.Record {
	out := slices.Clone(contacts)
	get, ok := key(field)
	if !ok {
		return out
	}

	switch dir {
	case Ascending:
		slices.SortStableFunc(out, func(a, b contact.Record) int {
			return strings.Compare(get(a), get(b))
		})
	case Descending:
		slices.SortStableFunc(out, func(a, b contact.Record) int {
			return strings.Compare(get(b), get(a))
		})
	}
	return out
}

// SortContacts is Sort keyed by text, e.g. ("Username", "descending").
// Unrecognised field or direction text leaves the order unchanged.
func SortContacts(field, direction string, contacts []contact.Record) []contact.Record {
	f, ok := ParseField(field)
	if !ok {
		return slices.Clone(contacts)
	}
	d, ok := ParseDirection(direction)
	if !ok {
		return slices.Clone(contacts)
	}
	return Sort(f, d, contacts)
}

// Filter returns the contacts whose display name contains query, ignoring
// case, sorted descending by display name. An empty query matches everything.
func Filter(query string, contacts []contact.Record) []contact.Record {
	needle := strings.ToLower(query)
	var matches []contact.Record
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.DisplayName()), needle) {
			matches = append(matches, c)
		}
	}
	return Sort(FieldUsername, Descending, matches)
}
