package roster

import (
	"slices"
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
)

// ExitWord ends an interactive search when entered on its own.
const ExitWord = "exit"

// IsExit reports whether line is ExitWord, ignoring case and surrounding space.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), ExitWord)
}

// Search is an incremental search session over a fixed list of contacts.
//
// Input only accumulates: there is no way to delete characters, so a typo
// can only be fixed by starting a new session. Every call to Results filters
// the full original list, not the previous matches.
type Search struct {
	contacts []contact.Record
	query    strings.Builder
}

// NewSearch starts a session over a copy of contacts.
func NewSearch(contacts []contact.Record) *Search {
	return &Search{contacts: slices.Clone(contacts)}
}

// Append adds text to the accumulated query.
func (s *Search) Append(text string) {
	s.query.WriteString(text)
}

// Query returns the accumulated query.
func (s *Search) Query() string {
	return s.query.String()
}

// Results filters the original list by the accumulated query.
func (s *Search) Results() []contact.Record {
	return Filter(s.query.String(), s.contacts)
}

// Len returns the number of contacts the session searches.
func (s *Search) Len() int {
	return len(s.contacts)
}
