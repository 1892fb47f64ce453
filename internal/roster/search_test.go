package roster

import (
	"slices"
	"testing"
)

func TestIsExit(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"exit", true},
		{"EXIT", true},
		{"  Exit\n", true},
		{"exit now", false},
		{"exi", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsExit(tt.line); got != tt.want {
			t.Errorf("IsExit(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSearch_AccumulatesInput(t *testing.T) {
	// Given: a session over three contacts
	s := NewSearch(records(t, "Gokuleyy1", "Sruthi2", "Jashwin3"))

	// When: keystrokes are appended one at a time
	s.Append("g")
	s.Append("o")
	s.Append("k")

	// Then: the query is the concatenation and matches one contact
	if s.Query() != "gok" {
		t.Errorf("Query() = %q, want %q", s.Query(), "gok")
	}
	if got := names(s.Results()); !slices.Equal(got, []string{"Gokuleyy1"}) {
		t.Errorf("Results() = %v, want [Gokuleyy1]", got)
	}
}

func TestSearch_LenIsUnaffectedByQuery(t *testing.T) {
	// Given: a session over three contacts
	s := NewSearch(records(t, "Gokuleyy1", "Sruthi2", "Jashwin3"))

	// When: the query narrows to one match, then to none
	s.Append("gok")
	one := s.Results()
	s.Append("x")
	none := s.Results()

	// Then: Len still counts the whole list
	if len(one) != 1 || len(none) != 0 {
		t.Fatalf("Results() sizes = %d, %d, want 1, 0", len(one), len(none))
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSearch_ResultsAreIndependentCopies(t *testing.T) {
	// Given: a session and one set of results
	s := NewSearch(records(t, "a", "b"))
	first := s.Results()

	// When: the caller overwrites the returned slice
	first[0] = mustRecord(t, "zzz", "")

	// Then: later results are unaffected
	if got := names(s.Results()); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("Results() = %v, want [b a]", got)
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	s := NewSearch(records(t, "a", "c", "b"))
	if got := names(s.Results()); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("Results() = %v, want [c b a]", got)
	}
}

func TestNewSearch_CopiesInput(t *testing.T) {
	in := records(t, "a", "b")
	s := NewSearch(in)

	in[0] = mustRecord(t, "zzz", "")

	if got := names(s.Results()); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("Results() = %v, want [b a]", got)
	}
}
