package contactbook

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestBooks_ShipsDefaultBook(t *testing.T) {
	data, err := fs.ReadFile(Books, DefaultBook)
	if err != nil {
		t.Fatalf("reading shipped %s: %v", DefaultBook, err)
	}
	if len(data) == 0 {
		t.Errorf("shipped %s is empty", DefaultBook)
	}
}

func TestBooks_RejectsInvalidPath(t *testing.T) {
	for _, name := range []string{"../books/default.yaml", "/default.yaml"} {
		if _, err := Books.Open(name); !errors.Is(err, fs.ErrInvalid) {
			t.Errorf("Open(%q) error = %v, want fs.ErrInvalid", name, err)
		}
	}
}

func writeBook(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestShelf(t *testing.T) {
	shipped := fstest.MapFS{
		"family.yaml": &fstest.MapFile{Data: []byte("shipped-family")},
		"work.yaml":   &fstest.MapFile{Data: []byte("shipped-work")},
	}

	tests := []struct {
		name       string
		local      map[string]string
		noDir      bool
		book       string
		wantData   string
		wantLocal  bool
		wantErrNot bool
	}{
		{
			name:     "shipped book when local dir lacks it",
			book:     "work.yaml",
			wantData: "shipped-work",
		},
		{
			name:      "local book shadows shipped",
			local:     map[string]string{"family.yaml": "local-family"},
			book:      "family.yaml",
			wantData:  "local-family",
			wantLocal: true,
		},
		{
			name:      "local-only book",
			local:     map[string]string{"club.yaml": "local-club"},
			book:      "club.yaml",
			wantData:  "local-club",
			wantLocal: true,
		},
		{
			name:     "empty dir uses shipped only",
			noDir:    true,
			book:     "family.yaml",
			wantData: "shipped-family",
		},
		{
			name:       "missing everywhere",
			book:       "missing.yaml",
			wantErrNot: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a shelf over a local dir and the shipped books
			dir := t.TempDir()
			for name, data := range tt.local {
				writeBook(t, dir, name, data)
			}
			s := Shelf{Dir: dir, Shipped: shipped}
			if tt.noDir {
				s.Dir = ""
			}

			// When: the book is read and located
			data, err := fs.ReadFile(s, tt.book)
			where, locErr := s.Locate(tt.book)

			// Then: content and origin match the expected source
			if tt.wantErrNot {
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
				}
				if !errors.Is(locErr, fs.ErrNotExist) {
					t.Errorf("Locate() error = %v, want fs.ErrNotExist", locErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(data) != tt.wantData {
				t.Errorf("ReadFile() = %q, want %q", data, tt.wantData)
			}
			if locErr != nil {
				t.Fatalf("Locate() error = %v", locErr)
			}
			want := "embedded:" + tt.book
			if tt.wantLocal {
				want = filepath.Join(dir, tt.book)
			}
			if where != want {
				t.Errorf("Locate() = %q, want %q", where, want)
			}
		})
	}
}

func TestShelf_LocalReadErrorIsNotMasked(t *testing.T) {
	// Given: a local entry with the book's name that cannot be read as a file
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "family.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	s := Shelf{Dir: dir, Shipped: fstest.MapFS{
		"family.yaml": &fstest.MapFile{Data: []byte("shipped-family")},
	}}

	// When: the book is read
	_, err := fs.ReadFile(s, "family.yaml")

	// Then: the local failure surfaces instead of the shipped copy
	if err == nil {
		t.Fatal("expected error reading a directory as a book")
	}
}

func TestShelf_RejectsInvalidPath(t *testing.T) {
	s := NewShelf(t.TempDir())
	for _, name := range []string{"../escape", "/absolute"} {
		if _, err := s.Open(name); err == nil {
			t.Errorf("Open(%q) should return error", name)
		}
		if _, err := s.Locate(name); err == nil {
			t.Errorf("Locate(%q) should return error", name)
		}
	}
}
