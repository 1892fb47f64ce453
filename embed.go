// Package contactbook ships the default contact books and resolves book
// names against a local directory before the shipped copies.
package contactbook

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed books/*.yaml
var shipped embed.FS

// DefaultBook is the file name of the contact book loaded when none is given.
const DefaultBook = "default.yaml"

// Books holds the shipped contact books, addressed by file name.
var Books fs.FS = bookDir{shipped}

// bookDir addresses the embedded books/ directory by bare file name.
type bookDir struct{ fsys embed.FS }

func (d bookDir) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return d.fsys.Open(path.Join("books", name))
}

// Shelf resolves contact book names. A book in Dir shadows the shipped
// book of the same name. An empty Dir uses the shipped books only.
type Shelf struct {
	Dir     string
	Shipped fs.FS
}

// NewShelf returns a Shelf over dir and the shipped Books.
func NewShelf(dir string) Shelf {
	return Shelf{Dir: dir, Shipped: Books}
}

// Open implements fs.FS. Errors reading a local book other than its
// absence are returned rather than masked by the shipped copy.
func (s Shelf) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if s.Dir != "" {
		f, err := os.DirFS(s.Dir).Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return s.Shipped.Open(name)
}

// Locate reports where name would be read from: its path under Dir, or
// "embedded:" followed by name for a shipped book.
func (s Shelf) Locate(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: "locate", Path: name, Err: fs.ErrInvalid}
	}
	if s.Dir != "" {
		if _, err := fs.Stat(os.DirFS(s.Dir), name); err == nil {
			return filepath.Join(s.Dir, filepath.FromSlash(name)), nil
		}
	}
	if _, err := fs.Stat(s.Shipped, name); err != nil {
		return "", err
	}
	return "embedded:" + name, nil
}
