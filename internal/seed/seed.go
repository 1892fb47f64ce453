// Package seed loads a read-only contact book from YAML and builds its records.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/contactbook/internal/contact"
)

// ErrNoContacts indicates a book produced no records.
var ErrNoContacts = errors.New("seed: book has no contacts")

// Book is the on-disk shape of a contact book.
type Book struct {
	Contacts []Entry `yaml:"contacts"`
}

// Entry is one contact as written in a book. Every field is optional;
// entries with neither a first nor a last name are skipped.
type Entry struct {
	FirstName        string                  `yaml:"first_name"`
	LastName         string                  `yaml:"last_name"`
	Email            string                  `yaml:"email"`
	Phone            *Phone                  `yaml:"phone"`
	Category         string                  `yaml:"category"`
	PrimaryAddress   *contact.Address        `yaml:"primary_address"`
	SecondaryAddress *contact.Address        `yaml:"secondary_address"`
	DOB              *contact.DOB            `yaml:"dob"`
	Job              *contact.JobDescription `yaml:"job"`
}

// Phone is a phone number split into country code and number.
type Phone struct {
	CountryCode string `yaml:"country_code"`
	Number      string `yaml:"number"`
}

// Build runs the entry through a fresh contact.Builder.
func (e Entry) Build() (contact.Record, bool) {
	b := contact.NewBuilder().
		SetUserName(contact.UserName{First: e.FirstName, Last: e.LastName}).
		SetContactCategory(e.Category)
	if e.Email != "" {
		b.SetEmail(e.Email)
	}
	if e.Phone != nil {
		b.SetPhoneNumber(e.Phone.CountryCode, e.Phone.Number)
	}
	if e.PrimaryAddress != nil {
		b.SetPrimaryAddress(*e.PrimaryAddress)
	}
	if e.SecondaryAddress != nil {
		b.SetSecondaryAddress(*e.SecondaryAddress)
	}
	if e.DOB != nil {
		b.SetDateOfBirth(*e.DOB)
	}
	if e.Job != nil {
		b.SetJob(*e.Job)
	}
	return b.Build()
}

// Result holds the records built from a book.
type Result struct {
	Records []contact.Record
	Skipped []int // Indexes of entries that produced no record.
}

// Load reads and parses the book called name from fsys.
func Load(fsys fs.FS, name string, logger *slog.Logger) (Result, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Result{}, fmt.Errorf("seed: reading %s: %w", name, err)
	}
	res, err := Parse(data, logger)
	if err != nil {
		return res, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

// Parse decodes a book and builds a record for each entry. Unknown fields
// are rejected. Entries that produce no record are logged and skipped.
// A book that yields no records returns ErrNoContacts.
func Parse(data []byte, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var book Book
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&book); err != nil {
		// Empty and comment-only documents decode to EOF.
		if errors.Is(err, io.EOF) {
			return Result{}, ErrNoContacts
		}
		return Result{}, fmt.Errorf("seed: parsing: %w", err)
	}

	var res Result
	for i, e := range book.Contacts {
		r, ok := e.Build()
		if !ok {
			logger.Warn("skipping contact without a name", slog.Int("entry", i))
			res.Skipped = append(res.Skipped, i)
			continue
		}
		if _, ok := r.LookupEmail(); !ok && e.Email != "" {
			logger.Debug("email rejected", slog.String("contact", r.DisplayName()), slog.String("email", e.Email))
		}
		if _, ok := r.LookupPhoneNumber(); !ok && e.Phone != nil {
			logger.Debug("phone number rejected", slog.String("contact", r.DisplayName()))
		}
		res.Records = append(res.Records, r)
	}

	if len(res.Records) == 0 {
		return res, ErrNoContacts
	}
	logger.Debug("loaded contact book", slog.Int("records", len(res.Records)), slog.Int("skipped", len(res.Skipped)))
	return res, nil
}
