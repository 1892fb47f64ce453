// Package format renders contact records for output.
package format

import (
	"io"

	"github.com/smileynet/contactbook/internal/contact"
)

// Formatter writes a list of records to w.
type Formatter interface {
	Format(w io.Writer, records []contact.Record) error
}

// View is the serialized form of a record. Absent fields carry the record's
// sentinel strings so consumers see the same values as the getters.
type View struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	Email            string `json:"email" yaml:"email"`
	PhoneNumber      string `json:"phone_number" yaml:"phone_number"`
	PrimaryAddress   string `json:"primary_address" yaml:"primary_address"`
	SecondaryAddress string `json:"secondary_address" yaml:"secondary_address"`
	DateOfBirth      string `json:"date_of_birth" yaml:"date_of_birth"`
	Job              string `json:"job" yaml:"job"`
	Category         string `json:"category" yaml:"category"`
}

// NewView converts a record to its serialized form.
func NewView(r contact.Record) View {
	return View{
		ID:               r.ID(),
		Name:             r.DisplayName(),
		Email:            r.Email(),
		PhoneNumber:      r.PhoneNumber(),
		PrimaryAddress:   r.PrimaryAddress(),
		SecondaryAddress: r.SecondaryAddress(),
		DateOfBirth:      r.DateOfBirth(),
		Job:              r.JobDescription(),
		Category:         string(r.Category()),
	}
}

func views(records []contact.Record) []View {
	out := make([]View, len(records))
	for i, r := range records {
		out[i] = NewView(r)
	}
	return out
}
