package tui

import (
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/format"
)

// detailCache stores rendered contact details keyed by record ID.
// It is confined to the Bubble Tea update loop.
type detailCache struct {
	entries map[string]string
}

func newDetailCache() *detailCache {
	return &detailCache{entries: make(map[string]string)}
}

// render returns the cached detail view for r, rendering it on a miss.
func (c *detailCache) render(r contact.Record) string {
	if s, ok := c.entries[r.ID()]; ok {
		return s
	}
	s := renderDetail(r)
	c.entries[r.ID()] = s
	return s
}

func renderDetail(r contact.Record) string {
	rows := []struct{ label, value string }{
		{"Name", r.DisplayName()},
		{"Category", format.CategoryBadge(r.Category())},
		{"Email", r.Email()},
		{"Phone", r.PhoneNumber()},
		{"Address", r.PrimaryAddress()},
		{"Alt addr", r.SecondaryAddress()},
		{"Born", r.DateOfBirth()},
		{"Job", r.JobDescription()},
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(row.value)
	}
	return b.String()
}
