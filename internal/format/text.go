package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contactbook/internal/contact"
)

// Category badge colors.
var categoryColors = map[contact.Category]lipgloss.AdaptiveColor{
	contact.CategoryFamily:   {Light: "1", Dark: "9"},
	contact.CategoryFriends:  {Light: "2", Dark: "10"},
	contact.CategoryBusiness: {Light: "4", Dark: "12"},
	contact.CategoryOther:    {Light: "240", Dark: "245"},
}

// CategoryBadge returns a styled "[category]" label.
func CategoryBadge(c contact.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = categoryColors[contact.CategoryOther]
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + string(c) + "]")
}

// Text writes one aligned line per record.
type Text struct{}

func (Text) Format(w io.Writer, records []contact.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No contacts")
		return err
	}

	nameWidth, emailWidth := 0, 0
	for _, r := range records {
		nameWidth = max(nameWidth, lipgloss.Width(r.DisplayName()))
		emailWidth = max(emailWidth, lipgloss.Width(r.Email()))
	}
	nameCol := lipgloss.NewStyle().Bold(true).Width(nameWidth)
	emailCol := lipgloss.NewStyle().Width(emailWidth)

	for _, r := range records {
		_, err := fmt.Fprintf(w, "%s  %s  %s  %s\n",
			nameCol.Render(r.DisplayName()),
			emailCol.Render(r.Email()),
			r.PhoneNumber(),
			CategoryBadge(r.Category()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
