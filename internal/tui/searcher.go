// Package tui provides the interactive contact search, as a Bubble Tea
// screen on a terminal or a line-oriented loop otherwise.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/format"
	"github.com/smileynet/contactbook/internal/roster"
)

// Searcher runs an interactive search session until the user exits.
type Searcher interface {
	Run(ctx context.Context) error
}

// SearcherOptions configures searcher creation.
type SearcherOptions struct {
	Reader       io.Reader        // Input source (default: os.Stdin).
	Writer       io.Writer        // Output destination (default: os.Stdout).
	ForcePlain   bool             // Force the line-oriented searcher even if TTY.
	Contacts     []contact.Record // Contacts to search.
	InitialQuery string           // Query to start from.
}

// NewSearcher returns a TUI searcher when the writer is a TTY, or a plain
// line-oriented searcher otherwise. ForcePlain overrides TTY detection.
func NewSearcher(opts SearcherOptions) Searcher {
	if opts.Reader == nil {
		opts.Reader = os.Stdin
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return NewPlainSearcher(opts.Reader, opts.Writer, opts.Contacts, opts.InitialQuery)
	}

	return &TUISearcher{
		in:       opts.Reader,
		out:      opts.Writer,
		contacts: opts.Contacts,
		query:    opts.InitialQuery,
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainSearcher reads one line at a time, appends it to the accumulated
// query, and prints the matches. The line "exit" ends the session.
type PlainSearcher struct {
	in     io.Reader
	out    io.Writer
	search *roster.Search
}

// NewPlainSearcher creates a PlainSearcher over contacts, starting from query.
func NewPlainSearcher(in io.Reader, out io.Writer, contacts []contact.Record, query string) *PlainSearcher {
	s := roster.NewSearch(contacts)
	s.Append(query)
	return &PlainSearcher{in: in, out: out, search: s}
}

// Run loops until "exit", end of input, or context cancellation.
// Cancellation returns immediately even while a read is pending.
func (p *PlainSearcher) Run(ctx context.Context) error {
	if p.search.Query() != "" {
		if err := p.render(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go scanLines(ctx, p.in, lines, readErr)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprint(p.out, "search> ")
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(p.out)
			return ctx.Err()
		case err := <-readErr:
			_, _ = fmt.Fprintln(p.out)
			return err
		case line := <-lines:
			if roster.IsExit(line) {
				return nil
			}
			p.search.Append(line)
			if err := p.render(); err != nil {
				return err
			}
		}
	}
}

// scanLines sends each line of in on lines, then the scanner's final error
// on done. It stops sending once ctx is cancelled. A read blocked on in is
// abandoned, not interrupted.
func scanLines(ctx context.Context, in io.Reader, lines chan<- string, done chan<- error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	done <- scanner.Err()
}

// render prints the matches for the current query.
func (p *PlainSearcher) render() error {
	results := p.search.Results()
	_, _ = fmt.Fprintf(p.out, "%d match(es) for %q\n", len(results), p.search.Query())
	if len(results) == 0 {
		return nil
	}
	return format.Text{}.Format(p.out, results)
}

// TUISearcher runs the search Model as a full-screen Bubble Tea program.
// Falls back to PlainSearcher if the program fails to start.
type TUISearcher struct {
	in       io.Reader
	out      io.Writer
	contacts []contact.Record
	query    string
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (t *TUISearcher) Run(ctx context.Context) error {
	model := NewModel(t.contacts, WithInitialQuery(t.query))
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err == nil {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	plain := NewPlainSearcher(t.in, t.out, t.contacts, t.query)
	return plain.Run(ctx)
}
