package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contactbook"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/format"
	"github.com/smileynet/contactbook/internal/roster"
	"github.com/smileynet/contactbook/internal/seed"
	"github.com/smileynet/contactbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Book    string `help:"Contact book file to load instead of the configured one." type:"path"`
	Verbose bool   `help:"Enable debug logging on stderr." short:"v"`
}

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	List    ListCmd          `cmd:"" help:"List contacts in sorted order."`
	Search  SearchCmd        `cmd:"" help:"Search contacts by name interactively."`
	Add     AddCmd           `cmd:"" help:"Build one contact from flags and print it."`
}

// errNoRecord indicates the builder produced no contact.
var errNoRecord = errors.New("no contact built: name is empty")

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads layered config from user and project paths with env
// overrides, then applies global flags.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.Book != "" {
		cfg.Book.Path = g.Book
	}
	return cfg, nil
}

// loadBook builds the records of the configured contact book. An explicit
// path is read from disk; otherwise the local books directory is checked
// before the embedded books.
func loadBook(cfg *config.Config, logger *slog.Logger) ([]contact.Record, error) {
	var res seed.Result
	var err error
	if cfg.Book.Path != "" {
		res, err = seed.Load(os.DirFS(filepath.Dir(cfg.Book.Path)), filepath.Base(cfg.Book.Path), logger)
	} else {
		shelf := contactbook.NewShelf(cfg.Book.LocalDir)
		if where, lerr := shelf.Locate(cfg.Book.Name); lerr == nil {
			logger.Debug("loading book", slog.String("name", cfg.Book.Name), slog.String("from", where))
		}
		res, err = seed.Load(shelf, cfg.Book.Name, logger)
	}
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// newFormatter resolves a formatter from the built-in registry.
func newFormatter(name string) (format.Formatter, error) {
	reg := format.NewRegistry()
	format.RegisterBuiltins(reg)
	return reg.New(name)
}

// setup loads and validates config, creates the logger, and loads the book.
func setup(g *Globals) (*config.Config, *slog.Logger, []contact.Record, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(os.Stderr, g.Verbose)
	records, err := loadBook(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, records, nil
}

// --- List command ---

// ListCmd prints the contact book sorted by a field.
type ListCmd struct {
	SortField string `help:"Field to sort by (username, email)." name:"sort-field"`
	Order     string `help:"Sort direction (ascending, descending)."`
	Format    string `help:"Output format (text, json, yaml)." short:"f"`
}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	cfg, logger, records, err := setup(g)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	// Apply CLI flag overrides.
	if l.SortField != "" {
		cfg.Sort.Field = l.SortField
	}
	if l.Order != "" {
		cfg.Sort.Order = l.Order
	}
	if l.Format != "" {
		cfg.Output.Format = l.Format
	}

	return l.run(os.Stdout, logger, cfg, records)
}

// run sorts and prints records, enabling testable wiring.
func (l *ListCmd) run(w io.Writer, logger *slog.Logger, cfg *config.Config, records []contact.Record) error {
	f, err := newFormatter(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if _, ok := roster.ParseField(cfg.Sort.Field); !ok {
		logger.Warn("unrecognised sort field; keeping book order", slog.String("field", cfg.Sort.Field))
	} else if _, ok := roster.ParseDirection(cfg.Sort.Order); !ok {
		logger.Warn("unrecognised sort order; keeping book order", slog.String("order", cfg.Sort.Order))
	}
	sorted := roster.SortContacts(cfg.Sort.Field, cfg.Sort.Order, records)

	if err := f.Format(w, sorted); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

// --- Search command ---

// SearchCmd opens an incremental name search over the contact book.
type SearchCmd struct {
	Query string `arg:"" optional:"" help:"Initial search text."`
	NoTUI bool   `help:"Force line-oriented search even if stdout is a TTY." default:"false"`
}

// Run executes the search command.
func (s *SearchCmd) Run(g *Globals) error {
	cfg, _, records, err := setup(g)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	searcher := tui.NewSearcher(tui.SearcherOptions{
		Reader:       os.Stdin,
		Writer:       os.Stdout,
		ForcePlain:   s.NoTUI || cfg.Search.Plain,
		Contacts:     records,
		InitialQuery: s.Query,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := searcher.Run(ctx); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

// --- Add command ---

// AddCmd runs the contact builder once and prints the result. Nothing is saved.
type AddCmd struct {
	FirstName   string `help:"First name." name:"first-name"`
	LastName    string `help:"Last name, appended to the first name." name:"last-name"`
	Email       string `help:"Email address; dropped if invalid."`
	CountryCode string `help:"Phone country code, e.g. +91." name:"country-code"`
	Phone       string `help:"Phone number; dropped if invalid with the country code."`
	Category    string `help:"Category (family, friends, business); anything else is other."`
	Format      string `help:"Output format (text, json, yaml)." short:"f"`
}

// Run executes the add command.
func (a *AddCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if a.Format != "" {
		cfg.Output.Format = a.Format
	}
	return a.run(os.Stdout, newLogger(os.Stderr, g.Verbose), cfg.Output.Format)
}

// run builds and prints the contact, enabling testable wiring.
func (a *AddCmd) run(w io.Writer, logger *slog.Logger, formatName string) error {
	f, err := newFormatter(formatName)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	b := contact.NewBuilder().
		SetUserName(contact.UserName{First: a.FirstName, Last: a.LastName}).
		SetContactCategory(a.Category)
	if a.Email != "" {
		b.SetEmail(a.Email)
	}
	if a.CountryCode != "" || a.Phone != "" {
		b.SetPhoneNumber(a.CountryCode, a.Phone)
	}

	r, ok := b.Build()
	if !ok {
		return fmt.Errorf("add: %w", errNoRecord)
	}
	if _, ok := r.LookupEmail(); !ok && a.Email != "" {
		logger.Warn("email rejected", slog.String("email", a.Email))
	}
	if _, ok := r.LookupPhoneNumber(); !ok && a.Phone != "" {
		logger.Warn("phone number rejected", slog.String("phone", a.CountryCode+a.Phone))
	}

	if err := f.Format(w, []contact.Record{r}); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}

// Exit codes.
const (
	exitSuccess     = 0
	exitNoRecord    = 1 // nothing built: empty name or a book without contacts
	exitSetup       = 2
	exitInterrupted = 130
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errNoRecord) || errors.Is(err, seed.ErrNoContacts) {
		return exitNoRecord
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("An in-memory contact book with validated entries, sorting, and incremental search."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
