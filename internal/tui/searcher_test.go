package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// --- isTTY ---

func TestIsTTY_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	if isTTY(&buf) {
		t.Error("non-*os.File writer should not be a TTY")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if isTTY(f) {
		t.Error("regular file should not be a TTY")
	}
}

// --- NewSearcher ---

func TestNewSearcher_NonTTYIsPlain(t *testing.T) {
	s := NewSearcher(SearcherOptions{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}})
	if _, ok := s.(*PlainSearcher); !ok {
		t.Errorf("NewSearcher() = %T, want *PlainSearcher", s)
	}
}

func TestNewSearcher_ForcePlain(t *testing.T) {
	s := NewSearcher(SearcherOptions{Writer: os.Stdout, ForcePlain: true})
	if _, ok := s.(*PlainSearcher); !ok {
		t.Errorf("NewSearcher(ForcePlain) = %T, want *PlainSearcher", s)
	}
}

// --- PlainSearcher ---

func TestPlainSearcher_AccumulatesLinesUntilExit(t *testing.T) {
	// Given: input that types "g", then "ok", then exits
	in := strings.NewReader("g\nok\nexit\nsru\n")
	var out bytes.Buffer
	s := NewPlainSearcher(in, &out, sampleContacts(t), "")

	// When: running the session
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Then: each line extends the query and input after exit is ignored
	got := ansi.ReplaceAllString(out.String(), "")
	for _, want := range []string{
		`1 match(es) for "g"`,
		`1 match(es) for "gok"`,
		"Gokuleyy1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "sru") {
		t.Errorf("input after exit should not be processed:\n%s", got)
	}
}

func TestPlainSearcher_ExitIsCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	s := NewPlainSearcher(strings.NewReader("EXIT\n"), &out, sampleContacts(t), "")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "match(es)") {
		t.Errorf("no search should run before exit:\n%s", out.String())
	}
}

func TestPlainSearcher_EOFEnds(t *testing.T) {
	var out bytes.Buffer
	s := NewPlainSearcher(strings.NewReader("h\n"), &out, sampleContacts(t), "")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := ansi.ReplaceAllString(out.String(), "")
	if !strings.Contains(got, `2 match(es) for "h"`) {
		t.Errorf("output = %q", got)
	}
	// Descending by name: Sruthi2 before Jashwin3.
	if strings.Index(got, "Sruthi2") > strings.Index(got, "Jashwin3") {
		t.Errorf("results not sorted descending:\n%s", got)
	}
}

func TestPlainSearcher_NoMatches(t *testing.T) {
	var out bytes.Buffer
	s := NewPlainSearcher(strings.NewReader("zzz\n"), &out, sampleContacts(t), "")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), `0 match(es) for "zzz"`) {
		t.Errorf("output = %q", out.String())
	}
}

func TestPlainSearcher_InitialQueryRendersFirst(t *testing.T) {
	var out bytes.Buffer
	s := NewPlainSearcher(strings.NewReader(""), &out, sampleContacts(t), "jash")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), `1 match(es) for "jash"`) {
		t.Errorf("output = %q", out.String())
	}
}

func TestPlainSearcher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewPlainSearcher(strings.NewReader("gok\n"), &bytes.Buffer{}, sampleContacts(t), "")

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestPlainSearcher_CancelWhileWaitingForInput(t *testing.T) {
	// Given: a session reading from input that never arrives
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	ctx, cancel := context.WithCancel(context.Background())
	s := NewPlainSearcher(pr, &bytes.Buffer{}, sampleContacts(t), "")

	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	// When: the context is cancelled while the read is pending
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Then: Run returns promptly with the cancellation error
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
