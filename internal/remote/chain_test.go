package remote

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type stubBackend struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Generate(context.Context, string) (string, error) {
	s.calls++
	return s.text, s.err
}

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	t.Parallel()
	a := &stubBackend{name: "a", text: "  from a  "}
	b := &stubBackend{name: "b", text: "from b"}
	c := NewChain(testLogger(), a, b)

	got := c.Generate(context.Background(), "p")
	if got != "from a" {
		t.Fatalf("expected trimmed primary output, got %q", got)
	}
	if b.calls != 0 {
		t.Fatal("secondary backend must not be called when primary succeeds")
	}
}

func TestChain_FallsThroughOnErrorAndEmpty(t *testing.T) {
	t.Parallel()
	a := &stubBackend{name: "a", err: errors.New("boom")}
	b := &stubBackend{name: "b", text: "   "}
	c := &stubBackend{name: "c", text: "third"}

	got := NewChain(testLogger(), a, b, c).Generate(context.Background(), "p")
	if got != "third" {
		t.Fatalf("expected third backend output, got %q", got)
	}
	if a.calls != 1 || b.calls != 1 || c.calls != 1 {
		t.Fatalf("expected each backend tried once, got %d/%d/%d", a.calls, b.calls, c.calls)
	}
}

func TestChain_AllFailYieldsEmpty(t *testing.T) {
	t.Parallel()
	a := &stubBackend{name: "a", err: errors.New("down")}
	if got := NewChain(testLogger(), a).Generate(context.Background(), "p"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestChain_SkipsNilBackends(t *testing.T) {
	t.Parallel()
	b := &stubBackend{name: "b", text: "ok"}
	c := NewChain(testLogger(), nil, b, nil)
	if got := c.Generate(context.Background(), "p"); got != "ok" {
		t.Fatalf("unexpected output %q", got)
	}
	if names := c.Backends(); len(names) != 1 || names[0] != "b" {
		t.Fatalf("unexpected backends: %v", names)
	}
}
