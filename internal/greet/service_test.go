package greet

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shubhlabs/shubh-mcp/internal/remote"
	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

type fixedBackend struct {
	output string
	err    error
}

func (f *fixedBackend) Name() string { return "fixed" }

func (f *fixedBackend) Generate(ctx context.Context, prompt string) (string, error) {
	return f.output, f.err
}

func newTestLogger() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestService_RemoteOutputWinsOverTemplates(t *testing.T) {
	t.Parallel()
	chain := remote.NewChain(newTestLogger(), &fixedBackend{output: "1. Custom Diwali wish from model"})
	svc := NewService(chain, newTestLogger())

	out, err := svc.Wishify(context.Background(), types.WishInput{Occasion: "Diwali"})
	if err != nil {
		t.Fatalf("Wishify: %v", err)
	}
	if out != "1. Custom Diwali wish from model" {
		t.Fatalf("expected remote output verbatim, got %q", out)
	}
}

func TestService_FallsBackWhenRemoteFails(t *testing.T) {
	t.Parallel()
	chain := remote.NewChain(newTestLogger(), &fixedBackend{err: errors.New("boom")})
	svc := NewService(chain, newTestLogger())

	out, err := svc.Shayari(context.Background(), types.ShayariInput{Theme: "dosti"})
	if err != nil {
		t.Fatalf("Shayari: %v", err)
	}
	if !strings.Contains(out, "dosti") || !strings.HasPrefix(out, "1. ") {
		t.Fatalf("expected templated fallback, got:\n%s", out)
	}
}

func TestService_NilChainUsesTemplates(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, newTestLogger())

	out, err := svc.StatusPack(context.Background(), types.StatusInput{Theme: "exam"})
	if err != nil {
		t.Fatalf("StatusPack: %v", err)
	}
	if len(strings.Split(out, "\n")) != StatusCountDefault {
		t.Fatalf("expected %d default lines, got:\n%s", StatusCountDefault, out)
	}
	again, _ := svc.StatusPack(context.Background(), types.StatusInput{Theme: "exam"})
	if out != again {
		t.Fatal("template output not stable across calls")
	}
}

func TestService_RequiredFields(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, newTestLogger())
	ctx := context.Background()

	if _, err := svc.Wishify(ctx, types.WishInput{Occasion: "   "}); !errors.Is(err, ErrOccasionRequired) {
		t.Fatalf("Wishify error = %v, want ErrOccasionRequired", err)
	}
	if _, err := svc.Shayari(ctx, types.ShayariInput{}); !errors.Is(err, ErrThemeRequired) {
		t.Fatalf("Shayari error = %v, want ErrThemeRequired", err)
	}
	if _, err := svc.StatusPack(ctx, types.StatusInput{}); !errors.Is(err, ErrThemeRequired) {
		t.Fatalf("StatusPack error = %v, want ErrThemeRequired", err)
	}
	if _, err := svc.Roast(ctx, types.RoastInput{}); !errors.Is(err, ErrTargetRequired) {
		t.Fatalf("Roast error = %v, want ErrTargetRequired", err)
	}
}

func TestService_PickupDefaults(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, newTestLogger())

	out, err := svc.PickupLines(context.Background(), types.PickupInput{})
	if err != nil {
		t.Fatalf("PickupLines: %v", err)
	}
	if len(strings.Split(out, "\n")) != PickupCountDefault {
		t.Fatalf("expected %d lines for empty input, got:\n%s", PickupCountDefault, out)
	}
}
