package tictoc

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestDefaultTimer(t *testing.T) {
	var buf bytes.Buffer
	Default().SetOutput(&buf)
	defer Default().SetOutput(os.Stderr)

	if Default().Label() != "tictoc" {
		t.Errorf("expected default timer label %q, got %q", "tictoc", Default().Label())
	}

	t.Run("TicToc", func(t *testing.T) {
		buf.Reset()
		if err := Tic(); err != nil {
			t.Fatalf("unexpected error from Tic: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
		if _, err := Toc(); err != nil {
			t.Fatalf("unexpected error from Toc: %v", err)
		}
		got := buf.String()
		if strings.Count(got, "\n") != 1 {
			t.Fatalf("expected exactly one report line, got %q", got)
		}
		if !strings.HasPrefix(got, "[tictoc] Elapsed: ") {
			t.Errorf("expected default label in report, got %q", got)
		}
	})

	t.Run("TocTicChain", func(t *testing.T) {
		buf.Reset()
		if err := Tic(); err != nil {
			t.Fatalf("unexpected error from Tic: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		if _, err := TocTic(); err != nil {
			t.Fatalf("unexpected error from TocTic: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		if _, err := Toc(); err != nil {
			t.Fatalf("unexpected error from Toc: %v", err)
		}
		if Default().Running() {
			t.Error("expected default timer to be idle after the chain")
		}
		if strings.Count(buf.String(), "\n") != 2 {
			t.Errorf("expected one report per interval, got %q", buf.String())
		}
	})

	t.Run("Decorator", func(t *testing.T) {
		buf.Reset()
		calls := 0
		fn := TicToc(func() { calls++ })
		fn()
		fn()
		if calls != 2 {
			t.Errorf("expected wrapped function to run each call, got %d", calls)
		}
		if strings.Count(buf.String(), "\n") != 2 {
			t.Errorf("expected one report per call, got %q", buf.String())
		}
	})
}
