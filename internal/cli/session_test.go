package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/gostddev/internal/config"
	"github.com/mwiater/gostddev/internal/sample"
)

func input(vs ...string) *strings.Reader {
	return strings.NewReader(strings.Join(vs, "\n") + "\n")
}

func TestRun_Plain(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Config{Locale: "en"}

	err := Run(context.Background(), cfg, input("2", "4", "abc", "4", "4", "5", "5", "7", "9", "9", "9"), &out)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "Please enter 10 numbers") {
		t.Errorf("expected header first, got %q", got)
	}
	if !strings.Contains(got, "Invalid input, please enter a valid number.\nEnter number 3: ") {
		t.Errorf("expected re-prompt for position 3, got %q", got)
	}
	wantTail := "\nNumbers entered: [2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0, 9.0, 9.0]\nStandard deviation: 2.40\n"
	if !strings.HasSuffix(got, wantTail) {
		t.Errorf("expected output to end with %q, got %q", wantTail, got)
	}
}

func TestRun_AllEqual(t *testing.T) {
	var out bytes.Buffer
	in := input("5", "5", "5", "5", "5", "5", "5", "5", "5", "5")
	if err := Run(context.Background(), config.Config{Locale: "en"}, in, &out); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Standard deviation: 0.00\n") {
		t.Errorf("expected zero deviation, got %q", out.String())
	}
}

func TestRun_HugeValueOverflowsDeviation(t *testing.T) {
	var out bytes.Buffer
	in := input("1e308", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	if err := Run(context.Background(), config.Config{Locale: "en"}, in, &out); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	want := "\nNumbers entered: [1e+308, 1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0]\nStandard deviation: +Inf\n"
	if !strings.HasSuffix(out.String(), want) {
		t.Errorf("expected output to end with %q, got %q", want, out.String())
	}
}

func TestRun_InputClosed(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), config.Config{Locale: "en"}, input("1", "2"), &out)
	if !errors.Is(err, sample.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if strings.Contains(out.String(), "Standard deviation") {
		t.Errorf("no result expected after early EOF, got %q", out.String())
	}
}

func TestRun_DebugLog(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "debug.log")
	cfg := config.Config{Locale: "en", Debug: true, LogFile: logFile}

	var out bytes.Buffer
	in := input("oops", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10")
	if err := Run(context.Background(), cfg, in, &out); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	log := string(b)
	for _, want := range []string{"rejected input", "accepted value", "computed standard deviation"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected log to contain %q, got %q", want, log)
		}
	}
	if strings.Contains(out.String(), "accepted value") {
		t.Errorf("log lines must not reach the terminal: %q", out.String())
	}
}
