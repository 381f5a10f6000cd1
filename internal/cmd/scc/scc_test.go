package scc

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/louisbranch/shipcaptaincrew/internal/core/round"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("scc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected random seed 0, got %d", cfg.Seed)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected locale en-US, got %q", cfg.Locale)
	}
	if cfg.Verbose {
		t.Fatal("expected verbose off")
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("SCC_SEED", "99")
	t.Setenv("SCC_LOCALE", "pt-BR")
	t.Setenv("SCC_VERBOSE", "true")

	fs := flag.NewFlagSet("scc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 99 || cfg.Locale != "pt-BR" || !cfg.Verbose {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("SCC_SEED", "99")

	fs := flag.NewFlagSet("scc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-lang", "pt-BR", "-v"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed override 7, got %d", cfg.Seed)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected locale override, got %q", cfg.Locale)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose on")
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("SCC_SEED", "not-a-number")

	fs := flag.NewFlagSet("scc", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestConfigureLogging(t *testing.T) {
	prefix, flags, writer := log.Prefix(), log.Flags(), log.Writer()
	t.Cleanup(func() {
		log.SetPrefix(prefix)
		log.SetFlags(flags)
		log.SetOutput(writer)
	})
	log.SetFlags(0)

	var buf bytes.Buffer
	ConfigureLogging(Config{Verbose: true}, &buf)
	log.Print("visible")
	if got := buf.String(); got != "[SCC] visible\n" {
		t.Fatalf("verbose log = %q", got)
	}

	buf.Reset()
	ConfigureLogging(Config{}, &buf)
	log.Print("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got %q", buf.String())
	}
}

func TestPlayIsReproducibleForSeed(t *testing.T) {
	cfg := Config{Seed: 42, Locale: "en-US"}
	answers := strings.Repeat("n\n", round.MaxThrows)

	var first, second bytes.Buffer
	firstResult, err := Play(context.Background(), cfg, strings.NewReader(answers), &first)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	secondResult, err := Play(context.Background(), cfg, strings.NewReader(answers), &second)
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	if first.String() != second.String() {
		t.Fatalf("same seed produced different games:\n%s\n---\n%s", first.String(), second.String())
	}
	if firstResult != secondResult {
		t.Fatalf("results differ: %+v vs %+v", firstResult, secondResult)
	}
}

func TestPlayOutputMatchesResult(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		var out bytes.Buffer
		result, err := Play(context.Background(), Config{Seed: seed}, strings.NewReader(strings.Repeat("y\n", round.MaxThrows)), &out)
		if err != nil {
			t.Fatalf("seed %d: play: %v", seed, err)
		}
		text := out.String()
		if !strings.HasSuffix(text, "=== GAME OVER ===\n") {
			t.Fatalf("seed %d: missing game over banner:\n%s", seed, text)
		}
		switch result.Outcome {
		case round.OutcomeLost:
			if result.Cargo != 0 || !strings.Contains(text, "Out of rolls.") {
				t.Fatalf("seed %d: lost game rendered as:\n%s", seed, text)
			}
		case round.OutcomeWon:
			if !strings.Contains(text, "Ship, Captain, and Crew obtained!") {
				t.Fatalf("seed %d: won game rendered as:\n%s", seed, text)
			}
			if result.ThrowsLeft != 0 {
				t.Fatalf("seed %d: answering yes should spend every throw, %d left", seed, result.ThrowsLeft)
			}
		default:
			t.Fatalf("seed %d: unexpected outcome %v", seed, result.Outcome)
		}
	}
}

func TestPlayReturnsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if _, err := Play(ctx, Config{Seed: 1}, strings.NewReader(""), &out); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRunPlaysOneGame(t *testing.T) {
	t.Setenv("SCC_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Seed: 3, Locale: "en-US"}, strings.NewReader("n\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "=== GAME OVER ===") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestMain(m *testing.M) {
	ConfigureLogging(Config{}, nil)
	os.Exit(m.Run())
}
