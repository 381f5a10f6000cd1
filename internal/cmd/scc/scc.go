// Package scc parses the console game's flags and plays one game of
// Ship, Captain, Crew.
package scc

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/shipcaptaincrew/internal/console"
	"github.com/louisbranch/shipcaptaincrew/internal/core/dice"
	"github.com/louisbranch/shipcaptaincrew/internal/core/round"
	entrypoint "github.com/louisbranch/shipcaptaincrew/internal/platform/cmd"
	"github.com/louisbranch/shipcaptaincrew/internal/random"
)

const tracerName = "github.com/louisbranch/shipcaptaincrew/internal/cmd/scc"

// Config holds game command configuration. None of it changes the rules.
type Config struct {
	Seed    int64  `env:"SEED"`
	Locale  string `env:"LOCALE" envDefault:"en-US"`
	Verbose bool   `env:"VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible games (0 = random)")
	fs.StringVar(&cfg.Locale, "lang", cfg.Locale, "console language (en-US, pt-BR)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log diagnostics to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigureLogging sets up the standard logger: diagnostics go to w in
// verbose mode and are discarded otherwise.
func ConfigureLogging(cfg Config, w io.Writer) {
	log.SetPrefix("[SCC] ")
	if !cfg.Verbose {
		w = io.Discard
	}
	log.SetOutput(w)
}

// Run plays one game between in and out with tracing configured.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSCC, func(ctx context.Context) error {
		_, err := Play(ctx, cfg, in, out)
		return err
	})
}

// Play seeds the dice, plays one game and returns its result. Winning and
// losing both return a nil error.
func Play(ctx context.Context, cfg Config, in io.Reader, out io.Writer) (round.Result, error) {
	ui := console.New(in, out, console.ResolveTag(cfg.Locale))

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		ui.Error(err)
		return round.Result{}, fmt.Errorf("resolve seed: %w", err)
	}

	gameID := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scc.game", trace.WithAttributes(
		attribute.String("game.id", gameID),
		attribute.Int64("game.seed", seed),
	))
	defer span.End()
	log.Printf("game %s: seed %d", gameID, seed)

	result, err := round.Play(ctx, round.NewEngine(dice.NewSeededRoller(seed)), ui)
	if err != nil {
		ui.Error(err)
		return round.Result{}, fmt.Errorf("play game %s: %w", gameID, err)
	}

	log.Printf("game %s: %s, cargo %d, %d throws left", gameID, result.Outcome, result.Cargo, result.ThrowsLeft)
	return result, nil
}
