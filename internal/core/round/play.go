package round

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/shipcaptaincrew/internal/platform/errors"
)

const tracerName = "github.com/louisbranch/shipcaptaincrew/internal/core/round"

// ErrInvalidAnswer is recorded when the reroll answer is neither yes nor no.
// The game treats it as a decline.
var ErrInvalidAnswer = apperrors.New(apperrors.CodeInputInvalid, "reroll answer not understood")

// Answer is the player's reply to the cargo reroll prompt.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	// AnswerInvalid is any reply other than yes or no. It declines.
	AnswerInvalid
)

func (a Answer) String() string {
	switch a {
	case AnswerNo:
		return "no"
	case AnswerYes:
		return "yes"
	case AnswerInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// UI presents a game to the player.
type UI interface {
	// Throw shows a throw and the Ship, Captain, Crew progress after it.
	Throw(Throw)
	// Won announces that all slots are secured and the cargo score.
	Won(cargo int)
	// AskReroll asks whether to spend a throw rerolling cargo.
	AskReroll() (Answer, error)
	// Rerolled shows the new cargo dice and score.
	Rerolled(Reroll)
	// Lost announces a game that ran out of throws.
	Lost()
	// GameOver closes the game.
	GameOver()
}

// Play runs the game in e to completion through ui.
//
// Any answer other than yes ends the reroll loop, including unreadable
// input: read errors are logged and count as a decline. Play only fails on
// context cancellation or an engine error.
func Play(ctx context.Context, e *Engine, ui UI) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "round.Play")
	defer span.End()

	result, err := play(ctx, span, e, ui)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(
		attribute.String("round.outcome", result.Outcome.String()),
		attribute.Int("round.cargo", result.Cargo),
		attribute.Int("round.throws_left", result.ThrowsLeft),
	)
	return result, nil
}

func play(ctx context.Context, span trace.Span, e *Engine, ui UI) (Result, error) {
	for e.Phase() == PhaseRolling {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		throw, err := e.TakeThrow()
		if err != nil {
			return Result{}, fmt.Errorf("take throw: %w", err)
		}
		span.AddEvent("throw", trace.WithAttributes(
			attribute.IntSlice("dice", throw.Dice),
			attribute.StringSlice("acquired", lockNames(throw.Acquired)),
			attribute.Int("throws_left", throw.State.ThrowsLeft),
		))
		ui.Throw(throw)
	}

	if e.Phase() == PhaseLost {
		ui.Lost()
		ui.GameOver()
		return e.Result(), nil
	}

	ui.Won(e.Cargo())
	for e.Phase() == PhaseCargo {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		answer, err := ui.AskReroll()
		if err != nil {
			log.Printf("read reroll answer: %v", err)
			answer = AnswerNo
		}
		if answer == AnswerInvalid {
			log.Printf("%v, declining", ErrInvalidAnswer)
			span.RecordError(ErrInvalidAnswer, trace.WithAttributes(
				attribute.String("error.code", string(apperrors.GetCode(ErrInvalidAnswer))),
			))
		}
		if answer != AnswerYes {
			span.AddEvent("decline", trace.WithAttributes(attribute.String("answer", answer.String())))
			if err := e.Decline(); err != nil {
				return Result{}, fmt.Errorf("decline reroll: %w", err)
			}
			break
		}

		reroll, err := e.RerollCargo()
		if err != nil {
			return Result{}, fmt.Errorf("reroll cargo: %w", err)
		}
		span.AddEvent("reroll", trace.WithAttributes(
			attribute.IntSlice("cargo", reroll.Cargo[:]),
			attribute.Int("throws_left", reroll.ThrowsLeft),
		))
		ui.Rerolled(reroll)
	}

	ui.GameOver()
	return e.Result(), nil
}

func lockNames(locks []Lock) []string {
	names := make([]string, len(locks))
	for i, l := range locks {
		names[i] = l.String()
	}
	return names
}
