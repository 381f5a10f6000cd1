// Package console renders a game of Ship, Captain, Crew on a text terminal
// and reads the player's reroll answers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/shipcaptaincrew/internal/core/round"
	apperrors "github.com/louisbranch/shipcaptaincrew/internal/platform/errors"
	"github.com/louisbranch/shipcaptaincrew/internal/platform/i18n/catalog"
)

// Console implements round.UI over a reader and a writer.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	p   *message.Printer
}

// New returns a console printing localized text for tag.
func New(in io.Reader, out io.Writer, tag language.Tag) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		p:   message.NewPrinter(tag),
	}
}

// ResolveTag picks the supported catalog locale closest to locale, falling
// back to the base locale when nothing matches.
func ResolveTag(locale string) language.Tag {
	base := language.MustParse(catalog.BaseLocale)
	supported := []language.Tag{base}
	for _, l := range catalog.Default().Locales() {
		if l == catalog.BaseLocale {
			continue
		}
		if tag, err := language.Parse(l); err == nil {
			supported = append(supported, tag)
		}
	}

	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return base
	}
	_, index, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return base
	}
	return supported[index]
}

// Throw prints the throw header, the rolled dice and the progress line.
func (c *Console) Throw(th round.Throw) {
	fmt.Fprintln(c.out)
	c.line("game.throw.header", th.ThrowsBefore)
	c.line("game.throw.rolling", len(th.Dice), joinDice(th.Dice))
	c.line("game.progress", c.progress(th.State))
}

// Won prints the success message and the cargo score.
func (c *Console) Won(cargo int) {
	c.line("game.won")
	c.line("game.cargo.score", cargo)
}

// AskReroll prompts for a reroll and reads the answer.
// Blank lines are skipped; end of input is returned as an error.
func (c *Console) AskReroll() (round.Answer, error) {
	c.p.Fprintf(c.out, "game.reroll.prompt")
	for {
		line, err := c.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			return ParseAnswer(line), nil
		}
		if err != nil {
			return round.AnswerNo, fmt.Errorf("read reroll answer: %w", err)
		}
	}
}

// Rerolled prints the new cargo dice and score.
func (c *Console) Rerolled(r round.Reroll) {
	c.line("game.reroll.dice", r.Cargo[0], r.Cargo[1])
	c.line("game.reroll.score", r.Score)
}

// Lost prints the loss message; a lost game scores 0.
func (c *Console) Lost() {
	c.line("game.lost")
	c.line("game.cargo.score", 0)
}

// GameOver prints the closing banner.
func (c *Console) GameOver() {
	fmt.Fprintln(c.out)
	c.line("game.over")
}

// Error prints the player-facing message for err.
func (c *Console) Error(err error) {
	fmt.Fprintln(c.out, apperrors.Localize(c.p, err))
}

// ParseAnswer interprets the first non-space character of s: 'y' or 'Y'
// is yes, 'n' or 'N' is no, anything else is invalid.
func ParseAnswer(s string) round.Answer {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	if trimmed == "" {
		return round.AnswerInvalid
	}
	switch trimmed[0] {
	case 'y', 'Y':
		return round.AnswerYes
	case 'n', 'N':
		return round.AnswerNo
	default:
		return round.AnswerInvalid
	}
}

func (c *Console) line(key string, args ...any) {
	c.p.Fprintf(c.out, key, args...)
	fmt.Fprintln(c.out)
}

func (c *Console) progress(st round.State) string {
	marks := make([]string, 0, 3)
	for _, l := range []round.Lock{round.LockShip, round.LockCaptain, round.LockCrew} {
		if st.Locked(l) {
			marks = append(marks, c.p.Sprintf("game.progress.locked", l.Value(), l.Slot()))
			continue
		}
		marks = append(marks, c.p.Sprintf("game.progress.missing"))
	}
	return strings.Join(marks, " ")
}

func joinDice(faces []int) string {
	parts := make([]string, len(faces))
	for i, face := range faces {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, " ")
}
