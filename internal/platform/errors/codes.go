// Package errors provides coded domain errors with localized user messages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice errors
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"

	// Round errors
	CodeRoundOver        Code = "ROUND_OVER"
	CodeCargoUnavailable Code = "CARGO_UNAVAILABLE"
	CodeNoThrowsLeft     Code = "NO_THROWS_LEFT"

	// Console errors
	CodeInputInvalid Code = "INPUT_INVALID"
)

// MessageKey returns the catalog key holding the user-facing text for c.
func (c Code) MessageKey() string {
	return "errors." + string(c)
}
