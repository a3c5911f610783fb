package validation

import (
	"unicode"
	"unicode/utf8"

	"github.com/rmarques/predictpulse/internal/domain/apperr"
)

// maxPairLen is the maximum accepted pair length, counted in characters.
const maxPairLen = 20

// Validation failures for the pair query parameter. Shared instances so
// callers can compare with errors.Is.
var (
	ErrPairEmpty       = apperr.BadRequest("pair cannot be empty")
	ErrPairTooLong     = apperr.BadRequest("pair is too long")
	ErrPairNotAlphanum = apperr.BadRequest("pair must be alphanumeric")
)

// ValidatePair checks the untrusted pair identifier before it reaches storage.
//
// Rules, in order (first failure wins):
//  1. non-empty
//  2. at most 20 characters
//  3. every character is a Unicode letter or digit
//
// The input is gated, never normalized: no trimming or case folding happens
// here, and the repository receives the string exactly as submitted.
func ValidatePair(pair string) error {
	if pair == "" {
		return ErrPairEmpty
	}
	if utf8.RuneCountInString(pair) > maxPairLen {
		return ErrPairTooLong
	}
	for _, r := range pair {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrPairNotAlphanum
		}
	}
	return nil
}
