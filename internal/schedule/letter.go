package schedule

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Letter identifies the rotation day a school day follows.
type Letter int

// NoLetter marks a day without school.
const (
	NoLetter Letter = iota
	LetterM
	LetterR
	LetterA
	LetterB
	LetterC
	LetterE
	LetterF
)

// Letters lists every school-day letter.
var Letters = []Letter{LetterM, LetterR, LetterA, LetterB, LetterC, LetterE, LetterF}

var letterCodes = map[Letter]string{
	LetterM: "M",
	LetterR: "R",
	LetterA: "A",
	LetterB: "B",
	LetterC: "C",
	LetterE: "E",
	LetterF: "F",
}

// ParseLetter maps a single-character code to its Letter.
func ParseLetter(s string) (Letter, error) {
	for l, code := range letterCodes {
		if code == s {
			return l, nil
		}
	}
	return NoLetter, fmt.Errorf("%w: %w %q", ErrFormat, ErrUnknownLetter, s)
}

// String returns the letter's code, or "" for NoLetter.
func (l Letter) String() string {
	return letterCodes[l]
}

// Article is the indefinite article read before the letter ("an A day", "a B day").
func (l Letter) Article() string {
	switch l {
	case LetterA, LetterE, LetterM, LetterR, LetterF:
		return "an"
	default:
		return "a"
	}
}

// MarshalJSON encodes the letter code; NoLetter encodes as null.
func (l Letter) MarshalJSON() ([]byte, error) {
	if l == NoLetter {
		return []byte("null"), nil
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a letter code. Anything outside the closed set is a format error.
func (l *Letter) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: letter: %v", ErrFormat, err)
	}
	parsed, err := ParseLetter(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func wrapFormat(field string, err error) error {
	if errors.Is(err, ErrFormat) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrFormat, field, err)
}
