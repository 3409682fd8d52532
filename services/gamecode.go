// services/gamecode.go - Age Band + Game Code Resolution
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrAgeOutOfRange is returned for ages outside 8-27 inclusive.
	ErrAgeOutOfRange = errors.New("age must be between 8 and 27 years")

	// ErrInvalidGameCode is returned when a code does not follow the
	// digit + band letter + two-digit number layout.
	ErrInvalidGameCode = errors.New("game code must be 4 characters (e.g., 1A02)")
)

// ageBand describes one of the four fixed age categories.
type ageBand struct {
	Code  string
	Start int
	End   int
}

var ageBands = []ageBand{
	{"A", 8, 12},
	{"B", 13, 17},
	{"C", 18, 22},
	{"D", 23, 27},
}

// AgeBand maps an age to its category letter (A-D).
func AgeBand(age int) (string, error) {
	for _, b := range ageBands {
		if age >= b.Start && age <= b.End {
			return b.Code, nil
		}
	}
	return "", ErrAgeOutOfRange
}

// BandRange returns the inclusive age range of a category letter.
func BandRange(band string) (start, end int, ok bool) {
	for _, b := range ageBands {
		if b.Code == band {
			return b.Start, b.End, true
		}
	}
	return 0, 0, false
}

// ComposeGameCode builds a 4-character game code from a disability type
// (1-6), an age band letter and a game number (0-99).
func ComposeGameCode(disabilityType int, band string, number int) (string, error) {
	if disabilityType < 1 || disabilityType > 6 {
		return "", ErrInvalidGameCode
	}
	if _, _, ok := BandRange(band); !ok {
		return "", ErrInvalidGameCode
	}
	if number < 0 || number > 99 {
		return "", ErrInvalidGameCode
	}
	return fmt.Sprintf("%d%s%02d", disabilityType, band, number), nil
}

// DecomposeGameCode is the exact inverse of ComposeGameCode: for every
// valid code, recomposing the parts yields the original string.
func DecomposeGameCode(code string) (disabilityType int, band string, number int, err error) {
	if len(code) != 4 {
		return 0, "", 0, ErrInvalidGameCode
	}
	if code[0] < '1' || code[0] > '6' {
		return 0, "", 0, ErrInvalidGameCode
	}
	disabilityType = int(code[0] - '0')

	band = string(code[1])
	if _, _, ok := BandRange(band); !ok {
		return 0, "", 0, ErrInvalidGameCode
	}

	if code[2] < '0' || code[2] > '9' || code[3] < '0' || code[3] > '9' {
		return 0, "", 0, ErrInvalidGameCode
	}
	number = int(code[2]-'0')*10 + int(code[3]-'0')

	return disabilityType, band, number, nil
}
