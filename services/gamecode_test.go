package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeBandBoundaries(t *testing.T) {
	cases := map[int]string{
		8: "A", 12: "A",
		13: "B", 17: "B",
		18: "C", 22: "C",
		23: "D", 27: "D",
	}
	for age, want := range cases {
		band, err := AgeBand(age)
		assert.NoError(t, err, "age %d", age)
		assert.Equal(t, want, band, "age %d", age)
	}
}

func TestAgeBandOutOfRange(t *testing.T) {
	for _, age := range []int{-1, 0, 7, 28, 30, 100} {
		_, err := AgeBand(age)
		assert.ErrorIs(t, err, ErrAgeOutOfRange, "age %d", age)
	}
}

func TestBandRange(t *testing.T) {
	start, end, ok := BandRange("B")
	assert.True(t, ok)
	assert.Equal(t, 13, start)
	assert.Equal(t, 17, end)

	_, _, ok = BandRange("E")
	assert.False(t, ok)
}

func TestComposeGameCode(t *testing.T) {
	code, err := ComposeGameCode(1, "A", 2)
	assert.NoError(t, err)
	assert.Equal(t, "1A02", code)

	code, err = ComposeGameCode(6, "D", 99)
	assert.NoError(t, err)
	assert.Equal(t, "6D99", code)

	_, err = ComposeGameCode(0, "A", 2)
	assert.ErrorIs(t, err, ErrInvalidGameCode)
	_, err = ComposeGameCode(7, "A", 2)
	assert.ErrorIs(t, err, ErrInvalidGameCode)
	_, err = ComposeGameCode(1, "E", 2)
	assert.ErrorIs(t, err, ErrInvalidGameCode)
	_, err = ComposeGameCode(1, "A", 100)
	assert.ErrorIs(t, err, ErrInvalidGameCode)
}

func TestDecomposeGameCode(t *testing.T) {
	disability, band, number, err := DecomposeGameCode("1A02")
	assert.NoError(t, err)
	assert.Equal(t, 1, disability)
	assert.Equal(t, "A", band)
	assert.Equal(t, 2, number)

	for _, bad := range []string{"", "1A2", "1A023", "0A02", "7A02", "1E02", "1Axx", "aA02"} {
		_, _, _, err := DecomposeGameCode(bad)
		assert.ErrorIs(t, err, ErrInvalidGameCode, "code %q", bad)
	}
}

func TestGameCodeRoundTrip(t *testing.T) {
	for disability := 1; disability <= 6; disability++ {
		for _, band := range []string{"A", "B", "C", "D"} {
			for _, number := range []int{0, 1, 9, 10, 42, 99} {
				code, err := ComposeGameCode(disability, band, number)
				assert.NoError(t, err)

				d, b, n, err := DecomposeGameCode(code)
				assert.NoError(t, err, "code %s", code)
				assert.Equal(t, disability, d)
				assert.Equal(t, band, b)
				assert.Equal(t, number, n)

				recomposed := fmt.Sprintf("%d%s%02d", d, b, n)
				assert.Equal(t, code, recomposed)
			}
		}
	}
}
