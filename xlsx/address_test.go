package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLettersRoundTrip(t *testing.T) {
	for n := 1; n <= 16384; n++ {
		letters, err := ColumnLetters(n)
		require.NoError(t, err)
		back, err := ColumnFromLetters(letters)
		require.NoError(t, err)
		assert.Equal(t, n, back, "round trip broke at column %d (%s)", n, letters)
	}
}

func TestColumnLettersKnownValues(t *testing.T) {
	cases := map[int]string{1: "A", 26: "Z", 27: "AA", 52: "AZ", 702: "ZZ", 703: "AAA"}
	for n, want := range cases {
		got, err := ColumnLetters(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseAddressRoundTrip(t *testing.T) {
	for _, addr := range []string{"A1", "Z26", "AA100", "aa12"} {
		c, err := ParseAddress(addr)
		require.NoError(t, err)
		back := FormatAddress(c.Row, c.Column)
		reparsed, err := ParseAddress(back)
		require.NoError(t, err)
		assert.Equal(t, c, reparsed)
	}
}

func TestParseAddressRejectsMalformed(t *testing.T) {
	for _, addr := range []string{"", "1A", "A", "A-1", "A0", "1"} {
		_, err := ParseAddress(addr)
		assert.Error(t, err, "expected error for %q", addr)
		var xe *Error
		require.ErrorAs(t, err, &xe)
		assert.Equal(t, ErrInvalidCoordinate, xe.Kind)
	}
}

func TestNormalizeAddressUppercases(t *testing.T) {
	got, err := NormalizeAddress("b2")
	require.NoError(t, err)
	assert.Equal(t, "B2", got)
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("A1:C3")
	require.NoError(t, err)
	assert.Equal(t, CellCoordinate{Row: 1, Column: 1}, start)
	assert.Equal(t, CellCoordinate{Row: 3, Column: 3}, end)

	_, _, err = ParseRange("A1")
	assert.Error(t, err)
}

func TestCellRangeCellsRowMajor(t *testing.T) {
	r := CellRange{Start: CellCoordinate{Row: 1, Column: 1}, End: CellCoordinate{Row: 2, Column: 2}}
	got := r.Cells()
	want := []CellCoordinate{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	assert.Equal(t, want, got)
}

func TestFormatRange(t *testing.T) {
	r := CellRange{Start: CellCoordinate{Row: 1, Column: 1}, End: CellCoordinate{Row: 3, Column: 3}}
	assert.Equal(t, "A1:C3", FormatRange(r))
}
