package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexLinesFormat(t *testing.T) {
	data := append([]byte("cdfbin"), 0x00, 0xFF)
	lines := HexLines(data, 0, len(data))
	require.Len(t, lines, 1)
	require.Equal(t, "00000000  63 64 66 62 69 6E 00 FF                          |cdfbin..|", lines[0])
}

func TestHexLinesFullRow(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	lines := HexLines(data, 0, len(data))
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "00000000  00 01 02 03"))
	require.True(t, strings.HasPrefix(lines[1], "00000010  10 11 12 13"))
	require.True(t, strings.HasPrefix(lines[2], "00000020  20 21"))

	// Hex column is padded to a fixed width so the ASCII gutter aligns.
	require.Equal(t, strings.Index(lines[0], "|"), strings.Index(lines[2], "|"))
}

func TestHexLinesWindow(t *testing.T) {
	data := make([]byte, 64)
	lines := HexLines(data, 16, 16)
	require.Len(t, lines, 1)
	require.True(t, strings.HasPrefix(lines[0], "00000010  "))
}

func TestHexLinesClamping(t *testing.T) {
	data := make([]byte, 8)
	require.Len(t, HexLines(data, 0, 1000), 1)
	require.Empty(t, HexLines(data, 100, 16))
	require.Len(t, HexLines(data, -5, 8), 1)
	// Negative length means "to the end".
	require.Len(t, HexLines(data, 0, -1), 1)
}
