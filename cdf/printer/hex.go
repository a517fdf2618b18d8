// Package printer renders byte buffers for terminal display. It is pure text
// formatting; selection state and interactivity belong to the consumer.
package printer

import (
	"fmt"
	"strings"
)

// BytesPerLine is the width of a hex dump row.
const BytesPerLine = 16

// HexLines renders the classic hex dump (offset, hex bytes, ASCII gutter) for
// up to n bytes starting at start. Offsets are absolute file offsets. The
// range is clamped to the buffer; an empty result means start was past the
// end.
//
//	00000000  63 64 66 62 69 6E 00 00  ...              |cdfbin..|
func HexLines(data []byte, start, n int) []string {
	if start < 0 {
		start = 0
	}
	end := start + n
	if end > len(data) || n < 0 {
		end = len(data)
	}

	var lines []string
	for off := start; off < end; off += BytesPerLine {
		chunkEnd := off + BytesPerLine
		if chunkEnd > end {
			chunkEnd = end
		}
		chunk := data[off:chunkEnd]

		var hexPart strings.Builder
		var asciiPart strings.Builder
		for i, b := range chunk {
			if i > 0 {
				hexPart.WriteByte(' ')
			}
			fmt.Fprintf(&hexPart, "%02X", b)
			if isPrintable(b) {
				asciiPart.WriteByte(b)
			} else {
				asciiPart.WriteByte('.')
			}
		}
		lines = append(lines, fmt.Sprintf("%08X  %-*s  |%s|",
			off, BytesPerLine*3-1, hexPart.String(), asciiPart.String()))
	}
	return lines
}

func isPrintable(b byte) bool { return b >= 32 && b <= 126 }
