package bytes

import (
	"fmt"
	"strconv"
	"strings"
)

const displayWidth = 16

// DumpPayload renders the contents of a packet in two columns, one for the
// bytes and the other for their ascii representation.
func DumpPayload(data []byte) string {
	var b strings.Builder
	for offset := 0; offset < len(data); offset += displayWidth {
		end := offset + displayWidth
		if end > len(data) {
			end = len(data)
		}
		writePacketLine(&b, data[offset:end], offset)
	}
	return b.String()
}

// writePacketLine writes one line of the dump to b.
func writePacketLine(b *strings.Builder, line []byte, offset int) {
	fmt.Fprintf(b, "(%04X) ", offset)
	// Print our bytes, with spacing between groups of 8 as a visual aid and
	// padding to keep the ascii column aligned on the last line.
	for i := 0; i < displayWidth; i++ {
		if i == 8 {
			b.WriteString("  ")
		}
		if i < len(line) {
			fmt.Fprintf(b, "%02x ", line[i])
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("    ")
	// Display the print characters as-is, others as periods.
	for _, c := range line {
		if c < 0x80 && strconv.IsPrint(rune(c)) {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte('\n')
}

// StripPadding returns a slice of b without the trailing 0s.
func StripPadding(b []byte) []byte {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			return b[:i+1]
		}
	}
	return []byte{}
}
