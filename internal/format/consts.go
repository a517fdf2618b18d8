// Package format houses the low-level layout constants and codecs for the
// CDFbin container. The format is undocumented; fields are located by marker
// byte sequences rather than by a structural index, and the only structured
// region is a small set of byte-count registers near the start of the file.
// The goal is to keep the byte-level knowledge in one place so higher-level
// packages can orchestrate the data in a more ergonomic form.
package format

// All multi-byte values in a CDFbin file are little-endian. This is a single
// global property of the format, not a per-field choice.

const (
	// RegR0Offset is the file offset of the declared total file length.
	RegR0Offset = 0x0008

	// RegR1Offset is the file offset of the declared mid/trailing-section
	// length. Expected to equal R3 - RegisterAreaEnd when R3 is plausible.
	RegR1Offset = 0x0014

	// RegR2Offset is the file offset of the declared end-section length.
	RegR2Offset = 0x0020

	// RegR3Offset is the file offset of the declared end-section start.
	RegR3Offset = 0x0024

	// RegisterWidth is the width of each byte-count register.
	RegisterWidth = 4

	// RegisterAreaEnd is the first offset past the register block. A file
	// shorter than this cannot carry a coherent header, and an R3 below it
	// would place the end section inside the header itself.
	RegisterAreaEnd = RegR3Offset + RegisterWidth // 0x28
)

// PayloadSkip is the fixed number of bytes between the end of a field marker
// and the start of its payload. In every observed CDFbin the payload starts
// immediately after the marker.
const PayloadSkip = 0
