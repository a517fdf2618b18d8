package format

import (
	"fmt"

	"github.com/joshuapare/cdfkit/internal/buf"
)

// Registers is a decoded view of the four byte-count registers in the CDFbin
// header. It is a snapshot, not a live view: mutate the buffer through
// PutRegister and re-parse.
//
//	Offset  Size  Description
//	------  ----  -------------------------------
//	0x0008   4    R0: declared total file length
//	0x0014   4    R1: declared mid-section length
//	0x0020   4    R2: declared end-section length
//	0x0024   4    R3: declared end-section start
//
// All four are little-endian uint32.
type Registers struct {
	R0 uint32 // declared file length
	R1 uint32 // declared mid/trailing-section length
	R2 uint32 // declared end-section length
	R3 uint32 // declared end-section start
}

// RegisterOffsets lists the absolute offset of each register, indexed R0..R3.
var RegisterOffsets = [4]int{RegR0Offset, RegR1Offset, RegR2Offset, RegR3Offset}

// ParseRegisters reads the register block from the start of a CDFbin buffer.
func ParseRegisters(b []byte) (Registers, error) {
	if !buf.Has(b, 0, RegisterAreaEnd) {
		return Registers{}, fmt.Errorf("registers: file is %d bytes, header needs %d: %w",
			len(b), RegisterAreaEnd, ErrTruncated)
	}
	return Registers{
		R0: ReadU32(b, RegR0Offset),
		R1: ReadU32(b, RegR1Offset),
		R2: ReadU32(b, RegR2Offset),
		R3: ReadU32(b, RegR3Offset),
	}, nil
}

// PutRegister writes one register value in place. idx is the register index
// R0..R3. Nothing but the 4 register bytes is touched.
func PutRegister(b []byte, idx int, v uint32) error {
	if idx < 0 || idx >= len(RegisterOffsets) {
		return fmt.Errorf("registers: no register R%d", idx)
	}
	off := RegisterOffsets[idx]
	if !buf.Has(b, off, RegisterWidth) {
		return fmt.Errorf("registers: R%d at 0x%X: %w", idx, off, ErrOutOfBounds)
	}
	PutU32(b, off, v)
	return nil
}
