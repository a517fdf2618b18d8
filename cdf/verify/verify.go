// Package verify checks and repairs the byte-count registers in a CDFbin
// header. Four registers cross-reference the file length and each other:
//
//	R0 @ 0x0008  declared total file length
//	R1 @ 0x0014  declared mid-section length (R3 - 0x28 when R3 is plausible)
//	R2 @ 0x0020  declared end-section length
//	R3 @ 0x0024  declared end-section start
//
// A stale register does not stop the editor from working (fields are found
// by marker, not by these registers), but the simulator rejects files whose
// registers disagree with the actual length, so the checker runs after load
// and before every save.
package verify

import (
	"fmt"

	"github.com/joshuapare/cdfkit/internal/format"
)

// CheckID names one of the five register consistency rules.
type CheckID int

const (
	// CheckFileLength (C0): R0 must equal the actual file length.
	CheckFileLength CheckID = iota
	// CheckMidLength (C1): R1 must equal R3 - 0x28. Only evaluated when
	// R3 >= 0x28; below that the rule has nothing meaningful to compare
	// against, and the asymmetry is deliberate in the format.
	CheckMidLength
	// CheckEndLength (C2): R2 must equal file length - R3.
	CheckEndLength
	// CheckEndStart (C3): R3 must be a plausible end-section start, i.e.
	// not beyond the end of the file.
	CheckEndStart
	// CheckEndGeometry (C4): R3 + R2 must equal the file length. This is a
	// cross-check; it can fail even when C2 and C3 pass individually.
	CheckEndGeometry
)

// String returns the short name of the check.
func (id CheckID) String() string {
	switch id {
	case CheckFileLength:
		return "C0 file-length"
	case CheckMidLength:
		return "C1 mid-length"
	case CheckEndLength:
		return "C2 end-length"
	case CheckEndStart:
		return "C3 end-start"
	case CheckEndGeometry:
		return "C4 end-geometry"
	default:
		return fmt.Sprintf("CheckID(%d)", int(id))
	}
}

// Failure records one violated rule with the values in play.
type Failure struct {
	Check    CheckID `json:"check"`
	Expected uint64  `json:"expected"`
	Actual   uint64  `json:"actual"`
	Message  string  `json:"message"`
}

// Report is the outcome of evaluating every rule against a buffer.
type Report struct {
	FileLength int              `json:"file_length"`
	Registers  format.Registers `json:"registers"`
	Failures   []Failure        `json:"failures"`
}

// Ok reports whether the header is fully consistent.
func (r *Report) Ok() bool { return len(r.Failures) == 0 }

// Failed reports whether a specific check is among the failures.
func (r *Report) Failed(id CheckID) bool {
	for _, f := range r.Failures {
		if f.Check == id {
			return true
		}
	}
	return false
}

func (r *Report) fail(id CheckID, expected, actual uint64, msg string) {
	r.Failures = append(r.Failures, Failure{Check: id, Expected: expected, Actual: actual, Message: msg})
}

// Check evaluates all five rules against the current buffer state. The buffer
// is only read. A file too short to hold the register block cannot be checked
// at all and returns ErrTruncated.
func Check(data []byte) (*Report, error) {
	regs, err := format.ParseRegisters(data)
	if err != nil {
		return nil, err
	}

	r := &Report{FileLength: len(data), Registers: regs}
	fileLen := uint64(len(data))
	r0, r1, r2, r3 := uint64(regs.R0), uint64(regs.R1), uint64(regs.R2), uint64(regs.R3)

	// C0: declared total length.
	if r0 != fileLen {
		r.fail(CheckFileLength, fileLen, r0,
			fmt.Sprintf("R0 declares %d bytes but the file is %d", r0, fileLen))
	}

	// C1: mid-section length, derived from R3. Skipped when R3 < 0x28.
	if r3 >= format.RegisterAreaEnd {
		if exp := r3 - format.RegisterAreaEnd; r1 != exp {
			r.fail(CheckMidLength, exp, r1,
				fmt.Sprintf("R1 is %d, expected R3-0x28 = %d", r1, exp))
		}
	}

	// C3: end start must stay inside the file. R3 is the only register we
	// cannot derive from anything else, so this is a plausibility bound,
	// not an equality.
	if r3 > fileLen {
		r.fail(CheckEndStart, fileLen, r3,
			fmt.Sprintf("R3 places the end section at %d, beyond the %d-byte file", r3, fileLen))
	} else {
		// C2: end length, derived from the trusted R3. Only computable
		// when R3 is inside the file.
		if exp := fileLen - r3; r2 != exp {
			r.fail(CheckEndLength, exp, r2,
				fmt.Sprintf("R2 is %d, expected file length - R3 = %d", r2, exp))
		}
	}

	// C4: the two end registers must also agree with each other.
	if r3+r2 != fileLen {
		r.fail(CheckEndGeometry, fileLen, r3+r2,
			fmt.Sprintf("R3+R2 = %d does not equal the %d-byte file", r3+r2, fileLen))
	}

	return r, nil
}
