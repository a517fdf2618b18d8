package verify

import (
	"fmt"
	"math"

	"github.com/joshuapare/cdfkit/internal/format"
)

// RegisterChange records one register rewrite performed by Repair.
type RegisterChange struct {
	Register string `json:"register"`
	Offset   int    `json:"offset"`
	Old      uint32 `json:"old"`
	New      uint32 `json:"new"`
}

// RepairResult lists what Repair rewrote. An empty Changes slice means the
// header was already consistent.
type RepairResult struct {
	Changes []RegisterChange `json:"changes"`
}

// Repair conservatively rewrites the derivable registers in place.
//
// The policy treats R3 as ground truth for where the end section starts: R0
// is recomputed from the actual file length, R1 from R3, and R2 as
// file length - R3 (which makes the C4 cross-check hold by construction). R3
// itself is never invented. When R3 is implausible — below the end of the
// register block, or beyond the end of the file — repair refuses with
// ErrUnrepairable rather than guess, and the buffer is left untouched.
//
// Only the three 4-byte register fields are ever written; no payload byte
// moves and the file length does not change.
func Repair(data []byte) (*RepairResult, error) {
	regs, err := format.ParseRegisters(data)
	if err != nil {
		return nil, err
	}

	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d-byte file cannot be described by 32-bit registers",
			format.ErrUnrepairable, len(data))
	}
	fileLen := uint32(len(data))

	if regs.R3 < format.RegisterAreaEnd {
		return nil, fmt.Errorf("%w: R3 = %d would start the end section inside the header",
			format.ErrUnrepairable, regs.R3)
	}
	if regs.R3 > fileLen {
		return nil, fmt.Errorf("%w: R3 = %d is beyond the %d-byte file",
			format.ErrUnrepairable, regs.R3, fileLen)
	}

	want := [4]struct {
		idx  int
		name string
		old  uint32
		new  uint32
	}{
		{0, "R0", regs.R0, fileLen},
		{1, "R1", regs.R1, regs.R3 - format.RegisterAreaEnd},
		{2, "R2", regs.R2, fileLen - regs.R3},
		{3, "R3", regs.R3, regs.R3}, // trusted, never rewritten
	}

	res := &RepairResult{}
	for _, w := range want {
		if w.new == w.old {
			continue
		}
		if err := format.PutRegister(data, w.idx, w.new); err != nil {
			return nil, err
		}
		res.Changes = append(res.Changes, RegisterChange{
			Register: w.name,
			Offset:   format.RegisterOffsets[w.idx],
			Old:      w.old,
			New:      w.new,
		})
	}
	return res, nil
}
