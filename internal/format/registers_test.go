package format

import (
	"errors"
	"testing"
)

func TestParseRegisters(t *testing.T) {
	b := make([]byte, 0x40)
	PutU32(b, RegR0Offset, 0x40)
	PutU32(b, RegR1Offset, 0x08)
	PutU32(b, RegR2Offset, 0x10)
	PutU32(b, RegR3Offset, 0x30)

	regs, err := ParseRegisters(b)
	if err != nil {
		t.Fatalf("ParseRegisters: %v", err)
	}
	if regs.R0 != 0x40 || regs.R1 != 0x08 || regs.R2 != 0x10 || regs.R3 != 0x30 {
		t.Fatalf("register mismatch: %+v", regs)
	}
}

func TestParseRegistersTruncated(t *testing.T) {
	b := make([]byte, RegisterAreaEnd-1)
	if _, err := ParseRegisters(b); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestPutRegister(t *testing.T) {
	b := make([]byte, RegisterAreaEnd)
	if err := PutRegister(b, 2, 0xDEAD); err != nil {
		t.Fatalf("PutRegister: %v", err)
	}
	if got := ReadU32(b, RegR2Offset); got != 0xDEAD {
		t.Fatalf("R2 = 0x%X, want 0xDEAD", got)
	}
	// Only the 4 register bytes may change.
	for i, v := range b {
		if i >= RegR2Offset && i < RegR2Offset+RegisterWidth {
			continue
		}
		if v != 0 {
			t.Fatalf("byte 0x%X changed to 0x%02X", i, v)
		}
	}
	if err := PutRegister(b, 4, 0); err == nil {
		t.Fatalf("expected error for register index 4")
	}
	if err := PutRegister(b[:4], 0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}
