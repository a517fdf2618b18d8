package format

import "testing"

func TestIntegerPrimitivesLittleEndian(t *testing.T) {
	b := make([]byte, 8)

	PutU32(b, 0, 0x0A0B0C0D)
	want := []byte{0x0D, 0x0C, 0x0B, 0x0A}
	for i, w := range want {
		if b[i] != w {
			t.Fatalf("byte %d = %02X, want %02X", i, b[i], w)
		}
	}
	if got := ReadU32(b, 0); got != 0x0A0B0C0D {
		t.Errorf("ReadU32 = %#X", got)
	}

	PutI32(b, 4, -2)
	if got := ReadI32(b, 4); got != -2 {
		t.Errorf("ReadI32 = %d", got)
	}
	if b[4] != 0xFE || b[7] != 0xFF {
		t.Errorf("signed encoding not little-endian two's complement: % X", b[4:8])
	}
}
