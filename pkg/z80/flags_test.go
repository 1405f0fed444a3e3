package z80

import "testing"

func TestParity8(t *testing.T) {
	cases := []struct {
		n    byte
		even bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0xFF, true},
		{0x0F, true},
		{0x07, false},
	}
	for _, c := range cases {
		if got := parity8(c.n); got != c.even {
			t.Errorf("parity8(0x%02X) = %v, want %v", c.n, got, c.even)
		}
	}
}

func TestHfAriMatchesBit3Carry(t *testing.T) {
	// 0x0F + 0x01 = 0x10: carry out of bit 3, H should be set.
	r := 0x0F + 0x01
	if hfAri(byte(r), 0x0F, 0x01) == 0 {
		t.Fatalf("expected half-carry set for 0x0F + 0x01")
	}
	r2 := 0x0E + 0x01
	if hfAri(byte(r2), 0x0E, 0x01) != 0 {
		t.Fatalf("expected half-carry clear for 0x0E + 0x01")
	}
}

func TestPfAriDetectsSignedOverflow(t *testing.T) {
	// 0x7F + 0x01 = 0x80: signed overflow (positive + positive = negative).
	if pfAri(0x7F+0x01, 0x7F, 0x01) == 0 {
		t.Fatalf("expected overflow set for 0x7F + 0x01")
	}
	// 0x01 + 0x01 = 0x02: no overflow.
	if pfAri(0x01+0x01, 0x01, 0x01) != 0 {
		t.Fatalf("expected overflow clear for 0x01 + 0x01")
	}
}

func TestIncDecHalfCarryAndOverflowEdges(t *testing.T) {
	if hfInc(0x10) == 0 {
		t.Fatalf("hfInc(0x10) should set H: 0x0F INC rolls to 0x10")
	}
	if hfInc(0x0E) != 0 {
		t.Fatalf("hfInc(0x0E) should clear H")
	}
	if pfInc(0x80) == 0 {
		t.Fatalf("pfInc(0x80) should set P/V: 0x7F INC wraps to 0x80")
	}
	if hfDec(0xFF) == 0 {
		t.Fatalf("hfDec(0xFF) should set H (0x00 DEC borrows into bit 4)")
	}
	if pfDec(0x7F) == 0 {
		t.Fatalf("pfDec(0x7F) should set P/V: 0x80 DEC wraps to 0x7F")
	}
}

func TestHfAri16AndPfAri16(t *testing.T) {
	a, b := uint16(0x0FFF), uint16(0x0001)
	r := a + b
	if hfAri16(r, a, b) == 0 {
		t.Fatalf("expected 16-bit half-carry set for 0x0FFF + 0x0001")
	}
	a2, b2 := uint16(0x7FFF), uint16(0x0001)
	sum := int32(a2) + int32(b2)
	if pfAri16(sum, a2, b2) == 0 {
		t.Fatalf("expected 16-bit overflow set for 0x7FFF + 0x0001")
	}
}
