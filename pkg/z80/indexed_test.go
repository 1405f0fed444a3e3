package z80

import "testing"

// DD CB d 00 is the undocumented "RLC (IX+d),B" form: it operates on
// (IX+d) but also copies the result into B.
func TestIndexedCbCopiesResultIntoNamedRegister(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.IX = 0x5000
	rig.bus.Mem[0x5005] = 0x81
	rig.load(0x0000, []byte{0xDD, 0xCB, 0x05, 0x00})

	rig.cpu.Step() // DD prefix
	rig.cpu.Step() // CB 05 00

	requireEqualU8(t, "(IX+5)", rig.bus.Mem[0x5005], 0x03)
	requireEqualU8(t, "B", rig.cpu.B, 0x03)
	requireFlag(t, rig.cpu, flagC, "C", true)
}

// LD H,n under an FD prefix targets IYH, not the real H.
func TestFdPrefixSubstitutesIyh(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.IY = 0x1234
	rig.cpu.H = 0xAA
	rig.load(0x0000, []byte{0xFD, 0x26, 0x99}) // LD IYH,$99

	rig.cpu.Step() // FD prefix
	rig.cpu.Step() // LD H,$99 (substituted to IYH)

	requireEqualU16(t, "IY", rig.cpu.IY, 0x9934)
	requireEqualU8(t, "H", rig.cpu.H, 0xAA)
}

// LD (IX+d),n writes through the effective address, never through H/L.
func TestIndexedLoadWritesEffectiveAddress(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.IX = 0x6000
	rig.cpu.SetHL(0x7000)
	rig.load(0x0000, []byte{0xDD, 0x36, 0x0A, 0x55}) // LD (IX+10),$55

	rig.cpu.Step() // DD prefix
	rig.cpu.Step() // LD (HL),n, substituted to (IX+10)

	requireEqualU8(t, "(IX+10)", rig.bus.Mem[0x600A], 0x55)
	if rig.bus.Mem[0x700A] != 0x00 {
		t.Fatalf("write should not have touched real HL-relative memory")
	}
}
