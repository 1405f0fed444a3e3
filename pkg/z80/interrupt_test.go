package z80

import "testing"

func TestNmiIsEdgeTriggeredOncePerAssertion(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SP = 0x6000
	rig.cpu.PC = 0x0100
	rig.cpu.IFF1, rig.cpu.IFF2 = true, true

	rig.cpu.RequestNMI(true)
	rig.cpu.Step()
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0066)
	if rig.cpu.IFF1 {
		t.Fatalf("NMI should clear IFF1")
	}

	rig.cpu.PC = 0x0200
	rig.cpu.Step() // NMI line still held high, but no new edge: should not re-fire
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0201)

	rig.cpu.RequestNMI(false)
	rig.cpu.RequestNMI(true) // a fresh rising edge fires again
	rig.cpu.Step()
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0066)
}

func TestIrqAcceptedOnlyWhenIff1Set(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SP = 0x6000
	rig.cpu.PC = 0x0100
	rig.cpu.IFF1, rig.cpu.IFF2 = false, false
	rig.cpu.RequestIRQ(true)

	rig.cpu.Step() // masked: IFF1 clear
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0101)

	rig.cpu.IFF1 = true
	rig.cpu.Step() // IM0 default dispatches like RST 0x38
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0038)
}

func TestIm2DispatchesThroughVectorTable(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SP = 0x6000
	rig.cpu.PC = 0x0100
	rig.cpu.IFF1, rig.cpu.IFF2 = true, true
	rig.cpu.IM = 2
	rig.cpu.I = 0x40
	rig.cpu.SetIRQVector(0x10)
	rig.bus.Mem[0x4010] = 0x00
	rig.bus.Mem[0x4011] = 0x80

	rig.cpu.RequestIRQ(true)
	rig.cpu.Step()
	requireEqualU16(t, "PC", rig.cpu.PC, 0x8000)
}

// EI suppresses interrupt sampling for exactly one Step after it, even
// while an IRQ line is already held high.
func TestEiSuppressesInterruptForOneStep(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SP = 0x6000
	rig.load(0x0000, []byte{0xFB, 0x00}) // EI ; NOP
	rig.cpu.RequestIRQ(true)

	rig.cpu.Step() // EI: sets IFF1/IFF2 and disables sampling for the next Step
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0001)

	rig.cpu.Step() // NOP: the suppressed Step, IRQ still not taken
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0002)

	rig.cpu.Step() // sampling resumes; the held IRQ line is now accepted
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0038)
}
