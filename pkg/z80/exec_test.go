package z80

import "testing"

// Scenario 1 (SPEC_FULL §8): NOP costs exactly 4 T-states and advances PC by one.
func TestScenarioNop(t *testing.T) {
	rig := newZ80TestRig()
	rig.load(0x0000, []byte{0x00})
	rig.cpu.Step()
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0001)
	if rig.cpu.Cycles != 4 {
		t.Fatalf("Cycles = %d, want 4", rig.cpu.Cycles)
	}
}

// Scenario 2: LD A,0x42 loads the immediate and leaves flags untouched.
func TestScenarioLdAImm(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.F = 0xFF
	rig.load(0x0000, []byte{0x3E, 0x42})
	rig.cpu.Step()
	requireEqualU8(t, "A", rig.cpu.A, 0x42)
	requireEqualU8(t, "F", rig.cpu.F, 0xFF)
}

// Scenario 3: JP 0x1234 sets PC and the MEMPTR latch to the target.
func TestScenarioJpSetsMemptr(t *testing.T) {
	rig := newZ80TestRig()
	rig.load(0x0000, []byte{0xC3, 0x34, 0x12})
	rig.cpu.Step()
	requireEqualU16(t, "PC", rig.cpu.PC, 0x1234)
	requireEqualU16(t, "WZ", rig.cpu.WZ, 0x1234)
}

// Scenario 4: INC A on 0x7F produces 0x80 with S, H and P/V set and Z and N clear.
func TestScenarioIncAOverflow(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.A = 0x7F
	rig.load(0x0000, []byte{0x3C})
	rig.cpu.Step()
	requireEqualU8(t, "A", rig.cpu.A, 0x80)
	requireFlag(t, rig.cpu, flagS, "S", true)
	requireFlag(t, rig.cpu, flagZ, "Z", false)
	requireFlag(t, rig.cpu, flagH, "H", true)
	requireFlag(t, rig.cpu, flagP, "P/V", true)
	requireFlag(t, rig.cpu, flagN, "N", false)
}

// Scenario 5: ADD HL,HL sets MEMPTR to HL+1 (pre-add) and reports carry out of bit 15.
func TestScenarioAddHlHlCarryAndMemptr(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SetHL(0x8000)
	rig.load(0x0000, []byte{0x29})
	rig.cpu.Step()
	requireEqualU16(t, "HL", rig.cpu.HL(), 0x0000)
	requireEqualU16(t, "WZ", rig.cpu.WZ, 0x8001)
	requireFlag(t, rig.cpu, flagC, "C", true)
}

// Scenario 6: BIT 0,A on an odd value clears Z and leaves A unmodified.
func TestScenarioBitZeroA(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.A = 0x01
	rig.load(0x0000, []byte{0xCB, 0x47})
	rig.cpu.Step()
	requireEqualU8(t, "A", rig.cpu.A, 0x01)
	requireFlag(t, rig.cpu, flagZ, "Z", false)
	requireFlag(t, rig.cpu, flagH, "H", true)
	requireFlag(t, rig.cpu, flagN, "N", false)
}

// Scenario 7: DD CB 05 C6 is SET 0,(IX+5): a two-step decode (DD prefix, then
// the CB-indexed instruction) that must still act as a single atomic write.
func TestScenarioDdCbSetIndexed(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.IX = 0x3000
	rig.load(0x0000, []byte{0xDD, 0xCB, 0x05, 0xC6})
	rig.cpu.Step() // consumes the DD prefix only
	if rig.cpu.PC != 0x0001 {
		t.Fatalf("after DD prefix step, PC = 0x%04X, want 0x0001", rig.cpu.PC)
	}
	rig.cpu.Step() // consumes CB 05 C6
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0004)
	got := rig.bus.Mem[0x3005]
	requireEqualU8(t, "(IX+5)", got, 0x01)
}

// Scenario 8: LDIR with BC=3 copies three bytes and decrements BC to zero,
// leaving HL/DE advanced past the block and P/V clear on the terminating step.
func TestScenarioLdirCopiesBlock(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SetHL(0x2000)
	rig.cpu.SetDE(0x3000)
	rig.cpu.SetBC(0x0003)
	copy(rig.bus.Mem[0x2000:], []byte{0xAA, 0xBB, 0xCC})
	rig.load(0x0010, []byte{0xED, 0xB0})
	for i := 0; i < 3; i++ {
		rig.cpu.Step() // LDIR rewinds its own PC until BC==0
	}
	requireEqualU8(t, "(0x3000)", rig.bus.Mem[0x3000], 0xAA)
	requireEqualU8(t, "(0x3001)", rig.bus.Mem[0x3001], 0xBB)
	requireEqualU8(t, "(0x3002)", rig.bus.Mem[0x3002], 0xCC)
	requireEqualU16(t, "BC", rig.cpu.BC(), 0x0000)
	requireEqualU16(t, "HL", rig.cpu.HL(), 0x2003)
	requireEqualU16(t, "DE", rig.cpu.DE(), 0x3003)
	requireFlag(t, rig.cpu, flagP, "P/V", false)
}

func TestAluAddSetsCarryAndHalfCarry(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.A = 0xFF
	rig.cpu.B = 0x01
	rig.load(0x0000, []byte{0x80}) // ADD A,B
	rig.cpu.Step()
	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	requireFlag(t, rig.cpu, flagZ, "Z", true)
	requireFlag(t, rig.cpu, flagC, "C", true)
	requireFlag(t, rig.cpu, flagH, "H", true)
}

func TestCpDoesNotModifyAccumulator(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.A = 0x10
	rig.cpu.B = 0x10
	rig.load(0x0000, []byte{0xB8}) // CP B
	rig.cpu.Step()
	requireEqualU8(t, "A", rig.cpu.A, 0x10)
	requireFlag(t, rig.cpu, flagZ, "Z", true)
}

func TestPushPopRoundTrips(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SP = 0x4000
	rig.cpu.SetBC(0xBEEF)
	rig.load(0x0000, []byte{0xC5, 0xC1}) // PUSH BC ; POP BC
	rig.cpu.Step()                       // PUSH BC
	requireEqualU16(t, "SP", rig.cpu.SP, 0x3FFE)
	rig.cpu.SetBC(0x0000)
	rig.cpu.Step() // POP BC
	requireEqualU16(t, "BC", rig.cpu.BC(), 0xBEEF)
	requireEqualU16(t, "SP", rig.cpu.SP, 0x4000)
}

func TestCallAndRetRoundTrip(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.SP = 0x5000
	rig.load(0x0000, []byte{0xCD, 0x10, 0x00}) // CALL 0x0010
	rig.bus.Mem[0x0010] = 0xC9                 // RET
	rig.cpu.Step()                             // CALL
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0010)
	rig.cpu.Step() // RET
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0003)
	requireEqualU16(t, "SP", rig.cpu.SP, 0x5000)
}

func TestDjnzLoopsUntilZero(t *testing.T) {
	rig := newZ80TestRig()
	rig.cpu.B = 3
	rig.load(0x0000, []byte{0x10, 0xFE}) // DJNZ -2 (loop on itself)
	for rig.cpu.B != 0 {
		rig.cpu.Step()
	}
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0002)
}
