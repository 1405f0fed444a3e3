package z80

import "github.com/pkg/errors"

// DecoderError is raised when the decoder reaches an opcode shape the
// tables in decoder.go do not define. It should not happen: decodeUnprefixed,
// decodeCBPrefixed and decodeEDPrefixed are exhaustive over their input
// byte's eight bits. It exists as a diagnostic backstop, not a normal
// control path; the emulated CPU's own behavior is never rejected this way.
type DecoderError struct {
	Addr uint16
	Op   byte
}

func (e *DecoderError) Error() string {
	return errors.Errorf("z80: no decode for opcode 0x%02X at 0x%04X", e.Op, e.Addr).Error()
}

// Step runs exactly one decode point: a full instruction, or (on a DD/FD
// prefix byte) just the prefix, deferring its instruction to the call
// after. See decodeStep for why that granularity is correct.
func (z *Z80) Step() {
	suppressed := z.disableInt
	z.disableInt = false
	if !suppressed && z.serviceInterrupts() {
		return
	}
	if z.Halted {
		z.tick(4)
		return
	}
	decodeStep(z)
}

// serviceInterrupts implements the acceptance sequence of SPEC_FULL's
// ambient interrupt-delivery component: NMI is edge-triggered and takes
// priority; a maskable IRQ is accepted only while IFF1 is set. An accepted
// interrupt consumes the whole Step; it never falls through into decoding
// whatever instruction now sits at the vector address.
func (z *Z80) serviceInterrupts() bool {
	edge := z.nmiLine && !z.nmiPrev
	z.nmiPrev = z.nmiLine
	if edge {
		z.acceptNMI()
		return true
	}
	if z.irqLine && z.IFF1 {
		z.acceptIRQ()
		return true
	}
	return false
}

func (z *Z80) acceptNMI() {
	z.Halted = false
	z.pushWord(z.PC, 3)
	z.IFF1 = false
	z.PC = 0x0066
	z.ExtraT(5) // 3 + 3 + 5 = 11T
}

func (z *Z80) acceptIRQ() {
	z.Halted = false
	z.IFF1 = false
	z.IFF2 = false
	switch z.IM {
	case 2:
		vecAddr := uint16(z.I)<<8 | uint16(z.irqVector)
		lo := z.bus.Read(vecAddr)
		hi := z.bus.Read(vecAddr + 1)
		z.dispatchInterrupt(uint16(hi)<<8 | uint16(lo))
	default: // IM0 and IM1: no peripheral bus to source a bespoke IM0
		// instruction from, so both dispatch like RST 0x38, the commonly
		// emulated IM0 behavior absent real hardware feeding the bus.
		z.dispatchInterrupt(0x0038)
	}
}

func (z *Z80) dispatchInterrupt(target uint16) {
	z.pushWord(z.PC, 3)
	z.PC = target
	z.WZ = target
	z.ExtraT(7) // 3 + 3 + 7 = 13T
}

func (z *Z80) pushWord(v uint16, tstates int) {
	z.WriteMemT(z.SP-1, byte(v>>8), tstates)
	z.WriteMemT(z.SP-2, byte(v), tstates)
	z.SP -= 2
}

func (z *Z80) popWord(tstates int) uint16 {
	lo := z.ReadMemT(z.SP, tstates)
	hi := z.ReadMemT(z.SP+1, tstates)
	z.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}

// OnUnknownOpcode is unreachable for a correctly exhaustive decoder; it is
// kept as a hard stop rather than a silent no-op so a decoding bug surfaces
// immediately instead of corrupting register state.
func (z *Z80) OnUnknownOpcode(op byte) {
	panic(&DecoderError{Addr: z.PC - 1, Op: op})
}

// OnNoniEd is the undefined half of the ED table: two NOPs' worth of
// nothing, with the one real effect that it still suppresses interrupt
// sampling for the step after it the same way EI and DD/FD do.
func (z *Z80) OnNoniEd(op byte) {
	z.SetDisableInt()
}

func (z *Z80) OnSingleton(op Singleton) {
	switch op {
	case SNop:
	case SHalt:
		z.Halted = true
	case SRlca:
		z.execRlca()
	case SRrca:
		z.execRrca()
	case SRla:
		z.execRla()
	case SRra:
		z.execRra()
	case SDaa:
		z.execDaa()
	case SCpl:
		z.A = ^z.A
		z.F = z.F&(flagC|flagZ|flagS|flagP) | flagN | flagH | (z.A & flagSYX)
	case SScf:
		z.F = z.F&(flagZ|flagS|flagP) | flagC | (z.A & flagSYX)
	case SCcf:
		h := boolFlag(z.F&flagC != 0, flagH)
		z.F = z.F&(flagZ|flagS|flagP) | h | boolFlag(z.F&flagC == 0, flagC) | (z.A & flagSYX)
	case SDi:
		z.IFF1 = false
		z.IFF2 = false
	case SEi:
		z.IFF1 = true
		z.IFF2 = true
		z.SetDisableInt()
	case SExDeHl:
		z.D, z.H = z.H, z.D
		z.E, z.L = z.L, z.E
	case SExx:
		z.Exx()
	case SExAf:
		z.ExAF()
	case SJpIrp:
		z.PC = z.indexRpValue()
	case SLdSpIrp:
		z.SP = z.indexRpValue()
		z.ExtraT(2)
	case SExSpIrp:
		z.execExSpIrp()
	case SRetn, SReti:
		z.IFF1 = z.IFF2
		z.PC = z.popWord(3)
	case SNeg:
		z.execNeg()
	case SRld:
		z.execRld()
	case SRrd:
		z.execRrd()
	case SLdIA:
		z.I = z.A
		z.ExtraT(1)
	case SLdRA:
		z.R = z.A
		z.ExtraT(1)
	case SLdAI:
		z.A = z.I
		z.setLdAIRFlags()
		z.ExtraT(1)
	case SLdAR:
		z.A = z.R
		z.setLdAIRFlags()
		z.ExtraT(1)
	}
}

// setLdAIRFlags implements LD A,I / LD A,R's undocumented leak of IFF2
// into P/V: S and Z follow A, H and N clear, P/V takes on IFF2's value.
func (z *Z80) setLdAIRFlags() {
	z.F = z.F&flagC | zf(z.A) | boolFlag(z.IFF2, flagP) | (z.A & flagSYX)
}
