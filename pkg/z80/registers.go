package z80

// indexRP identifies which register pair HL-shaped operands currently
// refer to: the real HL, or one of the index registers substituted in by
// a DD/FD prefix.
type indexRP int

const (
	indexHL indexRP = iota
	indexIX
	indexIY
)

// Z80 is the processor state. It is mutated only by the execution handler
// set (the Host methods implemented in exec*.go); the decoder and the
// disassembler never write to it. All arithmetic wraps per Go's unsigned
// integer semantics, matching the source's explicit wrapping contract.
type Z80 struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte

	A2, F2 byte
	B2, C2 byte
	D2, E2 byte
	H2, L2 byte

	IX, IY uint16
	SP, PC uint16
	I, R   byte

	// WZ is the internal MEMPTR latch. Invisible to programs; affects the
	// YX flags of indexed BIT and is otherwise only useful for diagnostics.
	WZ uint16

	IFF1, IFF2 bool
	IM         int

	// disableInt suppresses maskable-interrupt acceptance for exactly one
	// subsequent Step after EI or a DD/FD prefix byte. Cleared at the top
	// of every Step, before the suppressed value is consulted.
	disableInt bool

	// Halted is set by HALT and cleared by an accepted interrupt.
	Halted bool

	// Interrupt request lines, owned by the integrator via RequestIRQ /
	// RequestNMI. nmiPrev implements edge-triggering: NMI is serviced once
	// per rising edge of nmiLine, not on every Step while it is held high.
	irqLine   bool
	nmiLine   bool
	nmiPrev   bool
	irqVector byte

	// lastReadAddr records the address of the most recent read, for
	// diagnostics only; nothing in the core reads it back.
	lastReadAddr uint16

	// Cycles is the running T-state counter, the integrator-owned sink
	// that tick advances.
	Cycles uint64

	// decoder state
	prefix       prefixState
	indexRp      indexRP
	nextIndexRp  indexRP

	bus Bus
}

type prefixState int

const (
	prefixNone prefixState = iota
	prefixCB
	prefixED
)

// NewZ80 creates a processor attached to bus and resets it.
func NewZ80(bus Bus) *Z80 {
	z := &Z80{bus: bus}
	z.Reset()
	return z
}

// Reset restores the power-on state: all registers zero except SP, which
// is set to 0xFFFF per convention, and irqVector, which resets to 0xFF to
// mean "no vector asserted" rather than the otherwise-valid vector 0.
func (z *Z80) Reset() {
	*z = Z80{bus: z.bus}
	z.SP = 0xFFFF
	z.irqVector = 0xFF
}

func (z *Z80) BC() uint16 { return uint16(z.B)<<8 | uint16(z.C) }
func (z *Z80) DE() uint16 { return uint16(z.D)<<8 | uint16(z.E) }
func (z *Z80) HL() uint16 { return uint16(z.H)<<8 | uint16(z.L) }
func (z *Z80) AF() uint16 { return uint16(z.A)<<8 | uint16(z.F) }

func (z *Z80) SetBC(v uint16) { z.B, z.C = byte(v>>8), byte(v) }
func (z *Z80) SetDE(v uint16) { z.D, z.E = byte(v>>8), byte(v) }
func (z *Z80) SetHL(v uint16) { z.H, z.L = byte(v>>8), byte(v) }
func (z *Z80) SetAF(v uint16) { z.A, z.F = byte(v>>8), byte(v) }

func (z *Z80) BC2() uint16 { return uint16(z.B2)<<8 | uint16(z.C2) }
func (z *Z80) DE2() uint16 { return uint16(z.D2)<<8 | uint16(z.E2) }
func (z *Z80) HL2() uint16 { return uint16(z.H2)<<8 | uint16(z.L2) }
func (z *Z80) AF2() uint16 { return uint16(z.A2)<<8 | uint16(z.F2) }

func (z *Z80) SetBC2(v uint16) { z.B2, z.C2 = byte(v>>8), byte(v) }
func (z *Z80) SetDE2(v uint16) { z.D2, z.E2 = byte(v>>8), byte(v) }
func (z *Z80) SetHL2(v uint16) { z.H2, z.L2 = byte(v>>8), byte(v) }
func (z *Z80) SetAF2(v uint16) { z.A2, z.F2 = byte(v>>8), byte(v) }

// ExAF swaps AF with the shadow AF'.
func (z *Z80) ExAF() {
	z.A, z.A2 = z.A2, z.A
	z.F, z.F2 = z.F2, z.F
}

// Exx swaps BC/DE/HL with the shadow bank. AF is never swapped by EXX.
func (z *Z80) Exx() {
	z.B, z.B2 = z.B2, z.B
	z.C, z.C2 = z.C2, z.C
	z.D, z.D2 = z.D2, z.D
	z.E, z.E2 = z.E2, z.E
	z.H, z.H2 = z.H2, z.H
	z.L, z.L2 = z.L2, z.L
}

// Flag reports whether the given flag bit is set in F.
func (z *Z80) Flag(mask byte) bool { return z.F&mask != 0 }

func (z *Z80) setFlag(mask byte, on bool) {
	if on {
		z.F |= mask
	} else {
		z.F &^= mask
	}
}

// indexHigh/indexLow return the current HL-or-index pair's high/low byte,
// honoring the decoder's current substitution (H/L vs IXH/IXL vs IYH/IYL).
func (z *Z80) indexHigh() byte {
	switch z.indexRp {
	case indexIX:
		return byte(z.IX >> 8)
	case indexIY:
		return byte(z.IY >> 8)
	default:
		return z.H
	}
}

func (z *Z80) indexLow() byte {
	switch z.indexRp {
	case indexIX:
		return byte(z.IX)
	case indexIY:
		return byte(z.IY)
	default:
		return z.L
	}
}

func (z *Z80) setIndexHigh(v byte) {
	switch z.indexRp {
	case indexIX:
		z.IX = uint16(v)<<8 | (z.IX & 0xFF)
	case indexIY:
		z.IY = uint16(v)<<8 | (z.IY & 0xFF)
	default:
		z.H = v
	}
}

func (z *Z80) setIndexLow(v byte) {
	switch z.indexRp {
	case indexIX:
		z.IX = (z.IX & 0xFF00) | uint16(v)
	case indexIY:
		z.IY = (z.IY & 0xFF00) | uint16(v)
	default:
		z.L = v
	}
}

// IndexKind, SetIndexKind, NextIndexKind, SetNextIndexKind, Prefix, SetPrefix,
// SetDisableInt and LastReadAddr implement the decoder-state half of Host.
func (z *Z80) IndexKind() indexRP          { return z.indexRp }
func (z *Z80) SetIndexKind(k indexRP)      { z.indexRp = k }
func (z *Z80) NextIndexKind() indexRP      { return z.nextIndexRp }
func (z *Z80) SetNextIndexKind(k indexRP)  { z.nextIndexRp = k }
func (z *Z80) Prefix() prefixState         { return z.prefix }
func (z *Z80) SetPrefix(p prefixState)     { z.prefix = p }
func (z *Z80) SetDisableInt()              { z.disableInt = true }
func (z *Z80) LastReadAddr() uint16        { return z.lastReadAddr }

// readReg8 and writeReg8 resolve an operand named by the decoder's reg[r]
// field, honoring whatever index substitution is currently active: H/L
// become IXH/IXL/IYH/IYL, and (HL) becomes (IX+d)/(IY+d), under a DD/FD
// prefix. d is only consulted for RegAtHL.
func (z *Z80) readReg8(r Reg, d int8) byte {
	switch r {
	case RegB:
		return z.B
	case RegC:
		return z.C
	case RegD:
		return z.D
	case RegE:
		return z.E
	case RegH:
		return z.indexHigh()
	case RegL:
		return z.indexLow()
	case RegAtHL:
		return z.ReadMemT(z.effectiveAddr(d), 3)
	default: // RegA
		return z.A
	}
}

func (z *Z80) writeReg8(r Reg, d int8, v byte) {
	switch r {
	case RegB:
		z.B = v
	case RegC:
		z.C = v
	case RegD:
		z.D = v
	case RegE:
		z.E = v
	case RegH:
		z.setIndexHigh(v)
	case RegL:
		z.setIndexLow(v)
	case RegAtHL:
		z.WriteMemT(z.effectiveAddr(d), v, 3)
	default: // RegA
		z.A = v
	}
}

// readRP/writeRP access the rp[p] table (BC DE HL SP). The HL slot
// substitutes to the current index register under a DD/FD prefix; BC, DE
// and SP never do.
func (z *Z80) readRP(rp RegPair) uint16 {
	switch rp {
	case PairBC:
		return z.BC()
	case PairDE:
		return z.DE()
	case PairHL:
		return z.indexRpValue()
	default:
		return z.SP
	}
}

func (z *Z80) writeRP(rp RegPair, v uint16) {
	switch rp {
	case PairBC:
		z.SetBC(v)
	case PairDE:
		z.SetDE(v)
	case PairHL:
		z.setIndexRpValue(v)
	default:
		z.SP = v
	}
}

// readRP2/writeRP2 access the rp2[p] table (BC DE HL AF), used by PUSH/POP.
// The AF slot is never substituted; HL is, the same as in readRP.
func (z *Z80) readRP2(rp RegPair2) uint16 {
	switch rp {
	case Pair2BC:
		return z.BC()
	case Pair2DE:
		return z.DE()
	case Pair2HL:
		return z.indexRpValue()
	default:
		return z.AF()
	}
}

func (z *Z80) writeRP2(rp RegPair2, v uint16) {
	switch rp {
	case Pair2BC:
		z.SetBC(v)
	case Pair2DE:
		z.SetDE(v)
	case Pair2HL:
		z.setIndexRpValue(v)
	default:
		z.SetAF(v)
	}
}

// effectiveAddr is the address RegAtHL resolves to: plain HL when no index
// substitution is active, or irp+d when one is.
func (z *Z80) effectiveAddr(d int8) uint16 {
	if z.indexRp == indexHL {
		return z.HL()
	}
	return uint16(int32(z.indexRpValue()) + int32(d))
}

// indexRpValue/setIndexRpValue access the current HL-or-index pair as a
// whole 16-bit value.
func (z *Z80) indexRpValue() uint16 {
	switch z.indexRp {
	case indexIX:
		return z.IX
	case indexIY:
		return z.IY
	default:
		return z.HL()
	}
}

func (z *Z80) setIndexRpValue(v uint16) {
	switch z.indexRp {
	case indexIX:
		z.IX = v
	case indexIY:
		z.IY = v
	default:
		z.SetHL(v)
	}
}
