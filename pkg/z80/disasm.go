package z80

import "fmt"

// ReadFunc is the disassembler's memory source: a plain byte-at-address
// function, so callers can disassemble straight out of a live Bus, a
// ROM image, or a byte slice without the disassembler needing to know
// which.
type ReadFunc func(addr uint16) byte

// Line is one disassembled instruction.
type Line struct {
	Addr         uint16
	Bytes        []byte
	Mnemonic     string
	IsBranch     bool
	BranchTarget uint16
}

// Disassembler is the textual, side-effect-free Host: it walks the same
// decode tables *Z80 executes against, but every bus-cycle primitive just
// reads bytes and records them, and every semantic handler formats text
// instead of mutating register state.
type Disassembler struct {
	readFn ReadFunc
	pc     uint16
	bytes  []byte

	mnemonic     string
	isBranch     bool
	branchTarget uint16
	emitted      bool

	prefix      prefixState
	indexRp     indexRP
	nextIndexRp indexRP
}

// NewDisassembler creates a Disassembler reading through read.
func NewDisassembler(read ReadFunc) *Disassembler {
	return &Disassembler{readFn: read}
}

// DisassembleOne decodes the single instruction starting at addr.
func (dis *Disassembler) DisassembleOne(addr uint16) Line {
	dis.pc = addr
	dis.bytes = nil
	dis.mnemonic = ""
	dis.isBranch = false
	dis.branchTarget = 0
	dis.emitted = false
	for !dis.emitted {
		decodeStep(dis)
	}
	return Line{
		Addr:         addr,
		Bytes:        append([]byte(nil), dis.bytes...),
		Mnemonic:     dis.mnemonic,
		IsBranch:     dis.isBranch,
		BranchTarget: dis.branchTarget,
	}
}

// Disassemble decodes count consecutive instructions starting at addr,
// reading straight out of mem.
func Disassemble(mem []byte, addr uint16, count int) []Line {
	dis := NewDisassembler(func(a uint16) byte {
		if int(a) < len(mem) {
			return mem[a]
		}
		return 0
	})
	lines := make([]Line, 0, count)
	pc := addr
	for i := 0; i < count; i++ {
		line := dis.DisassembleOne(pc)
		lines = append(lines, line)
		pc += uint16(len(line.Bytes))
	}
	return lines
}

func (dis *Disassembler) emit(format string, args ...interface{}) {
	dis.mnemonic = fmt.Sprintf(format, args...)
	dis.emitted = true
}

// Byte-stream primitives.

func (dis *Disassembler) Fetch() byte    { return dis.rawByte() }
func (dis *Disassembler) ReadDisp() byte { return dis.rawByte() }
func (dis *Disassembler) ImmByte() byte  { return dis.rawByte() }

func (dis *Disassembler) rawByte() byte {
	v := dis.readFn(dis.pc)
	dis.bytes = append(dis.bytes, v)
	dis.pc++
	return v
}

func (dis *Disassembler) ImmWord() uint16 {
	lo := dis.rawByte()
	hi := dis.rawByte()
	return uint16(hi)<<8 | uint16(lo)
}

// Timed memory/IO access never happens during disassembly: the decoder's
// ExtraT calls land here as no-ops, and the other four exist only to
// satisfy Host and are never called.
func (dis *Disassembler) ReadMemT(addr uint16, tstates int) byte          { return 0 }
func (dis *Disassembler) WriteMemT(addr uint16, value byte, tstates int) {}
func (dis *Disassembler) InPort(port uint16) byte                        { return 0 }
func (dis *Disassembler) OutPort(port uint16, value byte, tstates int)   {}
func (dis *Disassembler) ExtraT(n int)                                   {}

func (dis *Disassembler) IndexKind() indexRP          { return dis.indexRp }
func (dis *Disassembler) SetIndexKind(k indexRP)      { dis.indexRp = k }
func (dis *Disassembler) NextIndexKind() indexRP      { return dis.nextIndexRp }
func (dis *Disassembler) SetNextIndexKind(k indexRP)  { dis.nextIndexRp = k }
func (dis *Disassembler) Prefix() prefixState         { return dis.prefix }
func (dis *Disassembler) SetPrefix(p prefixState)     { dis.prefix = p }
func (dis *Disassembler) SetDisableInt()              {}
func (dis *Disassembler) LastReadAddr() uint16        { return dis.pc }

func (dis *Disassembler) irpName() string {
	switch dis.indexRp {
	case indexIX:
		return "IX"
	case indexIY:
		return "IY"
	default:
		return "HL"
	}
}

func reg8Name(r Reg, d int8, idx indexRP) string {
	switch r {
	case RegB:
		return "B"
	case RegC:
		return "C"
	case RegD:
		return "D"
	case RegE:
		return "E"
	case RegH:
		switch idx {
		case indexIX:
			return "IXH"
		case indexIY:
			return "IYH"
		default:
			return "H"
		}
	case RegL:
		switch idx {
		case indexIX:
			return "IXL"
		case indexIY:
			return "IYL"
		default:
			return "L"
		}
	case RegAtHL:
		if idx == indexHL {
			return "(HL)"
		}
		name := "IX"
		if idx == indexIY {
			name = "IY"
		}
		return fmt.Sprintf("(%s%+d)", name, d)
	default:
		return "A"
	}
}

func pairName(rp RegPair, idx indexRP) string {
	switch rp {
	case PairBC:
		return "BC"
	case PairDE:
		return "DE"
	case PairHL:
		switch idx {
		case indexIX:
			return "IX"
		case indexIY:
			return "IY"
		default:
			return "HL"
		}
	default:
		return "SP"
	}
}

func pair2Name(rp RegPair2, idx indexRP) string {
	switch rp {
	case Pair2BC:
		return "BC"
	case Pair2DE:
		return "DE"
	case Pair2HL:
		switch idx {
		case indexIX:
			return "IX"
		case indexIY:
			return "IY"
		default:
			return "HL"
		}
	default:
		return "AF"
	}
}

var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func condName(cc Condition) string { return condNames[cc] }

var aluMnemonics = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

func aluMnemonic(op AluOp) string { return aluMnemonics[op] }

var rotNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

func rotName(op RotOp) string { return rotNames[op] }

var blockLdNames = [4]string{"LDI", "LDD", "LDIR", "LDDR"}
var blockCpNames = [4]string{"CPI", "CPD", "CPIR", "CPDR"}
var blockIoNames = [8]string{"INI", "IND", "INIR", "INDR", "OUTI", "OUTD", "OTIR", "OTDR"}

func (dis *Disassembler) OnSingleton(op Singleton) {
	switch op {
	case SNop:
		dis.emit("NOP")
	case SHalt:
		dis.emit("HALT")
	case SRlca:
		dis.emit("RLCA")
	case SRrca:
		dis.emit("RRCA")
	case SRla:
		dis.emit("RLA")
	case SRra:
		dis.emit("RRA")
	case SDaa:
		dis.emit("DAA")
	case SCpl:
		dis.emit("CPL")
	case SScf:
		dis.emit("SCF")
	case SCcf:
		dis.emit("CCF")
	case SDi:
		dis.emit("DI")
	case SEi:
		dis.emit("EI")
	case SExDeHl:
		dis.emit("EX DE, HL")
	case SExx:
		dis.emit("EXX")
	case SExAf:
		dis.emit("EX AF, AF'")
	case SJpIrp:
		dis.emit("JP (%s)", dis.irpName())
	case SLdSpIrp:
		dis.emit("LD SP, %s", dis.irpName())
	case SExSpIrp:
		dis.emit("EX (SP), %s", dis.irpName())
	case SRetn:
		dis.emit("RETN")
	case SReti:
		dis.emit("RETI")
	case SNeg:
		dis.emit("NEG")
	case SRld:
		dis.emit("RLD")
	case SRrd:
		dis.emit("RRD")
	case SLdIA:
		dis.emit("LD I, A")
	case SLdRA:
		dis.emit("LD R, A")
	case SLdAI:
		dis.emit("LD A, I")
	case SLdAR:
		dis.emit("LD A, R")
	}
}

func (dis *Disassembler) OnLdRR(dst, src Reg, d int8) {
	dis.emit("LD %s, %s", reg8Name(dst, d, dis.indexRp), reg8Name(src, d, dis.indexRp))
}

func (dis *Disassembler) OnAluR(op AluOp, r Reg, d int8) {
	dis.emit("%s %s", aluMnemonic(op), reg8Name(r, d, dis.indexRp))
}

func (dis *Disassembler) OnAluN(op AluOp, n byte) {
	dis.emit("%s $%02X", aluMnemonic(op), n)
}

func (dis *Disassembler) OnIncR(r Reg, d int8) { dis.emit("INC %s", reg8Name(r, d, dis.indexRp)) }
func (dis *Disassembler) OnDecR(r Reg, d int8) { dis.emit("DEC %s", reg8Name(r, d, dis.indexRp)) }

func (dis *Disassembler) OnLdRN(r Reg, d int8, n byte) {
	dis.emit("LD %s, $%02X", reg8Name(r, d, dis.indexRp), n)
}

func (dis *Disassembler) OnRet(cc *Condition) {
	if cc == nil {
		dis.emit("RET")
	} else {
		dis.emit("RET %s", condName(*cc))
	}
}

func (dis *Disassembler) OnLdRpNN(rp RegPair, nn uint16) {
	dis.emit("LD %s, $%04X", pairName(rp, dis.indexRp), nn)
}

func (dis *Disassembler) OnIncRp(rp RegPair) { dis.emit("INC %s", pairName(rp, dis.indexRp)) }
func (dis *Disassembler) OnDecRp(rp RegPair) { dis.emit("DEC %s", pairName(rp, dis.indexRp)) }

func (dis *Disassembler) OnAddIrpRp(rp RegPair) {
	dis.emit("ADD %s, %s", dis.irpName(), pairName(rp, dis.indexRp))
}

func (dis *Disassembler) OnAdcHlRp(rp RegPair) { dis.emit("ADC HL, %s", pairName(rp, indexHL)) }
func (dis *Disassembler) OnSbcHlRp(rp RegPair) { dis.emit("SBC HL, %s", pairName(rp, indexHL)) }

func (dis *Disassembler) OnPopRp(rp RegPair2)  { dis.emit("POP %s", pair2Name(rp, dis.indexRp)) }
func (dis *Disassembler) OnPushRp(rp RegPair2) { dis.emit("PUSH %s", pair2Name(rp, dis.indexRp)) }

func (dis *Disassembler) OnJr(cc *Condition, d int8) {
	target := dis.pc + uint16(int16(d))
	dis.isBranch = true
	dis.branchTarget = target
	if cc == nil {
		dis.emit("JR $%04X", target)
	} else {
		dis.emit("JR %s, $%04X", condName(*cc), target)
	}
}

func (dis *Disassembler) OnDjnz(d int8) {
	target := dis.pc + uint16(int16(d))
	dis.isBranch = true
	dis.branchTarget = target
	dis.emit("DJNZ $%04X", target)
}

func (dis *Disassembler) OnJp(cc *Condition, nn uint16) {
	dis.isBranch = true
	dis.branchTarget = nn
	if cc == nil {
		dis.emit("JP $%04X", nn)
	} else {
		dis.emit("JP %s, $%04X", condName(*cc), nn)
	}
}

func (dis *Disassembler) OnCall(cc *Condition, nn uint16) {
	dis.isBranch = true
	dis.branchTarget = nn
	if cc == nil {
		dis.emit("CALL $%04X", nn)
	} else {
		dis.emit("CALL %s, $%04X", condName(*cc), nn)
	}
}

func (dis *Disassembler) OnRst(y byte) {
	target := uint16(y) * 8
	dis.isBranch = true
	dis.branchTarget = target
	dis.emit("RST $%02X", target)
}

func (dis *Disassembler) OnLdAtNnA(nn uint16)  { dis.emit("LD ($%04X), A", nn) }
func (dis *Disassembler) OnLdAAtNn(nn uint16)  { dis.emit("LD A, ($%04X)", nn) }
func (dis *Disassembler) OnLdAtRpA(rp RegPair) { dis.emit("LD (%s), A", pairName(rp, indexHL)) }
func (dis *Disassembler) OnLdAAtRp(rp RegPair) { dis.emit("LD A, (%s)", pairName(rp, indexHL)) }

func (dis *Disassembler) OnLdAtNnIrp(nn uint16) { dis.emit("LD ($%04X), %s", nn, dis.irpName()) }
func (dis *Disassembler) OnLdIrpAtNn(nn uint16) { dis.emit("LD %s, ($%04X)", dis.irpName(), nn) }

func (dis *Disassembler) OnLdAtNnRp(nn uint16, rp RegPair) {
	dis.emit("LD ($%04X), %s", nn, pairName(rp, indexHL))
}

func (dis *Disassembler) OnLdRpAtNn(rp RegPair, nn uint16) {
	dis.emit("LD %s, ($%04X)", pairName(rp, indexHL), nn)
}

func (dis *Disassembler) OnBit(b byte, r Reg, d int8) {
	dis.emit("BIT %d, %s", b, reg8Name(r, d, dis.indexRp))
}

func (dis *Disassembler) OnRes(b byte, r Reg, d int8) {
	dis.emit("RES %d, %s", b, reg8Name(r, d, dis.indexRp))
}

func (dis *Disassembler) OnSet(b byte, r Reg, d int8) {
	dis.emit("SET %d, %s", b, reg8Name(r, d, dis.indexRp))
}

func (dis *Disassembler) OnRot(op RotOp, r Reg, d int8) {
	dis.emit("%s %s", rotName(op), reg8Name(r, d, dis.indexRp))
}

func (dis *Disassembler) OnIm(mode int) { dis.emit("IM %d", mode) }

func (dis *Disassembler) OnBlockLd(k BlockLdOp) { dis.emit(blockLdNames[k]) }
func (dis *Disassembler) OnBlockCp(k BlockCpOp) { dis.emit(blockCpNames[k]) }
func (dis *Disassembler) OnBlockIo(k BlockIoOp) { dis.emit(blockIoNames[k]) }

func (dis *Disassembler) OnInRC(r Reg) {
	if r == RegAtHL {
		dis.emit("IN (C)")
	} else {
		dis.emit("IN %s, (C)", reg8Name(r, 0, indexHL))
	}
}

func (dis *Disassembler) OnOutCR(r Reg) {
	if r == RegAtHL {
		dis.emit("OUT (C), 0")
	} else {
		dis.emit("OUT (C), %s", reg8Name(r, 0, indexHL))
	}
}

func (dis *Disassembler) OnInAN(n byte)  { dis.emit("IN A, ($%02X)", n) }
func (dis *Disassembler) OnOutNA(n byte) { dis.emit("OUT ($%02X), A", n) }

func (dis *Disassembler) OnNoniEd(op byte)        { dis.emit("db $ED, $%02X", op) }
func (dis *Disassembler) OnUnknownOpcode(op byte) { dis.emit("db $%02X", op) }
