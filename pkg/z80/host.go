package z80

// Host is the capability bundle the shared decoder dispatches through.
// It replaces the CRTP self-type the source used to inject derived-class
// hooks into a base decoder template: two concrete implementations realize
// it, *Z80 (execution, stateful, timed) and *Disassembler (textual,
// side-effect-free, untimed). decodeStep is written once against
// this interface and never cares which one it is talking to.
type Host interface {
	// Byte-stream primitives. Fetch reads an opcode/prefix byte at PC and
	// advances PC; ReadDisp reads a signed displacement byte the same way;
	// ImmByte/ImmWord read 8/16-bit immediates. Each bakes in whatever
	// timing its concrete Host cares about (4T/3T ticks for execution,
	// nothing for disassembly).
	Fetch() byte
	ReadDisp() byte
	ImmByte() byte
	ImmWord() uint16

	// ReadMemT/WriteMemT perform a generic timed memory access; InPort/
	// OutPort the port equivalent. ExtraT accounts for the odd T-state
	// additions the source calls out per instruction: the internal address
	// computation on indexed forms, the extra exec cycle on 16-bit adds,
	// the one-T-state gap between reading CALL's address and pushing PC.
	ReadMemT(addr uint16, tstates int) byte
	WriteMemT(addr uint16, value byte, tstates int)
	InPort(port uint16) byte
	OutPort(port uint16, value byte, tstates int)
	ExtraT(n int)

	// Decoder state, mirroring the source's decoder_state.
	IndexKind() indexRP
	SetIndexKind(k indexRP)
	NextIndexKind() indexRP
	SetNextIndexKind(k indexRP)
	Prefix() prefixState
	SetPrefix(p prefixState)
	SetDisableInt()
	LastReadAddr() uint16

	// Semantic handlers, one per decoded instruction shape. A nil
	// *Condition means unconditional.
	OnSingleton(op Singleton)
	OnLdRR(dst, src Reg, d int8)
	OnAluR(op AluOp, r Reg, d int8)
	OnAluN(op AluOp, n byte)
	OnIncR(r Reg, d int8)
	OnDecR(r Reg, d int8)
	OnLdRN(r Reg, d int8, n byte)
	OnRet(cc *Condition)
	OnLdRpNN(rp RegPair, nn uint16)
	OnIncRp(rp RegPair)
	OnDecRp(rp RegPair)
	OnAddIrpRp(rp RegPair)
	OnAdcHlRp(rp RegPair)
	OnSbcHlRp(rp RegPair)
	OnPopRp(rp RegPair2)
	OnPushRp(rp RegPair2)
	OnJr(cc *Condition, d int8)
	OnDjnz(d int8)
	OnJp(cc *Condition, nn uint16)
	OnCall(cc *Condition, nn uint16)
	OnRst(y byte)
	OnLdAtNnA(nn uint16)
	OnLdAAtNn(nn uint16)
	OnLdAtRpA(rp RegPair) // rp is PairBC or PairDE
	OnLdAAtRp(rp RegPair) // rp is PairBC or PairDE
	OnLdAtNnIrp(nn uint16)
	OnLdIrpAtNn(nn uint16)
	OnLdAtNnRp(nn uint16, rp RegPair)
	OnLdRpAtNn(rp RegPair, nn uint16)
	OnBit(b byte, r Reg, d int8)
	OnRes(b byte, r Reg, d int8)
	OnSet(b byte, r Reg, d int8)
	OnRot(op RotOp, r Reg, d int8)
	OnIm(mode int)
	OnBlockLd(k BlockLdOp)
	OnBlockCp(k BlockCpOp)
	OnBlockIo(k BlockIoOp)
	OnInRC(r Reg)
	OnOutCR(r Reg)
	OnInAN(n byte)
	OnOutNA(n byte)
	OnNoniEd(op byte)
	OnUnknownOpcode(op byte)
}

// Reg is the 3-bit register field reg[r]: B C D E H L (HL) A.
type Reg int

const (
	RegB Reg = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAtHL
	RegA
)

// RegPair is the 2-bit field rp[p]: BC DE HL SP.
type RegPair int

const (
	PairBC RegPair = iota
	PairDE
	PairHL
	PairSP
)

// RegPair2 is the 2-bit field rp2[p]: BC DE HL AF.
type RegPair2 int

const (
	Pair2BC RegPair2 = iota
	Pair2DE
	Pair2HL
	Pair2AF
)

// Condition is the 3-bit field cc[y]: NZ Z NC C PO PE P M.
type Condition int

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM
)

// AluOp is the 3-bit field alu[y]: ADD ADC SUB SBC AND XOR OR CP.
type AluOp int

const (
	AluAdd AluOp = iota
	AluAdc
	AluSub
	AluSbc
	AluAnd
	AluXor
	AluOr
	AluCp
)

// RotOp is the CB-table y field for rotate/shift: RLC RRC RL RR SLA SRA SLL SRL.
// SLL (y=6) is the undocumented shift that sets bit 0 instead of clearing it.
type RotOp int

const (
	RotRLC RotOp = iota
	RotRRC
	RotRL
	RotRR
	RotSLA
	RotSRA
	RotSLL
	RotSRL
)

type BlockLdOp int

const (
	BlockLDI BlockLdOp = iota
	BlockLDD
	BlockLDIR
	BlockLDDR
)

type BlockCpOp int

const (
	BlockCPI BlockCpOp = iota
	BlockCPD
	BlockCPIR
	BlockCPDR
)

type BlockIoOp int

const (
	BlockINI BlockIoOp = iota
	BlockIND
	BlockINIR
	BlockINDR
	BlockOUTI
	BlockOUTD
	BlockOTIR
	BlockOTDR
)

// Singleton enumerates the no-operand / fixed-operand instructions that
// would otherwise each need their own Host method.
type Singleton int

const (
	SNop Singleton = iota
	SHalt
	SRlca
	SRrca
	SRla
	SRra
	SDaa
	SCpl
	SScf
	SCcf
	SDi
	SEi
	SExDeHl
	SExx
	SExAf
	SJpIrp
	SLdSpIrp
	SExSpIrp
	SRetn
	SReti
	SNeg
	SRld
	SRrd
	SLdIA
	SLdRA
	SLdAI
	SLdAR
)
