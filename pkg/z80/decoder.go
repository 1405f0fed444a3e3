package z80

// decodeStep runs exactly one decode point: either a complete instruction
// (dispatched all the way through its Host handler) or, for a DD/FD prefix
// byte, just that byte. A DD/FD byte ticks its 4T and returns with the
// index substitution recorded for the next call; everything else ticks and
// dispatches to completion before returning. This mirrors the source's own
// per-call granularity, which is also the real hardware's: a DD/FD prefix
// is its own M1 cycle.
func decodeStep(h Host) {
	h.SetIndexKind(h.NextIndexKind())
	h.SetNextIndexKind(indexHL)
	decodeUnprefixed(h)
}

func decodeUnprefixed(h Host) {
	op := h.Fetch()
	x := op >> 6 & 3
	y := op >> 3 & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		decodeX0(h, y, z, p, q)
	case 1:
		if z == 6 && y == 6 {
			h.OnSingleton(SHalt)
		} else {
			// Only one of dst/src can be (HL)/(irp+d): LD r,r' never has
			// both operands memory.
			var d int8
			if y == 6 {
				d = dispForReg(h, RegAtHL)
			} else if z == 6 {
				d = dispForReg(h, RegAtHL)
			}
			h.OnLdRR(Reg(y), Reg(z), d)
		}
	case 2:
		d := dispForReg(h, Reg(z))
		h.OnAluR(AluOp(y), Reg(z), d)
	case 3:
		decodeX3(h, y, z, p, q)
	}
}

func decodeX0(h Host, y, z, p, q byte) {
	switch z {
	case 0:
		switch y {
		case 0:
			h.OnSingleton(SNop)
		case 1:
			h.OnSingleton(SExAf)
		case 2:
			d := int8(h.ReadDisp())
			h.OnDjnz(d)
		case 3:
			d := int8(h.ReadDisp())
			h.OnJr(nil, d)
		default:
			d := int8(h.ReadDisp())
			cc := Condition(y - 4)
			h.OnJr(&cc, d)
		}
	case 1:
		if q == 0 {
			nn := h.ImmWord()
			h.OnLdRpNN(RegPair(p), nn)
		} else {
			h.OnAddIrpRp(RegPair(p))
		}
	case 2:
		decodeIndirectLoad(h, p, q)
	case 3:
		if q == 0 {
			h.OnIncRp(RegPair(p))
		} else {
			h.OnDecRp(RegPair(p))
		}
	case 4:
		d := dispForReg(h, Reg(y))
		h.OnIncR(Reg(y), d)
	case 5:
		d := dispForReg(h, Reg(y))
		h.OnDecR(Reg(y), d)
	case 6:
		d := dispForReg(h, Reg(y))
		n := h.ImmByte()
		h.OnLdRN(Reg(y), d, n)
	case 7:
		singles := [8]Singleton{SRlca, SRrca, SRla, SRra, SDaa, SCpl, SScf, SCcf}
		h.OnSingleton(singles[y])
	}
}

// decodeIndirectLoad handles the eight opcodes at x=0,z=2: the BC/DE/nn
// indirect loads of A and of the current index pair.
func decodeIndirectLoad(h Host, p, q byte) {
	switch p {
	case 0, 1:
		rp := RegPair(p)
		if q == 0 {
			h.OnLdAtRpA(rp)
		} else {
			h.OnLdAAtRp(rp)
		}
	case 2:
		nn := h.ImmWord()
		if q == 0 {
			h.OnLdAtNnIrp(nn)
		} else {
			h.OnLdIrpAtNn(nn)
		}
	case 3:
		nn := h.ImmWord()
		if q == 0 {
			h.OnLdAtNnA(nn)
		} else {
			h.OnLdAAtNn(nn)
		}
	}
}

// dispForReg reads the displacement byte for an operand touching (HL) when
// the current index substitution makes that operand (IX+d)/(IY+d) instead.
// For any other register it returns 0 and reads nothing.
func dispForReg(h Host, r Reg) int8 {
	if r == RegAtHL && h.IndexKind() != indexHL {
		d := int8(h.ReadDisp())
		h.ExtraT(5) // internal IX+d/IY+d address computation
		return d
	}
	return 0
}

func decodeX3(h Host, y, z, p, q byte) {
	switch z {
	case 0:
		h.ExtraT(1) // RET cc's opcode fetch is 5T
		cc := Condition(y)
		h.OnRet(&cc)
	case 1:
		if q == 0 {
			h.OnPopRp(RegPair2(p))
		} else {
			switch p {
			case 0:
				h.OnRet(nil)
			case 1:
				h.OnSingleton(SExx)
			case 2:
				h.OnSingleton(SJpIrp)
			case 3:
				h.OnSingleton(SLdSpIrp)
			}
		}
	case 2:
		nn := h.ImmWord()
		cc := Condition(y)
		h.OnJp(&cc, nn)
	case 3:
		switch y {
		case 0:
			nn := h.ImmWord()
			h.OnJp(nil, nn)
		case 1:
			decodeCBPrefixed(h)
		case 2:
			n := h.ImmByte()
			h.OnOutNA(n)
		case 3:
			n := h.ImmByte()
			h.OnInAN(n)
		case 4:
			h.OnSingleton(SExSpIrp)
		case 5:
			h.OnSingleton(SExDeHl)
		case 6:
			h.OnSingleton(SDi)
		case 7:
			h.OnSingleton(SEi)
		}
	case 4:
		nn := h.ImmWord()
		cc := Condition(y)
		h.OnCall(&cc, nn)
	case 5:
		if q == 0 {
			h.OnPushRp(RegPair2(p))
		} else {
			switch p {
			case 0:
				nn := h.ImmWord()
				h.OnCall(nil, nn)
			case 1:
				h.SetNextIndexKind(indexIX)
				h.SetDisableInt()
			case 2:
				decodeEDPrefixed(h)
			case 3:
				h.SetNextIndexKind(indexIY)
				h.SetDisableInt()
			}
		}
	case 6:
		n := h.ImmByte()
		h.OnAluN(AluOp(y), n)
	case 7:
		h.OnRst(y)
	}
}

func decodeCBPrefixed(h Host) {
	var d int8
	indexed := h.IndexKind() != indexHL
	if indexed {
		d = int8(h.ReadDisp())
		h.ExtraT(1) // the extra fetch cycle an indexed CB form spends before its opcode byte
	}
	op := h.Fetch()
	x := op >> 6 & 3
	y := op >> 3 & 7
	z := op & 7
	r := Reg(z)

	switch x {
	case 0:
		h.OnRot(RotOp(y), r, d)
	case 1:
		h.OnBit(y, r, d)
	case 2:
		h.OnRes(y, r, d)
	case 3:
		h.OnSet(y, r, d)
	}
}

var imTable = [8]int{0, 0, 1, 2, 0, 0, 1, 2}

var blockLdTable = [4]BlockLdOp{BlockLDI, BlockLDD, BlockLDIR, BlockLDDR}
var blockCpTable = [4]BlockCpOp{BlockCPI, BlockCPD, BlockCPIR, BlockCPDR}
var blockIoInTable = [4]BlockIoOp{BlockINI, BlockIND, BlockINIR, BlockINDR}
var blockIoOutTable = [4]BlockIoOp{BlockOUTI, BlockOUTD, BlockOTIR, BlockOTDR}

func decodeEDPrefixed(h Host) {
	op := h.Fetch()
	x := op >> 6 & 3
	y := op >> 3 & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		switch z {
		case 0:
			h.OnInRC(Reg(y))
		case 1:
			h.OnOutCR(Reg(y))
		case 2:
			if q == 0 {
				h.OnSbcHlRp(RegPair(p))
			} else {
				h.OnAdcHlRp(RegPair(p))
			}
		case 3:
			nn := h.ImmWord()
			if q == 0 {
				h.OnLdAtNnRp(nn, RegPair(p))
			} else {
				h.OnLdRpAtNn(RegPair(p), nn)
			}
		case 4:
			h.OnSingleton(SNeg)
		case 5:
			if y == 1 {
				h.OnSingleton(SReti)
			} else {
				h.OnSingleton(SRetn)
			}
		case 6:
			h.OnIm(imTable[y])
		case 7:
			switch y {
			case 0:
				h.OnSingleton(SLdIA)
			case 1:
				h.OnSingleton(SLdRA)
			case 2:
				h.OnSingleton(SLdAI)
			case 3:
				h.OnSingleton(SLdAR)
			case 4:
				h.OnSingleton(SRrd)
			case 5:
				h.OnSingleton(SRld)
			default:
				h.OnNoniEd(op)
			}
		}
	case 2:
		if y >= 4 && z <= 3 {
			idx := y - 4
			switch z {
			case 0:
				h.OnBlockLd(blockLdTable[idx])
			case 1:
				h.OnBlockCp(blockCpTable[idx])
			case 2:
				h.OnBlockIo(blockIoInTable[idx])
			case 3:
				h.OnBlockIo(blockIoOutTable[idx])
			}
		} else {
			h.OnNoniEd(op)
		}
	default:
		h.OnNoniEd(op)
	}
}
