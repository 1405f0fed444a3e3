package z80

func (z *Z80) checkCondition(cc Condition) bool {
	switch cc {
	case CondNZ:
		return z.F&flagZ == 0
	case CondZ:
		return z.F&flagZ != 0
	case CondNC:
		return z.F&flagC == 0
	case CondC:
		return z.F&flagC != 0
	case CondPO:
		return z.F&flagP == 0
	case CondPE:
		return z.F&flagP != 0
	case CondP:
		return z.F&flagS == 0
	default: // CondM
		return z.F&flagS != 0
	}
}

func (z *Z80) OnRet(cc *Condition) {
	if cc != nil && !z.checkCondition(*cc) {
		return
	}
	z.PC = z.popWord(3)
	z.WZ = z.PC
}

func (z *Z80) OnJr(cc *Condition, d int8) {
	if cc != nil && !z.checkCondition(*cc) {
		return
	}
	z.PC = uint16(int32(z.PC) + int32(d))
	z.ExtraT(5)
	z.WZ = z.PC
}

func (z *Z80) OnDjnz(d int8) {
	z.ExtraT(1)
	z.B--
	if z.B != 0 {
		z.PC = uint16(int32(z.PC) + int32(d))
		z.ExtraT(5)
		z.WZ = z.PC
	}
}

// OnJp updates MEMPTR to the decoded target whether or not the jump is
// actually taken: the address is computed either way, only the PC write
// is conditional.
func (z *Z80) OnJp(cc *Condition, nn uint16) {
	z.WZ = nn
	if cc != nil && !z.checkCondition(*cc) {
		return
	}
	z.PC = nn
}

func (z *Z80) OnCall(cc *Condition, nn uint16) {
	z.WZ = nn
	if cc != nil && !z.checkCondition(*cc) {
		return
	}
	z.ExtraT(1)
	z.pushWord(z.PC, 3)
	z.PC = nn
}

func (z *Z80) OnRst(y byte) {
	z.ExtraT(1)
	z.pushWord(z.PC, 3)
	z.PC = uint16(y) * 8
	z.WZ = z.PC
}

// OnInRC/OnOutCR: r==RegAtHL names the y=6 "IN (C)"/"OUT (C),0" forms,
// which touch flags (or the port) without naming a destination register.
func (z *Z80) OnInRC(r Reg) {
	v := z.InPort(z.BC())
	z.F = z.F&flagC | zf(v) | (v & flagSYX) | pfLog(v)
	if r != RegAtHL {
		z.writeReg8(r, 0, v)
	}
	z.WZ = z.BC() + 1
}

func (z *Z80) OnOutCR(r Reg) {
	var v byte
	if r != RegAtHL {
		v = z.readReg8(r, 0)
	}
	z.OutPort(z.BC(), v, 4)
	z.WZ = z.BC() + 1
}

func (z *Z80) OnInAN(n byte) {
	port := uint16(z.A)<<8 | uint16(n)
	z.A = z.InPort(port)
	z.WZ = port + 1
}

func (z *Z80) OnOutNA(n byte) {
	port := uint16(z.A)<<8 | uint16(n)
	z.OutPort(port, z.A, 4)
	z.WZ = uint16(z.A)<<8 | uint16(byte(n+1))
}

func (z *Z80) OnIm(mode int) {
	z.IM = mode
}

func (z *Z80) execExSpIrp() {
	addr := z.SP
	lo := z.ReadMemT(addr, 3)
	hi := z.ReadMemT(addr+1, 4)
	v := z.indexRpValue()
	z.WriteMemT(addr, byte(v), 3)
	z.WriteMemT(addr+1, byte(v>>8), 5)
	z.setIndexRpValue(uint16(hi)<<8 | uint16(lo))
	z.WZ = z.indexRpValue()
}
