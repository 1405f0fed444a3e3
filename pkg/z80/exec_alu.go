package z80

// OnAluR and OnAluN implement the eight ALU operations (ADD, ADC, SUB, SBC,
// AND, XOR, OR, CP) against a register/memory operand or an immediate.
func (z *Z80) OnAluR(op AluOp, r Reg, d int8) {
	z.doAlu(op, z.readReg8(r, d))
}

func (z *Z80) OnAluN(op AluOp, n byte) {
	z.doAlu(op, n)
}

func (z *Z80) doAlu(op AluOp, n byte) {
	switch op {
	case AluAdd:
		z.aluAdd(n, 0)
	case AluAdc:
		z.aluAdd(n, carryIn(z.F))
	case AluSub:
		z.aluSub(n, 0)
	case AluSbc:
		z.aluSub(n, carryIn(z.F))
	case AluAnd:
		z.aluAnd(n)
	case AluXor:
		z.aluXor(n)
	case AluOr:
		z.aluOr(n)
	case AluCp:
		z.aluCp(n)
	}
}

func carryIn(f byte) byte {
	return boolFlag(f&flagC != 0, 1)
}

func (z *Z80) aluAdd(n, carry byte) {
	a := z.A
	sum := int(a) + int(n) + int(carry)
	r := byte(sum)
	z.F = zf(r) | (r & flagSYX) | hfAri(r, a, n) | pfAri(sum, a, n) | boolFlag(sum > 0xFF, flagC)
	z.A = r
}

func (z *Z80) aluSub(n, borrow byte) {
	a := z.A
	diff := int(a) - int(n) - int(borrow)
	r := byte(diff)
	z.F = zf(r) | (r & flagSYX) | hfAri(r, a, n) | flagN | pfAri(diff, a, n) | boolFlag(diff < 0, flagC)
	z.A = r
}

func (z *Z80) aluCp(n byte) {
	a := z.A
	diff := int(a) - int(n)
	r := byte(diff)
	z.F = zf(r) | (r & flagS) | (n & (flagY | flagX)) | hfAri(r, a, n) | flagN | pfAri(diff, a, n) | boolFlag(diff < 0, flagC)
}

func (z *Z80) aluAnd(n byte) {
	r := z.A & n
	z.F = zf(r) | (r & flagSYX) | flagH | pfLog(r)
	z.A = r
}

func (z *Z80) aluXor(n byte) {
	r := z.A ^ n
	z.F = zf(r) | (r & flagSYX) | pfLog(r)
	z.A = r
}

func (z *Z80) aluOr(n byte) {
	r := z.A | n
	z.F = zf(r) | (r & flagSYX) | pfLog(r)
	z.A = r
}

// OnIncR and OnDecR carry the carry flag through unchanged: it is the one
// flag neither INC nor DEC ever touches.
func (z *Z80) OnIncR(r Reg, d int8) {
	v := z.readReg8(r, d)
	nv := v + 1
	z.F = z.F&flagC | zf(nv) | (nv & flagSYX) | hfInc(nv) | pfInc(nv)
	z.writeReg8(r, d, nv)
}

func (z *Z80) OnDecR(r Reg, d int8) {
	v := z.readReg8(r, d)
	nv := v - 1
	z.F = z.F&flagC | zf(nv) | (nv & flagSYX) | hfDec(nv) | flagN | pfDec(nv)
	z.writeReg8(r, d, nv)
}

// OnIncRp and OnDecRp touch no flags at all.
func (z *Z80) OnIncRp(rp RegPair) {
	z.writeRP(rp, z.readRP(rp)+1)
	z.ExtraT(2)
}

func (z *Z80) OnDecRp(rp RegPair) {
	z.writeRP(rp, z.readRP(rp)-1)
	z.ExtraT(2)
}

// OnAddIrpRp implements ADD HL,rp / ADD IX,rp / ADD IY,rp: only H, N, C
// and the Y/X copy from the high result byte change; S, Z and P/V survive.
func (z *Z80) OnAddIrpRp(rp RegPair) {
	a := z.indexRpValue()
	n := z.readRP(rp)
	sum := uint32(a) + uint32(n)
	r := uint16(sum)
	z.F = z.F&(flagZ|flagS|flagP) | hfAri16(r, a, n) | boolFlag(sum > 0xFFFF, flagC) | byte(r>>8)&(flagY|flagX)
	z.setIndexRpValue(r)
	z.WZ = a + 1
	z.ExtraT(7)
}

func (z *Z80) OnAdcHlRp(rp RegPair) {
	a := z.HL()
	n := z.readRP(rp)
	carry := uint32(carryIn(z.F))
	sum := uint32(a) + uint32(n) + carry
	r := uint16(sum)
	z.F = zf16(r) | byte(r>>8)&flagSYX | hfAri16(r, a, n) | pfAri16(int32(sum), a, n) | boolFlag(sum > 0xFFFF, flagC)
	z.SetHL(r)
	z.WZ = a + 1
	z.ExtraT(7)
}

func (z *Z80) OnSbcHlRp(rp RegPair) {
	a := z.HL()
	n := z.readRP(rp)
	borrow := int32(carryIn(z.F))
	diff := int32(a) - int32(n) - borrow
	r := uint16(diff)
	z.F = zf16(r) | byte(r>>8)&flagSYX | hfAri16(r, a, n) | flagN | pfAri16(diff, a, n) | boolFlag(diff < 0, flagC)
	z.SetHL(r)
	z.WZ = a + 1
	z.ExtraT(7)
}

func zf16(r uint16) byte {
	return boolFlag(r == 0, flagZ)
}

func (z *Z80) execRlca() {
	c := z.A >> 7
	z.A = z.A<<1 | c
	z.F = z.F&(flagZ|flagS|flagP) | c | (z.A & flagSYX)
}

func (z *Z80) execRrca() {
	c := z.A & 1
	z.A = z.A>>1 | c<<7
	z.F = z.F&(flagZ|flagS|flagP) | c | (z.A & flagSYX)
}

func (z *Z80) execRla() {
	c := z.A >> 7
	old := carryIn(z.F)
	z.A = z.A<<1 | old
	z.F = z.F&(flagZ|flagS|flagP) | c | (z.A & flagSYX)
}

func (z *Z80) execRra() {
	c := z.A & 1
	old := carryIn(z.F)
	z.A = z.A>>1 | old<<7
	z.F = z.F&(flagZ|flagS|flagP) | c | (z.A & flagSYX)
}

// execDaa implements the BCD-correction table by formula rather than by
// the lookup table some cores use.
func (z *Z80) execDaa() {
	a := z.A
	carry := z.F&flagC != 0
	half := z.F&flagH != 0
	sub := z.F&flagN != 0

	var correction byte
	newCarry := carry
	if half || a&0x0F > 9 {
		correction |= 0x06
	}
	if carry || a > 0x99 {
		correction |= 0x60
		newCarry = true
	}

	var result byte
	var newHalf bool
	if sub {
		newHalf = half && a&0x0F < 6
		result = a - correction
	} else {
		newHalf = a&0x0F > 9
		result = a + correction
	}

	z.A = result
	z.F = boolFlag(sub, flagN) | boolFlag(newCarry, flagC) | boolFlag(newHalf, flagH) | zf(result) | pfLog(result) | (result & flagSYX)
}

// execNeg is ED 44: A = 0 - A, which is exactly aluSub with a zero minuend;
// the borrow out (C) is therefore set whenever A was nonzero.
func (z *Z80) execNeg() {
	n := z.A
	diff := 0 - int(n)
	r := byte(diff)
	z.F = zf(r) | (r & flagSYX) | hfAri(r, 0, n) | flagN | pfAri(diff, 0, n) | boolFlag(n != 0, flagC)
	z.A = r
}

// execRld and execRrd rotate a BCD digit pair between A's low nibble and
// the two nibbles at (HL), leaving A's high nibble untouched. S, Z, P/V
// and the Y/X copy follow the new A, H and N are cleared, C is preserved.
func (z *Z80) execRld() {
	addr := z.HL()
	m := z.ReadMemT(addr, 4)
	newM := (m << 4) | (z.A & 0x0F)
	newA := (z.A & 0xF0) | (m >> 4)
	z.WriteMemT(addr, newM, 3)
	z.A = newA
	z.F = z.F&flagC | zf(newA) | (newA & flagSYX) | pfLog(newA)
	z.WZ = addr + 1
	z.ExtraT(4)
}

func (z *Z80) execRrd() {
	addr := z.HL()
	m := z.ReadMemT(addr, 4)
	newM := (z.A&0x0F)<<4 | (m >> 4)
	newA := (z.A & 0xF0) | (m & 0x0F)
	z.WriteMemT(addr, newM, 3)
	z.A = newA
	z.F = z.F&flagC | zf(newA) | (newA & flagSYX) | pfLog(newA)
	z.WZ = addr + 1
	z.ExtraT(4)
}
