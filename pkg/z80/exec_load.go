package z80

func (z *Z80) OnLdRR(dst, src Reg, d int8) {
	z.writeReg8(dst, d, z.readReg8(src, d))
}

func (z *Z80) OnLdRN(r Reg, d int8, n byte) {
	z.writeReg8(r, d, n)
}

func (z *Z80) OnLdRpNN(rp RegPair, nn uint16) {
	z.writeRP(rp, nn)
}

func (z *Z80) OnPopRp(rp RegPair2) {
	z.writeRP2(rp, z.popWord(3))
}

func (z *Z80) OnPushRp(rp RegPair2) {
	z.ExtraT(1)
	z.pushWord(z.readRP2(rp), 3)
}

func (z *Z80) OnLdAtNnA(nn uint16) {
	z.WriteMemT(nn, z.A, 3)
	z.WZ = uint16(z.A)<<8 | uint16(byte(nn+1))
}

func (z *Z80) OnLdAAtNn(nn uint16) {
	z.A = z.ReadMemT(nn, 3)
	z.WZ = nn + 1
}

func (z *Z80) OnLdAtRpA(rp RegPair) {
	addr := z.readRP(rp)
	z.WriteMemT(addr, z.A, 3)
	z.WZ = uint16(z.A)<<8 | uint16(byte(addr+1))
}

func (z *Z80) OnLdAAtRp(rp RegPair) {
	addr := z.readRP(rp)
	z.A = z.ReadMemT(addr, 3)
	z.WZ = addr + 1
}

func (z *Z80) OnLdAtNnIrp(nn uint16) {
	v := z.indexRpValue()
	z.WriteMemT(nn, byte(v), 3)
	z.WriteMemT(nn+1, byte(v>>8), 3)
	z.WZ = nn + 1
}

func (z *Z80) OnLdIrpAtNn(nn uint16) {
	lo := z.ReadMemT(nn, 3)
	hi := z.ReadMemT(nn+1, 3)
	z.setIndexRpValue(uint16(hi)<<8 | uint16(lo))
	z.WZ = nn + 1
}

func (z *Z80) OnLdAtNnRp(nn uint16, rp RegPair) {
	v := z.readRP(rp)
	z.WriteMemT(nn, byte(v), 3)
	z.WriteMemT(nn+1, byte(v>>8), 3)
	z.WZ = nn + 1
}

func (z *Z80) OnLdRpAtNn(rp RegPair, nn uint16) {
	lo := z.ReadMemT(nn, 3)
	hi := z.ReadMemT(nn+1, 3)
	z.writeRP(rp, uint16(hi)<<8|uint16(lo))
	z.WZ = nn + 1
}
