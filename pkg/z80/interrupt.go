package z80

// RequestIRQ and RequestNMI are the integrator's side of the interrupt
// lines: set true while the line is asserted, false once the peripheral
// has been serviced or deasserts it. NMI is sampled for a rising edge
// (serviced once per assertion, not once per Step while held), matching
// the line behavior the source models; IRQ is level-sensitive and re-fires
// every Step it is held high and IFF1 is set, also matching hardware.
func (z *Z80) RequestIRQ(on bool) {
	z.irqLine = on
}

func (z *Z80) RequestNMI(on bool) {
	if !on {
		z.nmiPrev = false // a low level arms the next rising edge, even between Steps
	}
	z.nmiLine = on
}

// SetIRQVector supplies the vector byte an IM2 device would place on the
// data bus during an interrupt acknowledge cycle. It has no effect in IM0
// or IM1.
func (z *Z80) SetIRQVector(v byte) {
	z.irqVector = v
}
