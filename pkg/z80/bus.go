package z80

// Bus is the integrator's memory and I/O contract: untimed byte peek/poke.
// An integrator owns the concrete backing store (RAM array, ROM protection,
// memory-mapped devices) and is free to layer whatever semantics it wants
// behind these four methods. Timing is not the Bus's concern: the T-state
// counter lives on Z80 itself and is advanced by the bus-cycle primitives
// in host_exec.go as they call through to Read/Write/In/Out, the same split
// the source draws between its memory array and its access/tick hooks.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	In(port uint16) byte
	Out(port uint16, value byte)
}
