package z80

import "github.com/pkg/errors"

// IntegratorError wraps a failure the Bus or an I/O device raised back at
// the processor, tagging it with the address that was being accessed when
// it happened. The core itself never returns one: Bus.Read/Write/In/Out
// have no error return, by design (the processor has no bus-error
// concept), so this exists purely for integrators who want to surface a
// failing Bus implementation's panic with useful context attached.
type IntegratorError struct {
	Addr uint16
	Op   string
	Err  error
}

func (e *IntegratorError) Error() string {
	return errors.Wrapf(e.Err, "z80: %s at 0x%04X", e.Op, e.Addr).Error()
}

func (e *IntegratorError) Unwrap() error { return e.Err }
