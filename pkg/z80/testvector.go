package z80

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FlatMemory is the minimal Bus a test scenario or the CLI harness runs
// against: a flat 64K byte array for memory, a 256-byte array for
// ports (indexed by the low byte of the requested port, the common
// simplification for a harness with no real peripherals attached).
type FlatMemory struct {
	Mem   [65536]byte
	Ports [256]byte
}

func (m *FlatMemory) Read(addr uint16) byte          { return m.Mem[addr] }
func (m *FlatMemory) Write(addr uint16, value byte)  { m.Mem[addr] = value }
func (m *FlatMemory) In(port uint16) byte            { return m.Ports[byte(port)] }
func (m *FlatMemory) Out(port uint16, value byte)    { m.Ports[byte(port)] = value }

// MemBlock is one mem: line: a run of bytes to preload starting at Addr.
type MemBlock struct {
	Addr uint16
	Data []byte
}

// RegAssign is one set:/want: line: a register name and the value it
// should be assigned, or compared against.
type RegAssign struct {
	Name  string
	Value uint64
}

// Scenario is one named block of the test-vector file format: preload
// memory, seed registers, run a fixed number of steps, then check
// registers against expected values.
type Scenario struct {
	Name  string
	Mem   []MemBlock
	Set   []RegAssign
	Steps int
	Want  []RegAssign
}

// ParseScenarios reads the name:/mem:/set:/run:/want: line format. A
// blank line or a new name: line starts the next scenario.
func ParseScenarios(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	var cur *Scenario

	flush := func() {
		if cur != nil {
			scenarios = append(scenarios, *cur)
			cur = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Errorf("test vector line %d: missing ':' in %q", lineNo, line)
		}
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			flush()
			cur = &Scenario{Name: rest}
		case "mem":
			if cur == nil {
				return nil, errors.Errorf("test vector line %d: %q before any name:", lineNo, line)
			}
			block, err := parseMemBlock(rest)
			if err != nil {
				return nil, errors.Wrapf(err, "test vector line %d", lineNo)
			}
			cur.Mem = append(cur.Mem, block)
		case "set":
			if cur == nil {
				return nil, errors.Errorf("test vector line %d: %q before any name:", lineNo, line)
			}
			assign, err := parseRegAssign(rest)
			if err != nil {
				return nil, errors.Wrapf(err, "test vector line %d", lineNo)
			}
			cur.Set = append(cur.Set, assign)
		case "run":
			if cur == nil {
				return nil, errors.Errorf("test vector line %d: %q before any name:", lineNo, line)
			}
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, errors.Wrapf(err, "test vector line %d: bad step count", lineNo)
			}
			cur.Steps = n
		case "want":
			if cur == nil {
				return nil, errors.Errorf("test vector line %d: %q before any name:", lineNo, line)
			}
			assign, err := parseRegAssign(rest)
			if err != nil {
				return nil, errors.Wrapf(err, "test vector line %d", lineNo)
			}
			cur.Want = append(cur.Want, assign)
		default:
			return nil, errors.Errorf("test vector line %d: unknown directive %q", lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading test vector file")
	}
	flush()
	return scenarios, nil
}

func parseMemBlock(rest string) (MemBlock, error) {
	fields := strings.Fields(rest)
	if len(fields) < 1 {
		return MemBlock{}, errors.Errorf("mem: needs an address")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 16)
	if err != nil {
		return MemBlock{}, errors.Wrapf(err, "mem: bad address %q", fields[0])
	}
	data := make([]byte, 0, len(fields)-1)
	for _, f := range fields[1:] {
		b, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 8)
		if err != nil {
			return MemBlock{}, errors.Wrapf(err, "mem: bad byte %q", f)
		}
		data = append(data, byte(b))
	}
	return MemBlock{Addr: uint16(addr), Data: data}, nil
}

func parseRegAssign(rest string) (RegAssign, error) {
	name, valStr, ok := strings.Cut(rest, "=")
	if !ok {
		return RegAssign{}, errors.Errorf("expected register=value, got %q", rest)
	}
	name = strings.TrimSpace(name)
	valStr = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(valStr), "0x"))
	v, err := strconv.ParseUint(valStr, 16, 64)
	if err != nil {
		return RegAssign{}, errors.Wrapf(err, "bad value for %s", name)
	}
	return RegAssign{Name: name, Value: v}, nil
}

// SetRegister writes value into the named register or pseudo-register
// ("T" for the T-state counter, "MEMPTR"/"WZ" for the internal latch).
func SetRegister(z *Z80, name string, value uint64) error {
	switch strings.ToUpper(name) {
	case "A":
		z.A = byte(value)
	case "F":
		z.F = byte(value)
	case "B":
		z.B = byte(value)
	case "C":
		z.C = byte(value)
	case "D":
		z.D = byte(value)
	case "E":
		z.E = byte(value)
	case "H":
		z.H = byte(value)
	case "L":
		z.L = byte(value)
	case "IX":
		z.IX = uint16(value)
	case "IY":
		z.IY = uint16(value)
	case "SP":
		z.SP = uint16(value)
	case "PC":
		z.PC = uint16(value)
	case "I":
		z.I = byte(value)
	case "R":
		z.R = byte(value)
	case "IM":
		z.IM = int(value)
	case "BC":
		z.SetBC(uint16(value))
	case "DE":
		z.SetDE(uint16(value))
	case "HL":
		z.SetHL(uint16(value))
	case "AF":
		z.SetAF(uint16(value))
	case "MEMPTR", "WZ":
		z.WZ = uint16(value)
	case "T":
		z.Cycles = value
	default:
		return errors.Errorf("unknown register %q", name)
	}
	return nil
}

// GetRegister reads the named register or pseudo-register.
func GetRegister(z *Z80, name string) (uint64, error) {
	switch strings.ToUpper(name) {
	case "A":
		return uint64(z.A), nil
	case "F":
		return uint64(z.F), nil
	case "B":
		return uint64(z.B), nil
	case "C":
		return uint64(z.C), nil
	case "D":
		return uint64(z.D), nil
	case "E":
		return uint64(z.E), nil
	case "H":
		return uint64(z.H), nil
	case "L":
		return uint64(z.L), nil
	case "IX":
		return uint64(z.IX), nil
	case "IY":
		return uint64(z.IY), nil
	case "SP":
		return uint64(z.SP), nil
	case "PC":
		return uint64(z.PC), nil
	case "I":
		return uint64(z.I), nil
	case "R":
		return uint64(z.R), nil
	case "IM":
		return uint64(z.IM), nil
	case "BC":
		return uint64(z.BC()), nil
	case "DE":
		return uint64(z.DE()), nil
	case "HL":
		return uint64(z.HL()), nil
	case "AF":
		return uint64(z.AF()), nil
	case "MEMPTR", "WZ":
		return uint64(z.WZ), nil
	case "T":
		return z.Cycles, nil
	default:
		return 0, errors.Errorf("unknown register %q", name)
	}
}

// Mismatch describes one want: line that did not hold after running a
// scenario.
type Mismatch struct {
	Register string
	Want     uint64
	Got      uint64
}

// Run executes the scenario against a fresh Z80 and FlatMemory, returning
// every want: line that did not hold. A nil/empty slice means the
// scenario passed.
func (s Scenario) Run() ([]Mismatch, error) {
	mem := &FlatMemory{}
	for _, block := range s.Mem {
		copy(mem.Mem[block.Addr:], block.Data)
	}

	z := NewZ80(mem)
	for _, assign := range s.Set {
		if err := SetRegister(z, assign.Name, assign.Value); err != nil {
			return nil, errors.Wrapf(err, "scenario %q: set:", s.Name)
		}
	}

	for i := 0; i < s.Steps; i++ {
		z.Step()
	}

	var mismatches []Mismatch
	for _, want := range s.Want {
		got, err := GetRegister(z, want.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q: want:", s.Name)
		}
		if got != want.Value {
			mismatches = append(mismatches, Mismatch{Register: want.Name, Want: want.Value, Got: got})
		}
	}
	return mismatches, nil
}

// String renders a Mismatch for harness output.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want 0x%X, got 0x%X", m.Register, m.Want, m.Got)
}
