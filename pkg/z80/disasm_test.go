package z80

import "testing"

func disassembleFirst(mem []byte) Line {
	lines := Disassemble(mem, 0, 1)
	return lines[0]
}

func TestDisassembleCanonicalMnemonics(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  string
	}{
		{[]byte{0x00}, "NOP"},
		{[]byte{0x3E, 0x42}, "LD A, $42"},
		{[]byte{0xC3, 0x34, 0x12}, "JP $1234"},
		{[]byte{0x3C}, "INC A"},
		{[]byte{0x29}, "ADD HL, HL"},
		{[]byte{0xCB, 0x47}, "BIT 0, A"},
		{[]byte{0xDD, 0xCB, 0x05, 0xC6}, "SET 0, (IX+5)"},
		{[]byte{0xED, 0xB0}, "LDIR"},
		{[]byte{0x80}, "ADD A, B"},
		{[]byte{0xB8}, "CP B"},
		{[]byte{0xFF}, "RST $38"},
		{[]byte{0xDD, 0x21, 0x00, 0x40}, "LD IX, $4000"},
		{[]byte{0xDD, 0x7E, 0xFB}, "LD A, (IX-5)"},
		{[]byte{0xFB}, "EI"},
		{[]byte{0xFE, 0x10}, "CP $10"},
	}
	for _, c := range cases {
		line := disassembleFirst(c.bytes)
		if line.Mnemonic != c.want {
			t.Errorf("Disassemble(% X) = %q, want %q", c.bytes, line.Mnemonic, c.want)
		}
		if len(line.Bytes) != len(c.bytes) {
			t.Errorf("Disassemble(% X) consumed %d bytes, want %d", c.bytes, len(line.Bytes), len(c.bytes))
		}
	}
}

func TestDisassembleUnknownByteFormatsAsDb(t *testing.T) {
	line := disassembleFirst([]byte{0xED, 0x00}) // NONI ED
	if line.Mnemonic != "db $ED, $00" {
		t.Errorf("Mnemonic = %q, want %q", line.Mnemonic, "db $ED, $00")
	}
}

func TestDisassembleMultipleLinesAdvancePC(t *testing.T) {
	mem := []byte{0x00, 0x3E, 0x42, 0xC3, 0x00, 0x00}
	lines := Disassemble(mem, 0, 3)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	requireEqualU16(t, "line[0].Addr", lines[0].Addr, 0x0000)
	requireEqualU16(t, "line[1].Addr", lines[1].Addr, 0x0001)
	requireEqualU16(t, "line[2].Addr", lines[2].Addr, 0x0003)
	if !lines[2].IsBranch {
		t.Fatalf("JP should be reported as a branch")
	}
	requireEqualU16(t, "line[2].BranchTarget", lines[2].BranchTarget, 0x0000)
}
