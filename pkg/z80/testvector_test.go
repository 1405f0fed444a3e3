package z80

import (
	"strings"
	"testing"
)

const sampleVectors = `
name: inc a wraps flags
mem: 0x0000 3C
set: A=7F
run: 1
want: A=80
want: F=94

name: bad expectation is reported
mem: 0x0000 3E 42
set: PC=0000
run: 1
want: A=FF
`

func TestParseScenariosAndRun(t *testing.T) {
	scenarios, err := ParseScenarios(strings.NewReader(sampleVectors))
	if err != nil {
		t.Fatalf("ParseScenarios: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(scenarios))
	}

	mismatches, err := scenarios[0].Run()
	if err != nil {
		t.Fatalf("scenario 0 Run: %v", err)
	}
	if len(mismatches) != 0 {
		t.Fatalf("scenario 0 mismatches = %v, want none", mismatches)
	}

	mismatches, err = scenarios[1].Run()
	if err != nil {
		t.Fatalf("scenario 1 Run: %v", err)
	}
	if len(mismatches) != 1 || mismatches[0].Register != "A" {
		t.Fatalf("scenario 1 mismatches = %v, want one A mismatch", mismatches)
	}
}

func TestParseScenariosRejectsMalformedLine(t *testing.T) {
	_, err := ParseScenarios(strings.NewReader("name: ok\nset: A\n"))
	if err == nil {
		t.Fatalf("expected a parse error for a set: line with no '='")
	}
}

func TestSetAndGetRegisterRoundTrip(t *testing.T) {
	rig := newZ80TestRig()
	if err := SetRegister(rig.cpu, "hl", 0xBEEF); err != nil {
		t.Fatalf("SetRegister: %v", err)
	}
	got, err := GetRegister(rig.cpu, "hl")
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	if got != 0xBEEF {
		t.Fatalf("HL = 0x%X, want 0xBEEF", got)
	}

	if _, err := GetRegister(rig.cpu, "nope"); err == nil {
		t.Fatalf("expected an error for an unknown register name")
	}
}
