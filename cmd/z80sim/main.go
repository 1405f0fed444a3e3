package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/SyntheticDreams/z80/pkg/z80"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "disasm":
		err = disasmCmd(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "z80sim: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "z80sim: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  z80sim run <test-vector-file>")
	fmt.Fprintln(os.Stderr, "  z80sim disasm <binary-file> [count]")
}

func runCmd(args []string) error {
	flagSet := flag.NewFlagSet("run", flag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: z80sim run <test-vector-file>")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	path := flagSet.Arg(0)
	if path == "" {
		flagSet.Usage()
		return errors.New("missing test-vector file")
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	scenarios, err := z80.ParseScenarios(f)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	outcomes, err := runScenarios(scenarios)
	if err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", o.Name, o.Err)
			continue
		}
		if len(o.Mismatches) > 0 {
			failed++
			fmt.Printf("FAIL %s\n", o.Name)
			for _, m := range o.Mismatches {
				fmt.Printf("  %s\n", m)
			}
			continue
		}
		fmt.Printf("PASS %s\n", o.Name)
	}

	fmt.Printf("%d/%d scenarios passed\n", len(outcomes)-failed, len(outcomes))
	if failed > 0 {
		return errors.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}

func disasmCmd(args []string) error {
	flagSet := flag.NewFlagSet("disasm", flag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: z80sim disasm <binary-file> [count]")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	path := flagSet.Arg(0)
	if path == "" {
		flagSet.Usage()
		return errors.New("missing binary file")
	}

	count := 16
	if c := flagSet.Arg(1); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			return errors.Wrapf(err, "bad count %q", c)
		}
		count = n
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	for _, line := range z80.Disassemble(data, 0, count) {
		fmt.Printf("%04X  %-12s %s\n", line.Addr, hexBytes(line.Bytes), line.Mnemonic)
	}
	return nil
}

func hexBytes(b []byte) string {
	s := ""
	for i, v := range b {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", v)
	}
	return s
}
