// Command nestest runs an iNES image headlessly and emits a Nintendulator-
// style execution trace, optionally diffing it against a reference log (the
// standard way of validating a 6502 core against nestest.nes's log).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cryowatt/nes2a03/console"
	"github.com/cryowatt/nes2a03/cpu"
	"github.com/cryowatt/nes2a03/trace"
)

var (
	romPath      = flag.String("rom", "", "Path to the iNES image to run")
	startPC      = flag.String("pc", "", "Override the reset vector's PC, e.g. C000 for nestest's automated mode")
	maxInstr     = flag.Int("max_instructions", 8992, "Stop after this many instructions (0 = unbounded)")
	outPath      = flag.String("out", "", "Path to write the trace log to; empty means stdout")
	referenceLog = flag.String("reference", "", "Path to a reference trace log to diff the run's output against")
)

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("-rom is required")
	}

	f, err := os.Open(*romPath)
	if err != nil {
		log.Fatalf("opening rom: %v", err)
	}
	defer f.Close()

	con, err := console.Load(f)
	if err != nil {
		log.Fatalf("loading rom: %v", err)
	}
	con.PowerOn()

	if *startPC != "" {
		var pc uint16
		if _, err := fmt.Sscanf(*startPC, "%X", &pc); err != nil {
			log.Fatalf("parsing -pc %q: %v", *startPC, err)
		}
		// PowerOn has loaded PC from $FFFC/$FFFD and left A/X/Y/P
		// randomized, instead of nestest automated mode's documented
		// A=X=Y=$00, P=$24, SP=$FD. Seed forces that canonical state
		// directly.
		con.CPU.Seed(pc, 0x00, 0x00, 0x00, 0xFD, 0x24)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		of, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("creating -out: %v", err)
		}
		defer of.Close()
		out = of
	}
	logger := trace.New(out)

	runErr := con.Run(*maxInstr, func(s cpu.Snapshot) {
		logger.Log(s)
	})

	var halt cpu.HaltOpcode
	if runErr != nil && !errors.As(runErr, &halt) {
		log.Fatalf("run error: %v", runErr)
	}

	if *referenceLog != "" {
		if *outPath == "" {
			log.Fatal("-reference requires -out (can't diff against what was just written to stdout)")
		}
		got, err := os.Open(*outPath)
		if err != nil {
			log.Fatalf("reopening -out for comparison: %v", err)
		}
		defer got.Close()
		want, err := os.Open(*referenceLog)
		if err != nil {
			log.Fatalf("opening -reference: %v", err)
		}
		defer want.Close()
		if mismatch := trace.Compare(got, want); mismatch != nil {
			log.Fatalf("%v", mismatch)
		}
		fmt.Println("trace matches reference log")
	}
}
