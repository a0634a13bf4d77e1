// Package trace formats and compares nestest-style execution logs: one line
// per instruction, in the exact column layout Nintendulator (and every
// compatible NES test harness) emits, so a run can be diffed byte-for-byte
// against a known-good reference log like nestest.log.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cryowatt/nes2a03/cpu"
)

// Logger writes one cpu.Snapshot.Line() per call to W.
type Logger struct {
	W io.Writer
}

// New wraps w as a Logger.
func New(w io.Writer) *Logger { return &Logger{W: w} }

// Log writes s's formatted line followed by a newline.
func (l *Logger) Log(s cpu.Snapshot) {
	fmt.Fprintln(l.W, s.Line())
}

// Mismatch describes the first place two traces diverge.
type Mismatch struct {
	Line int
	Got  string
	Want string
}

// Error implements error.
func (m Mismatch) Error() string {
	return fmt.Sprintf("trace mismatch at line %d:\n  got:  %s\n  want: %s", m.Line, m.Got, m.Want)
}

// Compare reads got and want line by line and returns the first Mismatch, or
// nil if every line present in both matches. A length difference with no
// content mismatch is not itself an error -- callers that care whether both
// logs cover the same number of instructions must count lines themselves.
func Compare(got, want io.Reader) error {
	gs := bufio.NewScanner(got)
	ws := bufio.NewScanner(want)
	for line := 1; ; line++ {
		gOK := gs.Scan()
		wOK := ws.Scan()
		if !gOK || !wOK {
			return nil
		}
		gl, wl := strings.TrimRight(gs.Text(), " "), strings.TrimRight(ws.Text(), " ")
		if gl != wl {
			return Mismatch{Line: line, Got: gl, Want: wl}
		}
	}
}
