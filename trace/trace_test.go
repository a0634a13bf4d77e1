package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cryowatt/nes2a03/cpu"
)

func TestLoggerWritesOneLinePerSnapshot(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	s := cpu.Snapshot{PC: 0xC000, Opcode: 0xEA, Mnemonic: "NOP", Mode: "imp", Length: 1}
	l.Log(s)
	got := strings.TrimRight(buf.String(), "\n")
	if got != s.Line() {
		t.Errorf("Logger.Log wrote %q, want %q", got, s.Line())
	}
}

func TestCompareReportsNilOnMatch(t *testing.T) {
	log := "line one\nline two\n"
	err := Compare(strings.NewReader(log), strings.NewReader(log))
	if err != nil {
		t.Errorf("Compare on identical logs = %v, want nil", err)
	}
}

func TestCompareIgnoresTrailingSpaces(t *testing.T) {
	got := "C000  EA        NOP    \n"
	want := "C000  EA        NOP\n"
	if err := Compare(strings.NewReader(got), strings.NewReader(want)); err != nil {
		t.Errorf("Compare with only trailing-space differences = %v, want nil", err)
	}
}

func TestCompareReportsFirstMismatch(t *testing.T) {
	got := "line one\nline TWO\nline three\n"
	want := "line one\nline two\nline three\n"
	err := Compare(strings.NewReader(got), strings.NewReader(want))
	if err == nil {
		t.Fatal("expected a mismatch error, got nil")
	}
	mismatch, ok := err.(Mismatch)
	if !ok {
		t.Fatalf("err = %#v, want Mismatch", err)
	}
	if mismatch.Line != 2 {
		t.Errorf("Mismatch.Line = %d, want 2", mismatch.Line)
	}
}

func TestCompareStopsAtShorterReaderWithoutError(t *testing.T) {
	got := "line one\n"
	want := "line one\nline two\n"
	if err := Compare(strings.NewReader(got), strings.NewReader(want)); err != nil {
		t.Errorf("Compare with a shorter got log = %v, want nil", err)
	}
}
