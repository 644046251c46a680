package nes

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"testing"
)

// TestConsole_nestest replays nestest.nes against its known-good Nintendulator
// trace. It needs both files checked out alongside the module under
// testdata/nestest/ and is skipped otherwise.
func TestConsole_nestest(t *testing.T) {
	testRom, err := os.Open("testdata/nestest/nestest.nes")
	if err != nil {
		t.Skip("nestest fixture not present")
	}
	defer testRom.Close()

	buf := bytes.NewBuffer(nil)
	out := io.MultiWriter(buf)

	console := NewConsole(44100, 0xC000, out)
	if err := console.LoadRom(testRom); err != nil {
		t.Fatalf("unable to load rom: %v", err)
	}

	log, err := os.Open("testdata/nestest/nestest.log.txt")
	if err != nil {
		t.Skip("nestest trace not present")
	}
	defer log.Close()

	scanner := bufio.NewScanner(log)

	for scanner.Scan() {
		want := scanner.Bytes()
		want = append(want, '\n')

		console.cpu.execute(console.bus)

		t1, t2 := console.Read(0x02), console.Read(0x03)
		if t1 != 0 || t2 != 0 {
			t.Fatalf("%02x%02x", t1, t2)
		}

		if got := buf.Bytes(); !bytes.Equal(got, want) {
			t.Fatalf("nestest: want %q, got %q", want, got)
		}

		buf.Reset()
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("unable to read log: %v", err)
	}
}
