package nes

import (
	"bytes"
	"testing"
)

func newTestConsole(t *testing.T) *Console {
	t.Helper()

	console := NewConsole(44100, 0, nil)
	if err := console.LoadRom(bytes.NewBuffer(baseRom())); err != nil {
		t.Fatalf("LoadRom: %s", err)
	}
	return console
}

func TestBusRAMMirroring(t *testing.T) {
	console := newTestConsole(t)

	console.bus.write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := console.bus.read(mirror); got != 0x42 {
			t.Errorf("read(%#x) = %#x, want %#x (mirrored RAM)", mirror, got, 0x42)
		}
	}
}

func TestBusSRAMRoundtrip(t *testing.T) {
	console := newTestConsole(t)

	console.bus.write(0x6000, 0x99)
	if got := console.bus.read(0x6000); got != 0x99 {
		t.Errorf("read(0x6000) = %#x, want %#x", got, 0x99)
	}
}

func TestBusPRGReadThrough(t *testing.T) {
	console := newTestConsole(t)
	console.cartridge.prg[0] = 0xA9

	if got := console.bus.read(0x8000); got != 0xA9 {
		t.Errorf("read(0x8000) = %#x, want %#x", got, 0xA9)
	}
}

func TestBusJoypadStrobe(t *testing.T) {
	console := newTestConsole(t)

	console.Press(0, A)
	console.bus.write(0x4016, 1)
	console.bus.write(0x4016, 0)

	if got := console.bus.read(0x4016); got != 1 {
		t.Errorf("read(0x4016) = %d, want 1 (A pressed)", got)
	}
}

func TestBusReadAddressLittleEndian(t *testing.T) {
	console := newTestConsole(t)

	console.bus.write(0x0010, 0xCD)
	console.bus.write(0x0011, 0xAB)

	if got := console.bus.readAddress(0x0010); got != 0xABCD {
		t.Errorf("readAddress(0x0010) = %#x, want %#x", got, 0xABCD)
	}
}

func TestBusWriteAddress(t *testing.T) {
	console := newTestConsole(t)

	console.bus.writeAddress(0x0020, 0xBEEF)

	if got := console.bus.read(0x0020); got != 0xEF {
		t.Errorf("read(0x0020) = %#x, want low byte %#x", got, 0xEF)
	}
	if got := console.bus.read(0x0021); got != 0xBE {
		t.Errorf("read(0x0021) = %#x, want high byte %#x", got, 0xBE)
	}
}

func TestBusUnimplementedIORegisterIsOpenBus(t *testing.T) {
	console := newTestConsole(t)

	if got := console.bus.read(0x4010); got != 0xFF {
		t.Errorf("read(0x4010) = %#x, want %#x (open bus)", got, 0xFF)
	}
}
