package nes

import "testing"

func TestNewMapperSelectsImplementation(t *testing.T) {
	tests := []struct {
		number byte
		ok     bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, true},
		{4, true},
		{255, false},
	}

	for _, tt := range tests {
		_, err := newMapper(tt.number, 2, 1)
		if (err == nil) != tt.ok {
			t.Errorf("newMapper(%d): err = %v, want ok=%v", tt.number, err, tt.ok)
		}
	}
}

func TestNROMMirrorsSingleBank(t *testing.T) {
	m := &nromMapper{prgBanks: 1}
	if got := m.mapPRG(0x8000); got != 0 {
		t.Errorf("mapPRG(0x8000) = %d, want 0", got)
	}
	if got := m.mapPRG(0xC000); got != 0 {
		t.Errorf("mapPRG(0xC000) = %d, want 0 (mirrored)", got)
	}
}

func TestNROMTwoBanksMapThrough(t *testing.T) {
	m := &nromMapper{prgBanks: 2}
	if got := m.mapPRG(0x8000); got != 0 {
		t.Errorf("mapPRG(0x8000) = %d, want 0", got)
	}
	if got := m.mapPRG(0xC000); got != 0x4000 {
		t.Errorf("mapPRG(0xC000) = %#x, want %#x", got, 0x4000)
	}
}

func TestUNROMFixesLastBank(t *testing.T) {
	m := &unromMapper{prgBanks: 4}
	m.store(0, 2)

	if got := m.mapPRG(0x8000); got != 2*0x4000 {
		t.Errorf("mapPRG(0x8000) = %#x, want %#x", got, 2*0x4000)
	}
	if got := m.mapPRG(0xC000); got != 3*0x4000 {
		t.Errorf("mapPRG(0xC000) = %#x, want fixed last bank %#x", got, 3*0x4000)
	}
}

func TestCNROMSwitchesCHRBank(t *testing.T) {
	m := &cnromMapper{}
	m.store(0, 3)
	if got := m.mapCHR(0x0100); got != 3*0x2000+0x100 {
		t.Errorf("mapCHR = %#x, want %#x", got, 3*0x2000+0x100)
	}
}

func TestMMC1ShiftRegisterCommitsOnFifthWrite(t *testing.T) {
	m := newMMC1Mapper(4)

	// write control = 0b00011 (mode 3, horizontal-ish mirroring) one bit
	// at a time, LSB first.
	bits := []byte{1, 1, 0, 0, 0}
	for _, b := range bits {
		m.store(0x8000, b)
	}

	if m.control != 0b00011 {
		t.Fatalf("control = %#b, want %#b", m.control, 0b00011)
	}
}

func TestMMC1ResetBitClearsShift(t *testing.T) {
	m := newMMC1Mapper(4)
	m.store(0x8000, 1)
	m.store(0x8000, 0x80) // bit 7 set: reset

	if m.shiftCount != 0 {
		t.Fatalf("shiftCount after reset = %d, want 0", m.shiftCount)
	}
	if m.control&0x0C != 0x0C {
		t.Fatalf("control after reset = %#b, want PRG-mode bits set", m.control)
	}
}

func TestMMC1PRGFixLastBank(t *testing.T) {
	m := newMMC1Mapper(4)
	// commit control = 0b01100: PRG mode 3 (switch $8000, fix last bank at $C000)
	for _, b := range []byte{0, 0, 1, 1, 0} {
		m.store(0x8000, b)
	}
	// commit prg register = bank 1
	for _, b := range []byte{1, 0, 0, 0, 0} {
		m.store(0xE000, b)
	}

	if got := m.mapPRG(0x8000); got != 1*0x4000 {
		t.Errorf("mapPRG(0x8000) = %#x, want %#x", got, 0x4000)
	}
	if got := m.mapPRG(0xC000); got != 3*0x4000 {
		t.Errorf("mapPRG(0xC000) = %#x, want fixed last bank %#x", got, 3*0x4000)
	}
}

func TestMMC3PRGModeSwap(t *testing.T) {
	m := newMMC3Mapper(4, 1) // 8 8KB PRG banks total
	m.store(0x8000, 6)       // select register 6
	m.store(0x8001, 2)       // reg[6] = 2

	if got := m.mapPRG(0x8000); got != 2*0x2000 {
		t.Errorf("mapPRG(0x8000) = %#x, want %#x", got, 2*0x2000)
	}
	// $C000-$DFFF is fixed to bankCount-2 in mode 0.
	if got := m.mapPRG(0xC000); got != (8-2)*0x2000 {
		t.Errorf("mapPRG(0xC000) = %#x, want %#x", got, (8-2)*0x2000)
	}
	// $E000-$FFFF is always fixed to the last bank.
	if got := m.mapPRG(0xE000); got != (8-1)*0x2000 {
		t.Errorf("mapPRG(0xE000) = %#x, want %#x", got, (8-1)*0x2000)
	}
}

func TestMMC3IRQCounterFiresAtZero(t *testing.T) {
	m := newMMC3Mapper(4, 1)
	m.irqLatch = 2
	m.irqEnabled = true
	m.irqReload = true

	if fired := m.tickIRQ(); fired {
		t.Fatal("reload tick must not fire")
	}
	if m.irqCounter != 2 {
		t.Fatalf("irqCounter after reload = %d, want 2", m.irqCounter)
	}

	if fired := m.tickIRQ(); fired {
		t.Fatal("tick to 1 must not fire")
	}
	if fired := m.tickIRQ(); !fired {
		t.Fatal("tick to 0 with irqEnabled must fire")
	}
}

func TestMMC3IRQDisabledNeverFires(t *testing.T) {
	m := newMMC3Mapper(4, 1)
	m.irqLatch = 0
	m.irqEnabled = false
	m.irqReload = true

	m.tickIRQ()
	if fired := m.tickIRQ(); fired {
		t.Fatal("tickIRQ must not fire while irqEnabled is false")
	}
}

func TestMMC3MirroringBit(t *testing.T) {
	m := newMMC3Mapper(2, 1)
	m.store(0xA000, 1) // even address, mirror bit
	if mode, ok := m.mirroring(); !ok || mode != mirrorHorizontal {
		t.Fatalf("mirroring() = %v, %v; want horizontal, true", mode, ok)
	}

	m.store(0xA000, 0)
	if mode, ok := m.mirroring(); !ok || mode != mirrorVertical {
		t.Fatalf("mirroring() = %v, %v; want vertical, true", mode, ok)
	}
}
