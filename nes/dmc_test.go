package nes

import "testing"

func TestDMCSampleAddressAndLength(t *testing.T) {
	d := newDmc()

	d.writePort(0x4012, 0x01)
	if d.sampleAddress != 0xC000+64 {
		t.Errorf("sampleAddress = %#x, want %#x", d.sampleAddress, 0xC000+64)
	}

	d.writePort(0x4013, 0x01)
	if d.sampleLength != 16+1 {
		t.Errorf("sampleLength = %d, want %d", d.sampleLength, 17)
	}
}

func TestDMCEnableStartsPlayback(t *testing.T) {
	d := newDmc()
	d.writePort(0x4012, 0)
	d.writePort(0x4013, 0)
	d.writePort(0x4015, 0x10)

	if !d.enabled() {
		t.Fatal("enabled() = false after setting the enable bit")
	}
	if d.currentAddress != d.sampleAddress {
		t.Errorf("currentAddress = %#x, want sampleAddress %#x", d.currentAddress, d.sampleAddress)
	}
}

func TestDMCDisableClearsBytesRemaining(t *testing.T) {
	d := newDmc()
	d.writePort(0x4015, 0x10)
	d.writePort(0x4015, 0x00)

	if d.enabled() {
		t.Fatal("enabled() = true after clearing the enable bit")
	}
}

func TestDMCFetchSampleAdvancesAndWraps(t *testing.T) {
	d := newDmc()
	d.read = func(addr uint16) byte { return 0x55 }
	d.currentAddress = 0xFFFF
	d.bytesRemaining = 2

	d.fetchSample()
	if !d.bufferFilled {
		t.Fatal("bufferFilled should be true after a fetch")
	}
	if d.sampleBuffer != 0x55 {
		t.Errorf("sampleBuffer = %#x, want %#x", d.sampleBuffer, 0x55)
	}
	if d.currentAddress != 0x8000 {
		t.Errorf("currentAddress after wrap = %#x, want %#x", d.currentAddress, 0x8000)
	}
	if d.bytesRemaining != 1 {
		t.Errorf("bytesRemaining = %d, want 1", d.bytesRemaining)
	}
}

func TestDMCLoopRestartsSample(t *testing.T) {
	d := newDmc()
	d.read = func(addr uint16) byte { return 0 }
	d.loop = true
	d.sampleAddress = 0xC000
	d.sampleLength = 1
	d.currentAddress = 0xC000
	d.bytesRemaining = 1

	d.fetchSample()

	if d.bytesRemaining != d.sampleLength {
		t.Errorf("bytesRemaining after loop restart = %d, want %d", d.bytesRemaining, d.sampleLength)
	}
	if d.currentAddress != d.sampleAddress {
		t.Errorf("currentAddress after loop restart = %#x, want %#x", d.currentAddress, d.sampleAddress)
	}
}

func TestDMCNoLoopRaisesIRQAtEnd(t *testing.T) {
	d := newDmc()
	d.read = func(addr uint16) byte { return 0 }
	d.loop = false
	d.irqEnabled = true
	d.bytesRemaining = 1

	d.fetchSample()

	if !d.irqPending {
		t.Fatal("irqPending should be set once the sample finishes without looping")
	}
}

func TestDMCIRQDisabledByWriteClearsPending(t *testing.T) {
	d := newDmc()
	d.irqPending = true

	d.writePort(0x4010, 0x00) // IRQ enable bit clear

	if d.irqPending {
		t.Fatal("writePort(0x4010) with IRQ disabled should clear irqPending")
	}
}

func TestDMCOutputLevelClampedByWrite(t *testing.T) {
	d := newDmc()
	d.writePort(0x4011, 0xFF)

	if d.output != 0x7F {
		t.Errorf("output = %#x, want %#x (top bit masked)", d.output, 0x7F)
	}
}

func TestDMCClockFreqShiftsSilentWithoutBuffer(t *testing.T) {
	d := newDmc()
	d.freqTimer = 0
	d.freqCounter = 0
	before := d.output

	d.clockFreq()

	if d.output != before {
		t.Errorf("output changed to %d while silenced, want unchanged %d", d.output, before)
	}
}
