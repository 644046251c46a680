package nes

import "testing"

func TestJoypadReadOrder(t *testing.T) {
	var j joypad
	j.press(A)
	j.press(Right)

	j.write(1) // strobe held, index pinned to 0
	j.write(0) // strobe released, reads now advance

	want := []byte{1, 0, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		if got := j.read(); got != w {
			t.Fatalf("read() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestJoypadStrobeHeld(t *testing.T) {
	var j joypad
	j.press(A)
	j.write(1)

	for i := 0; i < 3; i++ {
		if got := j.read(); got != 1 {
			t.Fatalf("read() while strobed = %d, want 1 (A held)", got)
		}
	}
}

func TestJoypadPastEighthRead(t *testing.T) {
	var j joypad
	j.write(0)

	for i := 0; i < 8; i++ {
		j.read()
	}

	if got := j.read(); got != 1 {
		t.Fatalf("read() past 8th = %d, want 1", got)
	}
}

func TestJoypadRelease(t *testing.T) {
	var j joypad
	j.press(B)
	j.release(B)

	j.write(1)
	if got := j.read(); got != 0 {
		t.Fatalf("read() after release = %d, want 0", got)
	}
}
