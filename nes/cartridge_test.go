package nes

import (
	"bytes"
	"fmt"
	"testing"
)

type check func(*cartridge) error
type romfn func([]byte) ([]byte, check)

func TestLoadRom(t *testing.T) {
	empty := func([]byte) ([]byte, check) {
		return []byte{}, isNil
	}
	tooShort := func([]byte) ([]byte, check) {
		return []byte{'N', 'E', 'S', 0x1A, 0, 0, 0, 0, 0, 0}, isNil
	}
	invalidMagic1 := func([]byte) ([]byte, check) {
		return []byte{'N', 'O', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, isNil
	}
	invalidMagic2 := func([]byte) ([]byte, check) {
		return []byte{'N', 'E', 'S', ' ', 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, isNil
	}

	tests := []struct {
		name    string
		rom     []romfn
		wantErr bool
	}{
		{name: "empty", rom: []romfn{empty}, wantErr: true},
		{name: "too short", rom: []romfn{tooShort}, wantErr: true},
		{name: "invalidMagic 1", rom: []romfn{invalidMagic1}, wantErr: true},
		{name: "invalidMagic 2", rom: []romfn{invalidMagic2}, wantErr: true},
		{name: "horizontal mirroring", rom: []romfn{withHorizontal}, wantErr: false},
		{name: "vertical mirroring", rom: []romfn{withVertical}, wantErr: false},
		{name: "has battery", rom: []romfn{withBattery}, wantErr: false},
		{name: "no battery", rom: []romfn{withoutBattery}, wantErr: false},
		{name: "has trainer", rom: []romfn{withTrainer}, wantErr: false},
		{name: "no trainer", rom: []romfn{withoutTrainer}, wantErr: false},
		{name: "has four screen", rom: []romfn{withFourScreen}, wantErr: false},
		{name: "no four screen", rom: []romfn{withoutFourScreen}, wantErr: false},
		{name: "with mapper 1 (MMC1)", rom: []romfn{withMapper(1)}, wantErr: false},
		{name: "with mapper 4 (MMC3)", rom: []romfn{withMapper(4)}, wantErr: false},
		{name: "with unsupported mapper", rom: []romfn{withMapper(255)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := baseRom()
			var checks []check

			for _, fn := range tt.rom {
				var c check
				rom, c = fn(rom)
				checks = append(checks, c)
			}

			got, err := loadRom(bytes.NewBuffer(rom))
			if (err != nil) != tt.wantErr {
				t.Errorf("loadRom() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			for _, fn := range checks {
				if err := fn(got); err != nil {
					t.Errorf("loadRom(): %s", err)
				}
			}
		})
	}
}

func TestLoadRom_mapperRange(t *testing.T) {
	for _, m := range []byte{0, 1, 2, 3, 4} {
		rom := baseRom()
		rom, _ = withMapper(m)(rom)

		got, err := loadRom(bytes.NewBuffer(rom))
		if err != nil {
			t.Errorf("TestLoadRom_mapperRange() error = %v, wantErr %v", err, nil)
			continue
		}

		if got.mapperNum != m {
			t.Errorf("TestLoadRom_mapperRange(): wanted mapper %v, got %v", m, got.mapperNum)
		}
	}
}

func baseRom() []byte {
	header := []byte{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	return append(header, make([]byte, prgMul)...)
}

func withHorizontal(rom []byte) ([]byte, check) {
	rom[6] = unset(rom[6], rc1MirrorModeVertical)
	return rom, hasMode(mirrorHorizontal)
}

func withVertical(rom []byte) ([]byte, check) {
	rom[6] = set(rom[6], rc1MirrorModeVertical)
	return rom, hasMode(mirrorVertical)
}

func withBattery(rom []byte) ([]byte, check) {
	rom[6] = set(rom[6], rc1Battery)
	return rom, hasBattery(true)
}

func withoutBattery(rom []byte) ([]byte, check) {
	rom[6] = unset(rom[6], rc1Battery)
	return rom, hasBattery(false)
}

func withTrainer(rom []byte) ([]byte, check) {
	rom[6] = set(rom[6], rc1Trainer)

	trained := make([]byte, 0, len(rom)+trainerLen)
	trained = append(trained, rom[:16]...)
	trained = append(trained, make([]byte, trainerLen)...)
	trained = append(trained, rom[16:]...)

	return trained, hasTrainer(true)
}

func withoutTrainer(rom []byte) ([]byte, check) {
	rom[6] = unset(rom[6], rc1Trainer)
	return rom, hasTrainer(false)
}

func withFourScreen(rom []byte) ([]byte, check) {
	rom[6] = set(rom[6], rc1FourScreen)
	return rom, hasFourScreen(true)
}

func withoutFourScreen(rom []byte) ([]byte, check) {
	rom[6] = unset(rom[6], rc1FourScreen)
	return rom, hasFourScreen(false)
}

func withMapper(m byte) romfn {
	lo := m & 0x0F
	hi := m & 0xF0

	return func(rom []byte) ([]byte, check) {
		rom[6] = (rom[6] & 0x0F) | (lo << 4)
		rom[7] = (rom[7] & 0x0F) | hi
		return rom, hasMapper(m)
	}
}

func isNil(c *cartridge) error {
	if c != nil {
		return fmt.Errorf("isNil() expected cartridge to be nil, got %v", c)
	}
	return nil
}

func hasMode(v mirrorMode) check {
	return func(c *cartridge) error {
		if c.headerMirror != v {
			return fmt.Errorf("hasMode() expected headerMirror to be %v, got %v", v, c.headerMirror)
		}
		return nil
	}
}

func hasBattery(v bool) check {
	return func(c *cartridge) error {
		if c.battery != v {
			return fmt.Errorf("hasBattery() expected battery to be %v, got %v", v, c.battery)
		}
		return nil
	}
}

func hasTrainer(v bool) check {
	var want int
	if v {
		want = trainerLen
	}
	return func(c *cartridge) error {
		if len(c.trainer) != want {
			return fmt.Errorf("hasTrainer() expected len(trainer) to be %v, got %v", want, len(c.trainer))
		}
		return nil
	}
}

func hasFourScreen(v bool) check {
	return func(c *cartridge) error {
		if c.fourScreen != v {
			return fmt.Errorf("hasFourScreen() expected fourScreen to be %v, got %v", v, c.fourScreen)
		}
		return nil
	}
}

func hasMapper(v byte) check {
	return func(c *cartridge) error {
		if c.mapperNum != v {
			return fmt.Errorf("hasMapper() expected mapperNum to be %v, got %v", v, c.mapperNum)
		}
		return nil
	}
}

func set(v byte, mask byte) byte {
	return v | mask
}

func unset(v byte, mask byte) byte {
	return v &^ mask
}
