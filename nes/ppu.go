package nes

// ╔═════════════════╤═══════╤════════════════════════════╤════════════════╗
// ║ Address Range   │ Size  │ Purpose                    │ Kind           ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x0000 - 0x0FFF │ 4096  │ Pattern Table #0           │                ║
// ║╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤ Pattern Tables ║
// ║ 0x1000 - 0x1FFF │ 4096  │ Pattern Table #1           │                ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x2000 - 0x2FFF │ 4096  │ Name Tables #0-#3          │ Name Tables    ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x3000 - 0x3EFF │ 3840  │ Mirror of 0x2000-0x2EFF    │ Mirror         ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x3F00 - 0x3F1F │ 32    │ Palette RAM indexes        │ Palette Data   ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x3F20 - 0x3FFF │ 224   │ Mirrors of 0x3F00 - 0x3F1F │                ║
// ║╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤ Mirrors        ║
// ║ 0x4000 - 0xFFFF │ 49152 │ Mirrors of 0x0000 - 0x3FFF │                ║
// ╚═════════════════╧═══════╧════════════════════════════╧════════════════╝

const (
	screenWidth  = 256
	screenHeight = 240
)

// palette is the canonical 2C02 RGB lookup table, one entry per 6-bit
// palette index. Index 0 of a quadrant is read from the universal
// background color, never drawn through this table directly.
var palette = [64][3]byte{
	{0x7C, 0x7C, 0x7C}, {0x00, 0x00, 0xFC}, {0x00, 0x00, 0xBC}, {0x44, 0x28, 0xBC},
	{0x94, 0x00, 0x84}, {0xA8, 0x00, 0x20}, {0xA8, 0x10, 0x00}, {0x88, 0x14, 0x00},
	{0x50, 0x30, 0x00}, {0x00, 0x78, 0x00}, {0x00, 0x68, 0x00}, {0x00, 0x58, 0x00},
	{0x00, 0x40, 0x58}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xBC, 0xBC, 0xBC}, {0x00, 0x78, 0xF8}, {0x00, 0x58, 0xF8}, {0x68, 0x44, 0xFC},
	{0xD8, 0x00, 0xCC}, {0xE4, 0x00, 0x58}, {0xF8, 0x38, 0x00}, {0xE4, 0x5C, 0x10},
	{0xAC, 0x7C, 0x00}, {0x00, 0xB8, 0x00}, {0x00, 0xA8, 0x00}, {0x00, 0xA8, 0x44},
	{0x00, 0x88, 0x88}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xF8, 0xF8, 0xF8}, {0x3C, 0xBC, 0xFC}, {0x68, 0x88, 0xFC}, {0x98, 0x78, 0xF8},
	{0xF8, 0x78, 0xF8}, {0xF8, 0x58, 0x98}, {0xF8, 0x78, 0x58}, {0xFC, 0xA0, 0x44},
	{0xF8, 0xB8, 0x00}, {0xB8, 0xF8, 0x18}, {0x58, 0xD8, 0x54}, {0x58, 0xF8, 0x98},
	{0x00, 0xE8, 0xD8}, {0x78, 0x78, 0x78}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFC, 0xFC, 0xFC}, {0xA4, 0xE4, 0xFC}, {0xB8, 0xB8, 0xF8}, {0xD8, 0xB8, 0xF8},
	{0xF8, 0xB8, 0xF8}, {0xF8, 0xA4, 0xC0}, {0xF0, 0xD0, 0xB0}, {0xFC, 0xE0, 0xA8},
	{0xF8, 0xD8, 0x78}, {0xD8, 0xF8, 0x78}, {0xB8, 0xF8, 0xB8}, {0xB8, 0xF8, 0xD8},
	{0x00, 0xFC, 0xFC}, {0xF8, 0xD8, 0xF8}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}

const (
	ppuctrl   = 0x2000
	ppumask   = 0x2001
	ppustatus = 0x2002
	oamaddr   = 0x2003
	oamdata   = 0x2004
	ppuscroll = 0x2005
	ppuaddr   = 0x2006
	ppudata   = 0x2007
	oamdma    = 0x4014
)

// ppuCtrl bits, $2000.
const (
	ctrlNametable        = 0x03
	ctrlAddrIncrement    = 0x04
	ctrlSpriteTable      = 0x08
	ctrlBackgroundTable  = 0x10
	ctrlSpriteSize       = 0x20
	ctrlGenerateNMI      = 0x80
)

// ppuMask bits, $2001.
const (
	maskGreyscale         = 0x01
	maskShowBackgroundLft = 0x02
	maskShowSpritesLft    = 0x04
	maskShowBackground    = 0x08
	maskShowSprites       = 0x10
)

// ppuStatus bits, $2002.
const (
	statusSpriteOverflow = 0x20
	statusSprite0Hit     = 0x40
	statusVerticalBlank  = 0x80
)

type ppu struct {
	cartridge *cartridge

	ctrl   byte
	mask   byte
	status byte

	oamAddress byte
	oamData    [256]byte
	secondaryOAM [32]byte
	spritesInRange byte
	sprite0Next    bool
	spriteSourceIndex [8]byte

	readBuffer  byte
	registerBus byte

	dot      int
	scanLine int
	frame    uint64

	paletteData [32]byte
	nametables  [4][1024]byte

	v, t uint16
	x    byte
	w    byte

	addressBus    uint16
	nametableByte byte
	attributeByte byte
	lowTileByte   byte
	highTileByte  byte

	lowTileRegister  uint16
	highTileRegister uint16
	lowAttrRegister  uint16
	highAttrRegister uint16

	suppressNMI bool

	buffer []byte // screenWidth*screenHeight*3, RGB24
}

func newPpu() *ppu {
	return &ppu{
		buffer: make([]byte, screenWidth*screenHeight*3),
	}
}

func (p *ppu) spritePixel() (pixel, colorIdx, priority byte, spriteZero bool) {
	outputX := p.dot - 1
	if p.mask&maskShowSprites == 0 || (outputX < 8 && p.mask&maskShowSpritesLft == 0) {
		return 0, 0, 0, false
	}

	tall := p.ctrl&ctrlSpriteSize != 0

	for i := byte(0); i < p.spritesInRange; i++ {
		y := p.secondaryOAM[i*4] + 1
		tile := uint16(p.secondaryOAM[i*4+1])
		attr := p.secondaryOAM[i*4+2]
		x := p.secondaryOAM[i*4+3]

		pal := attr & 0x03 << 2
		spritePriority := attr >> 5 & 0x01
		flipH := attr>>6&0x01 > 0
		flipV := attr>>7&0x01 > 0

		if outputX < int(x) || outputX > int(x)+7 {
			continue
		}

		height := 8
		if tall {
			height = 16
		}
		rowInSprite := p.scanLine - int(y)
		if rowInSprite < 0 || rowInSprite >= height {
			continue
		}
		if flipV {
			rowInSprite = height - 1 - rowInSprite
		}

		var patternTable uint16
		var patternNum uint16
		var row uint16
		if tall {
			patternTable = (tile & 1) * 0x1000
			patternNum = tile &^ 1
			if rowInSprite >= 8 {
				patternNum++
				rowInSprite -= 8
			}
			row = uint16(rowInSprite)
		} else {
			patternTable = p.spriteTable()
			patternNum = tile
			row = uint16(rowInSprite)
		}

		patternX := byte(outputX) - x

		patternLo := p.read(patternTable + patternNum*16 + row)
		patternHi := p.read(patternTable + patternNum*16 + row + 8)

		pixOffset := patternX
		if !flipH {
			pixOffset = 7 - patternX
		}

		pixLo := patternLo >> pixOffset & 0x01
		pixHi := patternHi >> pixOffset & 0x01 << 1

		pixel = pixLo | pixHi
		colorIdx = pixel | 0x10 | pal

		if pixel == 0 {
			continue
		}

		return pixel, colorIdx, spritePriority, p.sprite0Next && p.spriteSourceIndex[i] == 0
	}

	return 0, 0, 0, false
}

func (p *ppu) bgPixel() (pixel, colorIdx byte) {
	x := p.dot - 1

	if p.mask&maskShowBackground == 0 || (x < 8 && p.mask&maskShowBackgroundLft == 0) {
		return 0, 0
	}

	bgPixelLo := byte(p.lowTileRegister >> (15 - p.x) & 0x1)
	bgPixelHi := byte(p.highTileRegister >> (15 - p.x) & 0x1)

	bgAttrLo := byte(p.lowAttrRegister >> (15 - p.x) & 0x1)
	bgAttrHi := byte(p.highAttrRegister >> (15 - p.x) & 0x1)
	attr := bgAttrHi<<1 | bgAttrLo

	pixel = bgPixelHi<<1 | bgPixelLo
	colorIdx = pixel | attr<<2
	return pixel, colorIdx
}

func (p *ppu) setPixel(x, y int, idx byte) {
	off := (y*screenWidth + x) * 3
	rgb := palette[p.readPalette(uint16(idx))&0x3F]
	p.buffer[off] = rgb[0]
	p.buffer[off+1] = rgb[1]
	p.buffer[off+2] = rgb[2]
}

func (p *ppu) render() {
	bgPix, bgColor := p.bgPixel()
	spPix, spColor, priority, szero := p.spritePixel()

	// BG pixel	Sprite pixel	Priority	Output
	// 0		0				X			BG ($3F00)
	// 0		1-3				X			Sprite
	// 1-3		0				X			BG
	// 1-3		1-3				0			Sprite
	// 1-3		1-3				1			BG
	var col byte
	switch {
	case bgPix == 0 && spPix == 0:
		col = 0
	case bgPix == 0 && spPix != 0:
		col = spColor
	case bgPix != 0 && spPix == 0:
		col = bgColor
	case bgPix != 0 && spPix != 0 && priority == 0:
		if szero && p.status&statusSprite0Hit == 0 && p.dot-1 != 255 {
			p.status |= statusSprite0Hit
		}
		col = spColor
	default: // bgPix != 0 && spPix != 0 && priority == 1
		if szero && p.status&statusSprite0Hit == 0 && p.dot-1 != 255 {
			p.status |= statusSprite0Hit
		}
		col = bgColor
	}

	p.setPixel(p.dot-1, p.scanLine, col)
}

// tick advances the PPU by one dot. It is driven three times per CPU cycle.
func (p *ppu) tick(cpu *cpu) {
	renderingEnabled := p.renderingEnabled()
	preRender := p.scanLine == 261
	visibleFrame := p.scanLine < 240
	visibleDot := p.dot > 0 && p.dot < 257
	invisibleDot := p.dot > 320 && p.dot < 341
	opFrame := preRender || visibleFrame
	doOp := renderingEnabled && opFrame
	fetchDot := visibleDot || invisibleDot
	shiftDot := (p.dot > 0 && p.dot < 257) || (p.dot > 320 && p.dot < 337)

	if renderingEnabled && visibleFrame && visibleDot {
		p.render()
	}

	if doOp && shiftDot {
		p.lowTileRegister <<= 1
		p.highTileRegister <<= 1
		p.lowAttrRegister <<= 1
		p.highAttrRegister <<= 1
	}

	if doOp && fetchDot {
		switch (p.dot - 1) % 8 {
		case 0:
			p.addressBus = 0x2000 | (p.v & 0x0FFF)
		case 1:
			p.nametableByte = p.read(p.addressBus)
		case 2:
			p.addressBus = 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		case 3:
			g := p.v & 0x40 >> 5
			b := p.v & 0x02 >> 1
			shift := (g | b) << 1
			p.attributeByte = p.read(p.addressBus) >> shift & 0x03
		case 4:
			fineY := p.v >> 12 & 0x07
			p.addressBus = p.backgroundTable() + uint16(p.nametableByte)*16 + fineY
		case 5:
			p.lowTileByte = p.read(p.addressBus)
		case 6:
			fineY := p.v >> 12 & 0x07
			p.addressBus = p.backgroundTable() + uint16(p.nametableByte)*16 + fineY + 8
		case 7:
			p.highTileByte = p.read(p.addressBus)

			p.highTileRegister = p.highTileRegister&0xFF00 | uint16(p.highTileByte)
			p.lowTileRegister = p.lowTileRegister&0xFF00 | uint16(p.lowTileByte)

			p.highAttrRegister |= uint16(p.attributeByte>>1) * 0xFF
			p.lowAttrRegister |= uint16(p.attributeByte&0x1) * 0xFF

			p.incrementX()
		}
	}

	switch {
	case doOp && p.dot == 256:
		p.incrementY()
	case doOp && p.dot == 257:
		p.copyX()
	case renderingEnabled && preRender && p.dot >= 280 && p.dot <= 304:
		p.copyY()
	}

	if renderingEnabled && visibleFrame {
		p.evaluateSprites()
	} else {
		p.spritesInRange = 0
	}

	if doOp && p.dot == 260 {
		if p.cartridge.tickIRQ() {
			cpu.trigger(irq)
		}
	}

	switch {
	case p.scanLine == 241 && p.dot == 1:
		if !p.suppressNMI {
			p.status |= statusVerticalBlank
		}
		p.suppressNMI = false
	case p.scanLine == 241 && p.dot == 20:
		if p.status&statusVerticalBlank != 0 && p.ctrl&ctrlGenerateNMI != 0 {
			cpu.trigger(nmi)
		}
	case preRender && p.dot == 1:
		p.status &^= statusSpriteOverflow
		p.status &^= statusSprite0Hit
		p.status &^= statusVerticalBlank
	}

	switch {
	case p.dot == 340 && preRender:
		p.dot = 0
		p.scanLine = 0
		p.frame++
	case p.dot == 340:
		p.dot = 0
		p.scanLine++
	default:
		p.dot++
	}
}

func (p *ppu) evaluateSprites() {
	if p.dot == 256 {
		tall := p.ctrl&ctrlSpriteSize != 0
		height := 8
		if tall {
			height = 16
		}

		p.spritesInRange = 0
		p.sprite0Next = false
		secAddress := 0

		for i := 0; i < 64; i++ {
			y := p.oamData[i*4]
			row := p.scanLine - int(y)

			if row < 0 || row >= height {
				continue
			}

			if p.spritesInRange < 8 {
				p.secondaryOAM[secAddress*4] = p.oamData[i*4]
				p.secondaryOAM[secAddress*4+1] = p.oamData[i*4+1]
				p.secondaryOAM[secAddress*4+2] = p.oamData[i*4+2]
				p.secondaryOAM[secAddress*4+3] = p.oamData[i*4+3]
				p.spriteSourceIndex[secAddress] = byte(i)
				secAddress++
			}
			if i == 0 {
				p.sprite0Next = true
			}
			p.spritesInRange++
		}
		if p.spritesInRange > 8 {
			p.spritesInRange = 8
			p.status |= statusSpriteOverflow
		}
	}
}

func (p *ppu) readPort(address uint16, cpu *cpu) byte {
	if address < 0x4000 {
		address = (address-0x2000)%0x08 + 0x2000
	}

	switch address {
	case ppustatus:
		result := p.registerBus&0x1F | p.status
		p.status &^= statusVerticalBlank
		p.w = 0
		if p.scanLine == 241 && (p.dot == 0 || p.dot == 1) {
			p.suppressNMI = true
		}
		return result

	case oamdata:
		v := p.oamData[p.oamAddress]
		p.registerBus = v
		return v

	case ppudata:
		var ret byte
		if p.v >= 0x3F00 && p.v <= 0x3FFF {
			ret = p.read(p.v)
			p.readBuffer = p.read(p.v - 0x1000)
		} else {
			ret = p.readBuffer
			p.readBuffer = p.read(p.v)
		}

		p.incrementV()

		p.registerBus = ret
		return ret
	}

	return p.registerBus
}

func (p *ppu) writePort(address uint16, value byte, cpu *cpu) {
	if address < 0x4000 {
		address = (address-0x2000)%0x08 + 0x2000
	}
	p.registerBus = value

	switch address {
	case ppuctrl:
		wasEnabled := p.ctrl&ctrlGenerateNMI != 0
		p.ctrl = value

		if !wasEnabled && p.ctrl&ctrlGenerateNMI != 0 && p.status&statusVerticalBlank != 0 {
			cpu.trigger(nmi)
		}

		d := uint16(value)
		p.t = p.t&0xF3FF | d&0x3<<10

	case ppumask:
		p.mask = value

	case oamaddr:
		p.oamAddress = value

	case oamdata:
		if p.currentlyRendering() {
			return
		}
		p.oamData[p.oamAddress] = value
		p.oamAddress++

	case ppuscroll:
		d := uint16(value)
		if p.w == 0 {
			p.t = p.t&0xFFE0 | d>>3
			p.x = value & 0x07
			p.w = 1
		} else {
			fineY := d & 0x07 << 12
			coarseY := d & 0xF8 << 2
			p.t = p.t&0x8C1F | fineY | coarseY
			p.w = 0
		}

	case ppuaddr:
		d := uint16(value)
		if p.w == 0 {
			p.w = 1
			p.t = p.t&0xC0FF | d&0x3F<<8
			p.t &^= 0x4000
		} else {
			p.t = p.t&0xFF00 | d
			p.v = p.t
			p.w = 0
		}

	case ppudata:
		p.write(p.v, value)
		p.incrementV()

	case oamdma:
		p.oamData[p.oamAddress] = value
		p.oamAddress++
	}
}

func (p *ppu) read(address uint16) byte {
	address %= 0x4000
	switch {
	case address < 0x2000:
		return p.cartridge.read(address)
	case address < 0x3F00:
		return p.readNametable(address)
	default:
		return p.readPalette(address)
	}
}

func (p *ppu) write(address uint16, value byte) {
	address %= 0x4000
	switch {
	case address < 0x2000:
		p.cartridge.write(address, value)
	case address < 0x3F00:
		p.writeNametable(address, value)
	default:
		p.writePalette(address, value)
	}
}

func (p *ppu) readPalette(address uint16) byte {
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		address -= 0x10
	}
	v := p.paletteData[address%32]
	if p.mask&maskGreyscale != 0 {
		v &= 0x30
	}
	return v
}

func (p *ppu) writePalette(address uint16, value byte) {
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		address -= 0x10
	}
	p.paletteData[address%32] = value
}

// nametableIndex resolves a $2000-$2FFF address to one of the four logical
// 1KB nametables, honoring the cartridge's mirroring.
func (p *ppu) nametableIndex(addr uint16) int {
	table := int((addr - 0x2000) / 0x400 % 4)
	switch p.cartridge.mirroring() {
	case mirrorHorizontal:
		return table &^ 1 | table>>1
	case mirrorVertical:
		return table & 1
	case mirrorSingleScreen:
		return 0
	default: // mirrorFourScreen
		return table
	}
}

func (p *ppu) readNametable(addr uint16) byte {
	return p.nametables[p.nametableIndex(addr)][addr%1024]
}

// writeNametable stores val in every logical nametable that shares addr's
// mirrored slot, so mirrored tables hold identical contents.
func (p *ppu) writeNametable(addr uint16, val byte) {
	idx := p.nametableIndex(addr)
	for table := 0; table < 4; table++ {
		if p.nametableIndex(0x2000+uint16(table)*0x400) == idx {
			p.nametables[table][addr%1024] = val
		}
	}
}

func (p *ppu) incrementV() {
	if p.ctrl&ctrlAddrIncrement != 0 {
		p.v += 32
	} else {
		p.v++
	}
	p.v &= 0x7FFF
}

// The coarse X component of v needs to be incremented when the next tile is
// reached. Bits 0-4 are incremented, with overflow toggling bit 10.
func (p *ppu) incrementX() {
	coarseX := p.v & 0x001F

	if coarseX == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
		return
	}

	p.v++
}

func (p *ppu) copyX() {
	p.v = p.v&^0x041F | p.t&0x041F
}

// Fine Y is incremented at dot 256 of each scanline, overflowing to coarse
// Y and finally wrapping among the nametables vertically.
func (p *ppu) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}

	p.v &^= 0x7000

	coarseY := (p.v & 0x03E0) >> 5

	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}

	p.v = p.v&^0x03E0 | coarseY<<5
}

func (p *ppu) copyY() {
	p.v = p.v&^0x7BE0 | p.t&0x7BE0
}

func (p *ppu) backgroundTable() uint16 {
	if p.ctrl&ctrlBackgroundTable != 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *ppu) spriteTable() uint16 {
	if p.ctrl&ctrlSpriteTable != 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *ppu) renderingEnabled() bool {
	return p.mask&maskShowBackground != 0 || p.mask&maskShowSprites != 0
}

func (p *ppu) currentlyRendering() bool {
	return p.renderingEnabled() && (p.scanLine < 240 || p.scanLine == 261)
}

// drawPatternTables renders both 4KB pattern tables side by side into buf
// (256x128 RGB24) using the given palette index, for debugging tools.
func (p *ppu) drawPatternTables(buf []byte, pal byte) {
	draw := func(table uint16, xoffset int) {
		for y := 0; y < 128; y++ {
			coarseY := y / 8
			fineY := uint16(y % 8)
			for tile := 0; tile < 16; tile++ {
				fineX := tile * 8
				patternNum := uint16(coarseY*16 + tile)

				patternLo := p.read(table + patternNum*16 + fineY)
				patternHi := p.read(table + patternNum*16 + fineY + 8)

				for pixel := 0; pixel < 8; pixel++ {
					pixello := patternLo & 0x80 >> 7
					pixelhi := patternHi & 0x80 >> 6
					patternLo <<= 1
					patternHi <<= 1
					idx := pal<<2 | pixello | pixelhi
					rgb := palette[p.readPalette(uint16(idx))&0x3F]
					off := (y*256 + xoffset + fineX + pixel) * 3
					buf[off] = rgb[0]
					buf[off+1] = rgb[1]
					buf[off+2] = rgb[2]
				}
			}
		}
	}

	draw(0x0000, 0)
	draw(0x1000, 128)
}

// drawNametables renders all four logical nametables into buf (512x480
// RGB24), for debugging tools.
func (p *ppu) drawNametables(buf []byte) {
	const w = 512
	drawOne := func(base uint16, xoff, yoff int) {
		for row := 0; row < 30; row++ {
			for col := 0; col < 32; col++ {
				tileAddr := base + uint16(row*32+col)
				tile := p.readNametable(tileAddr)

				attrAddr := base + 0x3C0 + uint16((row/4)*8+col/4)
				attr := p.readNametable(attrAddr)
				shift := uint((row%4)/2*4 + (col%4)/2*2)
				quadrant := (attr >> shift) & 0x3

				for fineY := uint16(0); fineY < 8; fineY++ {
					lo := p.read(p.backgroundTable() + uint16(tile)*16 + fineY)
					hi := p.read(p.backgroundTable() + uint16(tile)*16 + fineY + 8)
					for px := 0; px < 8; px++ {
						bit := uint(7 - px)
						pixel := (lo>>bit)&1 | (hi>>bit)&1<<1
						idx := quadrant<<2 | pixel
						rgb := palette[p.readPalette(uint16(idx))&0x3F]
						x := xoff + col*8 + px
						y := yoff + row*8 + int(fineY)
						off := (y*w + x) * 3
						buf[off] = rgb[0]
						buf[off+1] = rgb[1]
						buf[off+2] = rgb[2]
					}
				}
			}
		}
	}

	drawOne(0x2000, 0, 0)
	drawOne(0x2400, 256, 0)
	drawOne(0x2800, 0, 240)
	drawOne(0x2C00, 256, 240)
}
