package vm

import "fmt"

// Memory is the typed storage for one Machine: program memory (FLASH),
// SRAM, EEPROM, the 32 general-purpose registers and the 64 I/O registers,
// presented both as typed banks and through the unified byte-addressed data
// map described by the simulator's memory model.
type Memory struct {
	Flash   []uint16 // program memory, word-addressed
	SRAM    []byte
	EEPROM  []byte
	R       [GPRegisterCount]byte
	IO      [IORegisterCount]byte
	SREG    SREG

	dataMemSize uint32
}

// NewMemory allocates a Memory with the given platform sizes. flashBytes is
// rounded down to a whole number of words.
func NewMemory(flashBytes, sramSize, eepromSize int) *Memory {
	m := &Memory{
		Flash:  make([]uint16, flashBytes/2),
		SRAM:   make([]byte, sramSize),
		EEPROM: make([]byte, eepromSize),
	}
	m.dataMemSize = uint32(GPRegisterCount + IORegisterCount + sramSize)
	return m
}

// FlashWords returns the number of addressable 16-bit program words.
func (m *Memory) FlashWords() int {
	return len(m.Flash)
}

// LoadProgram copies a raw byte image into FLASH, little-endian word packing:
// FLASH[i] = bytes[2i] | (bytes[2i+1]<<8). Excess bytes beyond FLASH capacity
// are ignored; a short image leaves the remaining words zero. The input
// slice is never aliased into FLASH.
func (m *Memory) LoadProgram(image []byte) {
	words := len(m.Flash)
	for i := 0; i < words; i++ {
		lo, hi := byte(0), byte(0)
		if 2*i < len(image) {
			lo = image[2*i]
		}
		if 2*i+1 < len(image) {
			hi = image[2*i+1]
		}
		m.Flash[i] = uint16(lo) | uint16(hi)<<8
	}
}

// ProgWord reads FLASH at a word address, modulo the number of words.
func (m *Memory) ProgWord(addr uint16) uint16 {
	return m.Flash[int(addr)%len(m.Flash)]
}

// SetProgWord writes FLASH at a word address, modulo the number of words.
func (m *Memory) SetProgWord(addr uint16, v uint16) {
	m.Flash[int(addr)%len(m.Flash)] = v
}

// ProgByte reads a single byte from program memory; byte a of word a>>1,
// little-endian within the word.
func (m *Memory) ProgByte(addr uint16) byte {
	word := m.ProgWord(addr >> 1)
	return byte(word >> (8 * (addr & 1)))
}

// wrappedAddr folds an address into [0, dataMemSize) per the unified
// data-memory map's wraparound rule.
func (m *Memory) wrappedAddr(addr uint32) uint32 {
	return addr % m.dataMemSize
}

// DataGet reads one byte from the unified data-memory map. A read at 0x5F
// (I/O address 0x3F) returns the packed SREG image. Observer callbacks fire
// around accesses that land in the I/O range.
func (m *Memory) DataGet(obs Observer, addr uint32) byte {
	a := m.wrappedAddr(addr)

	switch {
	case a < GPRegisterCount:
		return m.R[a]

	case a < GPRegisterCount+IORegisterCount:
		ioAddr := byte(a - GPRegisterCount)
		notify := obs != nil
		if notify {
			obs.PreGet(uint16(a))
		}
		var v byte
		if ioAddr == IOAddrSREG {
			v = m.SREG.Pack()
		} else {
			v = m.IO[ioAddr]
		}
		if notify {
			obs.PostGet(uint16(a), v)
		}
		return v

	default:
		sramOff := a - (GPRegisterCount + IORegisterCount)
		if int(sramOff) < len(m.SRAM) {
			return m.SRAM[sramOff]
		}
		return 0
	}
}

// DataSet writes one byte into the unified data-memory map. A write at 0x5F
// unpacks into the individual SREG flags. Observer callbacks fire around
// accesses that land in the I/O range.
func (m *Memory) DataSet(obs Observer, addr uint32, value byte) {
	a := m.wrappedAddr(addr)

	switch {
	case a < GPRegisterCount:
		m.R[a] = value

	case a < GPRegisterCount+IORegisterCount:
		ioAddr := byte(a - GPRegisterCount)
		notify := obs != nil
		if notify {
			obs.PreSet(uint16(a), value)
		}
		if ioAddr == IOAddrSREG {
			m.SREG.Unpack(value)
		} else {
			m.IO[ioAddr] = value
		}
		if notify {
			obs.PostSet(uint16(a))
		}

	default:
		sramOff := a - (GPRegisterCount + IORegisterCount)
		if int(sramOff) < len(m.SRAM) {
			m.SRAM[sramOff] = value
		}
		// writes past the end of SRAM are discarded
	}
}

// GetSP returns the 16-bit stack pointer, stored low byte first at I/O
// address 0x3D / high byte at 0x3E.
func (m *Memory) GetSP() uint16 {
	return uint16(m.IO[IOAddrSPL]) | uint16(m.IO[IOAddrSPH])<<8
}

// SetSP sets the 16-bit stack pointer.
func (m *Memory) SetSP(v uint16) {
	m.IO[IOAddrSPL] = byte(v)
	m.IO[IOAddrSPH] = byte(v >> 8)
}

// Push8 writes a byte at the current SP, then decrements SP by one.
func (m *Memory) Push8(obs Observer, v byte) {
	sp := m.GetSP()
	m.DataSet(obs, uint32(sp), v)
	m.SetSP(sp - 1)
}

// Pop8 increments SP by one, then reads the byte at the new SP.
func (m *Memory) Pop8(obs Observer) byte {
	sp := m.GetSP() + 1
	m.SetSP(sp)
	return m.DataGet(obs, uint32(sp))
}

// Push16 writes the low byte at SP and the high byte at SP-1 (big-endian in
// memory), then decrements SP by two.
func (m *Memory) Push16(obs Observer, v uint16) {
	sp := m.GetSP()
	m.DataSet(obs, uint32(sp), byte(v))
	m.DataSet(obs, uint32(sp-1), byte(v>>8))
	m.SetSP(sp - 2)
}

// Pop16 is the inverse of Push16: increments SP by two, then reads the high
// byte from SP-1 and the low byte from SP.
func (m *Memory) Pop16(obs Observer) uint16 {
	sp := m.GetSP() + 2
	m.SetSP(sp)
	hi := m.DataGet(obs, uint32(sp-1))
	lo := m.DataGet(obs, uint32(sp))
	return uint16(hi)<<8 | uint16(lo)
}

// GetPair reads a 16-bit register pair (low register at index lo, high at lo+1).
func (m *Memory) GetPair(lo int) uint16 {
	return uint16(m.R[lo]) | uint16(m.R[lo+1])<<8
}

// SetPair writes a 16-bit register pair.
func (m *Memory) SetPair(lo int, v uint16) {
	m.R[lo] = byte(v)
	m.R[lo+1] = byte(v >> 8)
}

func (m *Memory) String() string {
	return fmt.Sprintf("Memory{flash=%dw sram=%db eeprom=%db}", len(m.Flash), len(m.SRAM), len(m.EEPROM))
}
