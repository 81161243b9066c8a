package vm

import "math/bits"

// CPU holds the architectural state that isn't part of the unified data
// memory: the program counter, the SKIP latch and the cycle counter. SREG
// lives on Memory since it is also addressable at data address 0x5F.
type CPU struct {
	PC     uint16
	Skip   bool
	Cycles uint64
}

// Machine is a complete AVRe core: CPU state, memory banks, and optional
// instrumentation. A Machine carries no internal locking; callers that drive
// one from multiple goroutines must serialize their own Step calls.
type Machine struct {
	CPU      *CPU
	Memory   *Memory
	Observer Observer

	// Tracer and Stats are both nil by default. When set, Step reports each
	// executed cycle to them; neither affects execution semantics.
	Tracer Tracer
	Stats  *InstructionStats

	pcMask uint16
}

// NewMachine builds a zero-initialized Machine sized per the given platform
// parameters (FLASH/SRAM/EEPROM sizes in bytes).
func NewMachine(flashBytes, sramSize, eepromSize int) *Machine {
	mem := NewMemory(flashBytes, sramSize, eepromSize)
	m := &Machine{
		CPU:    &CPU{},
		Memory: mem,
	}
	m.pcMask = pcMaskFor(mem.FlashWords())
	return m
}

// pcMaskFor returns the mask applied to PC, per the invariant that PC is
// masked to log2(FLASH_WORDS) bits. When FLASH_WORDS is a power of two this
// keeps PC within [0, words); otherwise the mask covers the smallest power
// of two that contains it, and PC may exceed words-1 (ProgWord wraps such
// addresses modulo the word count).
func pcMaskFor(words int) uint16 {
	if words <= 1 {
		return 0
	}
	bitsNeeded := bits.Len(uint(words - 1))
	return uint16(1<<uint(bitsNeeded)) - 1
}

// Load copies a raw program image into FLASH and resets PC/SKIP to zero,
// per the documented lifecycle. Program bytes are copied, never aliased.
func (m *Machine) Load(image []byte) {
	m.Memory.LoadProgram(image)
	m.CPU.PC = 0
	m.CPU.Skip = false
}

// Reset zeroes PC and SKIP without touching loaded memory contents.
func (m *Machine) Reset() {
	m.CPU.PC = 0
	m.CPU.Skip = false
}

// maskPC applies the PC mask, enforcing the "PC & ~PC_MASK == 0" invariant.
func (m *Machine) maskPC(pc uint16) uint16 {
	return pc & m.pcMask
}
