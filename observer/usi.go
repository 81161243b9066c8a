// Package observer holds reference implementations of vm.Observer, the
// simulator's optional peripheral hook. USIShiftOut is the exemplar: it
// watches the ATtiny85 USI register window and renders shifted-out bits as
// printable characters, the way a two-wire bit-bang console would.
package observer

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/avr-emulator/vm"
)

// USI I/O addresses, relative to IORegisterBase, for the ATtiny85's Universal
// Serial Interface: USIBR (buffer register), USIDR (data register), USISR
// (status register, holds the 4-bit shift counter in its low nibble), USICR
// (control register).
const (
	usiBR = 0x10
	usiDR = 0x0F
	usiSR = 0x0E
	usiCR = 0x0D
)

// USIShiftOut is a reference vm.Observer that reconstructs a byte stream from
// writes to the USI data register, one bit at a time, and renders each
// completed byte as a character. It models the peripheral's hidden counter
// and accumulator as instance state: construct one USIShiftOut per Machine,
// never share one across machines.
type USIShiftOut struct {
	vm.NullObserver

	out io.Writer

	bitCount int
	shiftReg byte
}

// NewUSIShiftOut returns a USIShiftOut that writes completed characters to w.
func NewUSIShiftOut(w io.Writer) *USIShiftOut {
	return &USIShiftOut{out: w}
}

// inWindow reports whether addr, a unified data-memory address, falls inside
// the USI register window [0x0D, 0x10] once translated back to an I/O
// address. The original guard (`address <= 0x10 || address >= 0x0D`) is
// tautologically true for every byte address; the intended window is
// 0x0D <= ioAddr <= 0x10.
func (u *USIShiftOut) inWindow(addr uint16) (ioAddr byte, ok bool) {
	if addr < vm.GPRegisterCount {
		return 0, false
	}
	ioAddr = byte(addr - vm.GPRegisterCount)
	return ioAddr, ioAddr >= usiCR && ioAddr <= usiBR
}

// PreSet fires before a write lands in the I/O range, with the value about to
// be written; PostSet carries no value, so the shift logic lives here. A
// write to USIDR shifts one bit (the USI's bit 7, MSB-first onto the wire)
// into the accumulator; after eight bits the byte is flushed to out as a rune.
func (u *USIShiftOut) PreSet(addr uint16, value byte) {
	ioAddr, ok := u.inWindow(addr)
	if !ok {
		return
	}

	switch ioAddr {
	case usiDR:
		u.shiftReg = (u.shiftReg << 1) | (value >> 7)
		u.bitCount++
		if u.bitCount >= 8 {
			if u.out != nil {
				fmt.Fprintf(u.out, "%c", u.shiftReg)
			}
			u.bitCount = 0
			u.shiftReg = 0
		}

	case usiSR:
		// Writing USISR clears the shift counter on real hardware; a 1 in bit
		// 4 of the written value clears the overflow flag, which we don't
		// model, but a full-width write is also used to reset mid-byte framing.
		if value&0x0F == 0 {
			u.bitCount = 0
		}
	}
}

// PendingBitCount reports how many bits of the current byte have been
// shifted in so far; it exists for tests and diagnostic tooling, not for any
// simulated register.
func (u *USIShiftOut) PendingBitCount() int {
	return u.bitCount
}

var _ vm.Observer = (*USIShiftOut)(nil)
