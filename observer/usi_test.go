package observer_test

import (
	"bytes"
	"testing"

	"github.com/lookbusy1344/avr-emulator/observer"
	"github.com/lookbusy1344/avr-emulator/vm"
)

func TestUSIShiftOut_DirectWrite(t *testing.T) {
	var buf bytes.Buffer
	obs := observer.NewUSIShiftOut(&buf)

	// 'A' = 0x41 = 01000001, MSB-first.
	bits := []byte{0, 1, 0, 0, 0, 0, 0, 1}
	for _, b := range bits {
		obs.PreSet(vm.GPRegisterCount+0x0F, b<<7)
	}

	if got := buf.String(); got != "A" {
		t.Errorf("shifted byte = %q, want %q", got, "A")
	}
}

func TestUSIShiftOut_IgnoresOutsideWindow(t *testing.T) {
	var buf bytes.Buffer
	obs := observer.NewUSIShiftOut(&buf)

	obs.PreSet(vm.GPRegisterCount+0x00, 0xFF)
	obs.PreSet(vm.GPRegisterCount+0x20, 0xFF)

	if buf.Len() != 0 {
		t.Errorf("write outside USI window should be ignored, got %q", buf.String())
	}
}

func TestUSIShiftOut_StatusResetClearsCounter(t *testing.T) {
	var buf bytes.Buffer
	obs := observer.NewUSIShiftOut(&buf)

	obs.PreSet(vm.GPRegisterCount+0x0F, 0x80)
	obs.PreSet(vm.GPRegisterCount+0x0F, 0x80)
	obs.PreSet(vm.GPRegisterCount+0x0E, 0x00) // reset mid-byte

	for i := 0; i < 8; i++ {
		obs.PreSet(vm.GPRegisterCount+0x0F, 0x00)
	}

	if got := buf.String(); got != string([]byte{0}) {
		t.Errorf("post-reset byte = %q, want a single NUL byte", got)
	}
}

func TestUSIShiftOut_WiredThroughOUT(t *testing.T) {
	var buf bytes.Buffer
	obs := observer.NewUSIShiftOut(&buf)

	m := vm.NewMachine(vm.DefaultFlashSize, vm.DefaultSRAMSize, vm.DefaultEEPROMSize)
	m.Observer = obs

	// OUT USIDR,R16 encodes as 1011 1AAr rrrrAAAA; USIDR I/O addr is 0x0F.
	r16 := byte(16)
	m.Memory.R[r16] = 0x80

	encodeOUT := func(ioAddr, reg byte) uint16 {
		a := ioAddr & 0x3F
		return 0xB800 | uint16(a&0x30)<<5 | uint16(reg&0x1F)<<4 | uint16(a&0x0F)
	}

	dec, err := vm.NewDecoder(vm.InstructionTable)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	op := encodeOUT(0x0F, r16)
	m.Memory.SetProgWord(0, op)
	m.Step(dec)

	if obs.PendingBitCount() != 1 {
		t.Errorf("expected one bit shifted after a single OUT, got %d", obs.PendingBitCount())
	}
}
