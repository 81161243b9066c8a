package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lookbusy1344/avr-emulator/vm"
)

func encodeSUB(d, r int) uint16 {
	return 0x1800 | uint16(d)<<4 | uint16(r&0xF) | uint16(r&0x10)<<5
}
func encodeAND(d, r int) uint16 {
	return 0x2000 | uint16(d)<<4 | uint16(r&0xF) | uint16(r&0x10)<<5
}
func encodeOR(d, r int) uint16 {
	return 0x2800 | uint16(d)<<4 | uint16(r&0xF) | uint16(r&0x10)<<5
}
func encodeEOR(d, r int) uint16 {
	return 0x2400 | uint16(d)<<4 | uint16(r&0xF) | uint16(r&0x10)<<5
}
func encodeCOM(d int) uint16 { return 0x9400 | uint16(d&0x1F)<<4 }
func encodeNEG(d int) uint16 { return 0x9401 | uint16(d&0x1F)<<4 }
func encodeINC(d int) uint16 { return 0x9403 | uint16(d&0x1F)<<4 }
func encodeASR(d int) uint16 { return 0x9405 | uint16(d&0x1F)<<4 }
func encodeLSR(d int) uint16 { return 0x9406 | uint16(d&0x1F)<<4 }
func encodeROR(d int) uint16 { return 0x9407 | uint16(d&0x1F)<<4 }
func encodeDEC(d int) uint16 { return 0x940A | uint16(d&0x1F)<<4 }

// wantFlags names the SREG bits a case cares about; fields left at their
// zero value (false) must still match, so a case that omits a flag expects
// it clear.
type wantFlags struct {
	result      byte
	c, h, v, n, z, s bool
}

func checkFlags(t *testing.T, m *vm.Machine, want wantFlags, resultReg int) {
	t.Helper()
	sreg := m.Memory.SREG
	assert.Equal(t, want.result, m.Memory.R[resultReg], "result")
	assert.Equal(t, want.c, sreg.C, "C")
	assert.Equal(t, want.h, sreg.H, "H")
	assert.Equal(t, want.v, sreg.V, "V")
	assert.Equal(t, want.n, sreg.N, "N")
	assert.Equal(t, want.z, sreg.Z, "Z")
	assert.Equal(t, want.s, sreg.S, "S")
}

func TestFlagTable_SUB(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeSUB(0, 1)))
	m.Memory.R[0] = 0x00
	m.Memory.R[1] = 0x01

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0xFF, c: true, h: true, v: false, n: true, z: false, s: true}, 0)
}

func TestFlagTable_AND(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeAND(0, 1)))
	m.Memory.R[0] = 0xF0
	m.Memory.R[1] = 0x0F

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x00, v: false, n: false, z: true, s: false}, 0)
}

func TestFlagTable_OR(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeOR(0, 1)))
	m.Memory.R[0] = 0x80
	m.Memory.R[1] = 0x00

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x80, v: false, n: true, z: false, s: true}, 0)
}

func TestFlagTable_EOR(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeEOR(0, 1)))
	m.Memory.R[0] = 0xFF
	m.Memory.R[1] = 0xFF

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x00, v: false, n: false, z: true, s: false}, 0)
}

func TestFlagTable_COM(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeCOM(0)))
	m.Memory.R[0] = 0x00

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0xFF, c: true, v: false, n: true, z: false, s: true}, 0)
}

func TestFlagTable_NEG(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeNEG(0)))
	m.Memory.R[0] = 0x80

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x80, c: true, h: false, v: true, n: true, z: false, s: false}, 0)
}

func TestFlagTable_INC(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeINC(0)))
	m.Memory.R[0] = 0x7F

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x80, v: true, n: true, z: false, s: false}, 0)
}

func TestFlagTable_DEC(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeDEC(0)))
	m.Memory.R[0] = 0x80

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x7F, v: true, n: false, z: false, s: true}, 0)
}

func TestFlagTable_ASR(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeASR(0)))
	m.Memory.R[0] = 0x81

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0xC0, c: true, v: false, n: true, z: false, s: true}, 0)
}

func TestFlagTable_LSR(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeLSR(0)))
	m.Memory.R[0] = 0x01

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x00, c: true, v: true, n: false, z: true, s: true}, 0)
}

func TestFlagTable_ROR(t *testing.T) {
	m, dec := newTestMachine(t)
	m.Load(programBytes(encodeROR(0)))
	m.Memory.R[0] = 0x00
	m.Memory.SREG.C = true

	m.Step(dec)

	checkFlags(t, m, wantFlags{result: 0x80, c: false, v: true, n: true, z: false, s: false}, 0)
}
