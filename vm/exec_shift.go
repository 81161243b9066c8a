package vm

// shiftFlags applies the common ASR/LSR/ROR flag rule: C takes the bit
// shifted out of bit 0, N/Z come from the result, and V = N xor C.
func shiftFlags(s *SREG, oldBit0 bool, result byte) {
	s.C = oldBit0
	s.N = bit(result, 7)
	s.Z = result == 0
	s.V = s.N != s.C
	s.S = s.N != s.V
}

func execASR(m *Machine, ops Operands) {
	d := ops.Reg('d')
	v := m.Memory.R[d]
	result := (v >> 1) | (v & SignBit7)
	shiftFlags(&m.Memory.SREG, v&1 != 0, result)
	m.Memory.R[d] = result
}

func execLSR(m *Machine, ops Operands) {
	d := ops.Reg('d')
	v := m.Memory.R[d]
	result := v >> 1
	shiftFlags(&m.Memory.SREG, v&1 != 0, result)
	m.Memory.R[d] = result
}

func execROR(m *Machine, ops Operands) {
	d := ops.Reg('d')
	v := m.Memory.R[d]
	var carryIn byte
	if m.Memory.SREG.C {
		carryIn = SignBit7
	}
	result := (v >> 1) | carryIn
	shiftFlags(&m.Memory.SREG, v&1 != 0, result)
	m.Memory.R[d] = result
}
