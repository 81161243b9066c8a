package vm

// Control-flow instructions. PC has already been advanced past the opcode
// word by the cycle driver before Exec runs, so a relative jump is simply
// PC + offset; a return address pushed here is the address of the
// instruction following the call.

func execRJMP(m *Machine, ops Operands) {
	k := ops.Signed('k')
	m.CPU.PC = m.maskPC(uint16(int32(m.CPU.PC) + k))
}

func execRCALL(m *Machine, ops Operands) {
	k := ops.Signed('k')
	m.Memory.Push16(m.Observer, m.CPU.PC)
	m.CPU.PC = m.maskPC(uint16(int32(m.CPU.PC) + k))
}

func execRET(m *Machine, ops Operands) {
	m.CPU.PC = m.maskPC(m.Memory.Pop16(m.Observer))
}

func execRETI(m *Machine, ops Operands) {
	m.CPU.PC = m.maskPC(m.Memory.Pop16(m.Observer))
	m.Memory.SREG.I = true
}

func execIJMP(m *Machine, ops Operands) {
	m.CPU.PC = m.maskPC(m.Memory.GetPair(RegZ0))
}

func execICALL(m *Machine, ops Operands) {
	m.Memory.Push16(m.Observer, m.CPU.PC)
	m.CPU.PC = m.maskPC(m.Memory.GetPair(RegZ0))
}

func execBRBS(m *Machine, ops Operands) {
	s := ops.Bit('s')
	if m.Memory.SREG.Bit(s) {
		k := ops.Signed('k')
		m.CPU.PC = m.maskPC(uint16(int32(m.CPU.PC) + k))
	}
}

func execBRBC(m *Machine, ops Operands) {
	s := ops.Bit('s')
	if !m.Memory.SREG.Bit(s) {
		k := ops.Signed('k')
		m.CPU.PC = m.maskPC(uint16(int32(m.CPU.PC) + k))
	}
}
