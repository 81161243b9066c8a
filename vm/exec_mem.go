package vm

// Data-transfer instructions: register file, the unified data map via
// X/Y/Z indirect addressing, and program memory via LPM. Two-word forms
// (LDS/STS) read their second FLASH word here and advance PC past it
// themselves; the cycle driver only advances PC once, over the opcode word.

func readNextWord(m *Machine) uint16 {
	w := m.Memory.ProgWord(m.CPU.PC)
	m.CPU.PC = m.maskPC(m.CPU.PC + 1)
	return w
}

func execLDS(m *Machine, ops Operands) {
	d := ops.Reg('d')
	k := readNextWord(m)
	m.Memory.R[d] = m.Memory.DataGet(m.Observer, uint32(k))
}

func execSTS(m *Machine, ops Operands) {
	r := ops.Reg('r')
	k := readNextWord(m)
	m.Memory.DataSet(m.Observer, uint32(k), m.Memory.R[r])
}

func ldIndirect(m *Machine, ops Operands, pairLo int, post, pre bool) {
	d := ops.Reg('d')
	addr := m.Memory.GetPair(pairLo)
	if pre {
		addr--
	}
	m.Memory.R[d] = m.Memory.DataGet(m.Observer, uint32(addr))
	if post {
		addr++
	}
	if pre || post {
		m.Memory.SetPair(pairLo, addr)
	}
}

func stIndirect(m *Machine, ops Operands, pairLo int, post, pre bool) {
	r := ops.Reg('r')
	addr := m.Memory.GetPair(pairLo)
	if pre {
		addr--
	}
	m.Memory.DataSet(m.Observer, uint32(addr), m.Memory.R[r])
	if post {
		addr++
	}
	if pre || post {
		m.Memory.SetPair(pairLo, addr)
	}
}

func execLD_X(m *Machine, ops Operands)  { ldIndirect(m, ops, RegX0, false, false) }
func execLD_Xp(m *Machine, ops Operands) { ldIndirect(m, ops, RegX0, true, false) }
func execLD_mX(m *Machine, ops Operands) { ldIndirect(m, ops, RegX0, false, true) }
func execLD_Y(m *Machine, ops Operands)  { ldIndirect(m, ops, RegY0, false, false) }
func execLD_Yp(m *Machine, ops Operands) { ldIndirect(m, ops, RegY0, true, false) }
func execLD_mY(m *Machine, ops Operands) { ldIndirect(m, ops, RegY0, false, true) }
func execLD_Z(m *Machine, ops Operands)  { ldIndirect(m, ops, RegZ0, false, false) }
func execLD_Zp(m *Machine, ops Operands) { ldIndirect(m, ops, RegZ0, true, false) }
func execLD_mZ(m *Machine, ops Operands) { ldIndirect(m, ops, RegZ0, false, true) }

func execST_X(m *Machine, ops Operands)  { stIndirect(m, ops, RegX0, false, false) }
func execST_Xp(m *Machine, ops Operands) { stIndirect(m, ops, RegX0, true, false) }
func execST_mX(m *Machine, ops Operands) { stIndirect(m, ops, RegX0, false, true) }
func execST_Y(m *Machine, ops Operands)  { stIndirect(m, ops, RegY0, false, false) }
func execST_Yp(m *Machine, ops Operands) { stIndirect(m, ops, RegY0, true, false) }
func execST_mY(m *Machine, ops Operands) { stIndirect(m, ops, RegY0, false, true) }
func execST_Z(m *Machine, ops Operands)  { stIndirect(m, ops, RegZ0, false, false) }
func execST_Zp(m *Machine, ops Operands) { stIndirect(m, ops, RegZ0, true, false) }
func execST_mZ(m *Machine, ops Operands) { stIndirect(m, ops, RegZ0, false, true) }

func execLDD_Y(m *Machine, ops Operands) {
	d := ops.Reg('d')
	q := ops.Raw('q')
	addr := m.Memory.GetPair(RegY0) + uint16(q)
	m.Memory.R[d] = m.Memory.DataGet(m.Observer, uint32(addr))
}

func execLDD_Z(m *Machine, ops Operands) {
	d := ops.Reg('d')
	q := ops.Raw('q')
	addr := m.Memory.GetPair(RegZ0) + uint16(q)
	m.Memory.R[d] = m.Memory.DataGet(m.Observer, uint32(addr))
}

func execSTD_Y(m *Machine, ops Operands) {
	r := ops.Reg('r')
	q := ops.Raw('q')
	addr := m.Memory.GetPair(RegY0) + uint16(q)
	m.Memory.DataSet(m.Observer, uint32(addr), m.Memory.R[r])
}

func execSTD_Z(m *Machine, ops Operands) {
	r := ops.Reg('r')
	q := ops.Raw('q')
	addr := m.Memory.GetPair(RegZ0) + uint16(q)
	m.Memory.DataSet(m.Observer, uint32(addr), m.Memory.R[r])
}

func execPUSH(m *Machine, ops Operands) {
	r := ops.Reg('r')
	m.Memory.Push8(m.Observer, m.Memory.R[r])
}

func execPOP(m *Machine, ops Operands) {
	d := ops.Reg('d')
	m.Memory.R[d] = m.Memory.Pop8(m.Observer)
}

func execLPM(m *Machine, ops Operands) {
	m.Memory.R[0] = m.Memory.ProgByte(m.Memory.GetPair(RegZ0))
}

func execLPM_Z(m *Machine, ops Operands) {
	d := ops.Reg('d')
	m.Memory.R[d] = m.Memory.ProgByte(m.Memory.GetPair(RegZ0))
}

func execLPM_Zp(m *Machine, ops Operands) {
	d := ops.Reg('d')
	z := m.Memory.GetPair(RegZ0)
	m.Memory.R[d] = m.Memory.ProgByte(z)
	m.Memory.SetPair(RegZ0, z+1)
}
