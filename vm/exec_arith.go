package vm

// Arithmetic and logic instruction bodies. Each reads its operands straight
// out of the register file, computes the 8-bit result and flag updates, and
// writes the result back — no executor here touches PC.

func execADD(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	m.Memory.R[d] = applyAdd(&m.Memory.SREG, m.Memory.R[d], m.Memory.R[r], false)
}

func execADC(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	m.Memory.R[d] = applyAdd(&m.Memory.SREG, m.Memory.R[d], m.Memory.R[r], m.Memory.SREG.C)
}

func execSUB(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := applySub(&m.Memory.SREG, m.Memory.R[d], m.Memory.R[r], false)
	m.Memory.SREG.Z = result == 0
	m.Memory.R[d] = result
}

func execSUBI(m *Machine, ops Operands) {
	d := ops.RegHigh('d')
	k := byte(ops.Raw('K'))
	result := applySub(&m.Memory.SREG, m.Memory.R[d], k, false)
	m.Memory.SREG.Z = result == 0
	m.Memory.R[d] = result
}

func execSBC(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := applySub(&m.Memory.SREG, m.Memory.R[d], m.Memory.R[r], m.Memory.SREG.C)
	m.Memory.SREG.Z = result == 0 && m.Memory.SREG.Z
	m.Memory.R[d] = result
}

func execSBCI(m *Machine, ops Operands) {
	d := ops.RegHigh('d')
	k := byte(ops.Raw('K'))
	result := applySub(&m.Memory.SREG, m.Memory.R[d], k, m.Memory.SREG.C)
	m.Memory.SREG.Z = result == 0 && m.Memory.SREG.Z
	m.Memory.R[d] = result
}

func execCP(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := applySub(&m.Memory.SREG, m.Memory.R[d], m.Memory.R[r], false)
	m.Memory.SREG.Z = result == 0
}

func execCPC(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := applySub(&m.Memory.SREG, m.Memory.R[d], m.Memory.R[r], m.Memory.SREG.C)
	m.Memory.SREG.Z = result == 0 && m.Memory.SREG.Z
}

func execCPI(m *Machine, ops Operands) {
	d := ops.RegHigh('d')
	k := byte(ops.Raw('K'))
	result := applySub(&m.Memory.SREG, m.Memory.R[d], k, false)
	m.Memory.SREG.Z = result == 0
}

func execCPSE(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	if m.Memory.R[d] == m.Memory.R[r] {
		m.CPU.Skip = true
	}
}

func execAND(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := m.Memory.R[d] & m.Memory.R[r]
	m.Memory.SREG.V = false
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execANDI(m *Machine, ops Operands) {
	d := ops.RegHigh('d')
	k := byte(ops.Raw('K'))
	result := m.Memory.R[d] & k
	m.Memory.SREG.V = false
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execOR(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := m.Memory.R[d] | m.Memory.R[r]
	m.Memory.SREG.V = false
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execORI(m *Machine, ops Operands) {
	d := ops.RegHigh('d')
	k := byte(ops.Raw('K'))
	result := m.Memory.R[d] | k
	m.Memory.SREG.V = false
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execEOR(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	result := m.Memory.R[d] ^ m.Memory.R[r]
	m.Memory.SREG.V = false
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execCOM(m *Machine, ops Operands) {
	d := ops.Reg('d')
	result := ^m.Memory.R[d]
	m.Memory.SREG.V = false
	m.Memory.SREG.C = true
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execNEG(m *Machine, ops Operands) {
	d := ops.Reg('d')
	a := m.Memory.R[d]
	result := applySub(&m.Memory.SREG, 0, a, false)
	m.Memory.SREG.Z = result == 0
	m.Memory.SREG.C = result != 0
	m.Memory.R[d] = result
}

func execINC(m *Machine, ops Operands) {
	d := ops.Reg('d')
	a := m.Memory.R[d]
	result := a + 1
	m.Memory.SREG.V = a == 0x7F
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execDEC(m *Machine, ops Operands) {
	d := ops.Reg('d')
	a := m.Memory.R[d]
	result := a - 1
	m.Memory.SREG.V = a == 0x80
	m.Memory.SREG.updateNZS(result)
	m.Memory.R[d] = result
}

func execMOV(m *Machine, ops Operands) {
	d, r := ops.Reg('d'), ops.Reg('r')
	m.Memory.R[d] = m.Memory.R[r]
}

func execMOVW(m *Machine, ops Operands) {
	d, r := ops.RegPairBase('d'), ops.RegPairBase('r')
	m.Memory.SetPair(d, m.Memory.GetPair(r))
}

func execLDI(m *Machine, ops Operands) {
	d := ops.RegHigh('d')
	m.Memory.R[d] = byte(ops.Raw('K'))
}

func execSWAP(m *Machine, ops Operands) {
	d := ops.Reg('d')
	v := m.Memory.R[d]
	m.Memory.R[d] = v<<4 | v>>4
}
