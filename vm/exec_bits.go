package vm

// Single-bit and I/O-register instructions. SBI/CBI/SBIC/SBIS address an
// I/O register directly by its 5-bit I/O-space number; IN/OUT use the wider
// 6-bit form. Both go through the unified data map so peripheral observer
// hooks fire exactly as they would for any other access to that address.

func ioDataAddr(ioAddr int) uint32 {
	return uint32(IORegisterBase + ioAddr)
}

func execIN(m *Machine, ops Operands) {
	d := ops.Reg('d')
	a := ioDataAddr(ops.IOAddr('A'))
	m.Memory.R[d] = m.Memory.DataGet(m.Observer, a)
}

func execOUT(m *Machine, ops Operands) {
	r := ops.Reg('r')
	a := ioDataAddr(ops.IOAddr('A'))
	m.Memory.DataSet(m.Observer, a, m.Memory.R[r])
}

func execSBI(m *Machine, ops Operands) {
	a := ioDataAddr(ops.IOAddr('A'))
	b := ops.Bit('b')
	v := m.Memory.DataGet(m.Observer, a)
	v |= 1 << uint(b)
	m.Memory.DataSet(m.Observer, a, v)
}

func execCBI(m *Machine, ops Operands) {
	a := ioDataAddr(ops.IOAddr('A'))
	b := ops.Bit('b')
	v := m.Memory.DataGet(m.Observer, a)
	v &^= 1 << uint(b)
	m.Memory.DataSet(m.Observer, a, v)
}

func execSBIC(m *Machine, ops Operands) {
	a := ioDataAddr(ops.IOAddr('A'))
	b := ops.Bit('b')
	v := m.Memory.DataGet(m.Observer, a)
	if v&(1<<uint(b)) == 0 {
		m.CPU.Skip = true
	}
}

func execSBIS(m *Machine, ops Operands) {
	a := ioDataAddr(ops.IOAddr('A'))
	b := ops.Bit('b')
	v := m.Memory.DataGet(m.Observer, a)
	if v&(1<<uint(b)) != 0 {
		m.CPU.Skip = true
	}
}

func execSBRC(m *Machine, ops Operands) {
	d := ops.Reg('d')
	b := ops.Bit('b')
	if m.Memory.R[d]&(1<<uint(b)) == 0 {
		m.CPU.Skip = true
	}
}

func execSBRS(m *Machine, ops Operands) {
	d := ops.Reg('d')
	b := ops.Bit('b')
	if m.Memory.R[d]&(1<<uint(b)) != 0 {
		m.CPU.Skip = true
	}
}

func execBLD(m *Machine, ops Operands) {
	d := ops.Reg('d')
	b := ops.Bit('b')
	if m.Memory.SREG.T {
		m.Memory.R[d] |= 1 << uint(b)
	} else {
		m.Memory.R[d] &^= 1 << uint(b)
	}
}

func execBST(m *Machine, ops Operands) {
	d := ops.Reg('d')
	b := ops.Bit('b')
	m.Memory.SREG.T = m.Memory.R[d]&(1<<uint(b)) != 0
}

func execBSET(m *Machine, ops Operands) {
	s := ops.Bit('s')
	m.Memory.SREG.SetBit(s, true)
}

func execBCLR(m *Machine, ops Operands) {
	s := ops.Bit('s')
	m.Memory.SREG.SetBit(s, false)
}
