package vm

// Instructions with no operands and no data-path effect in this core. SLEEP
// and WDR exist only so programs that execute them don't fall through to
// the unknown-opcode no-op path; there is no power-management or watchdog
// model to affect.

func execNOP(m *Machine, ops Operands) {}

func execSLEEP(m *Machine, ops Operands) {}

func execWDR(m *Machine, ops Operands) {}

func execBREAK(m *Machine, ops Operands) {
	if m.Observer != nil {
		m.Observer.Break(m.CPU.PC)
	}
}
