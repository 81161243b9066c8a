package vm

// Step runs one fetch/decode/execute cycle: fetch the opcode at PC, advance
// PC past it, resolve the SKIP latch if set, and otherwise dispatch to the
// decoded instruction's Exec body. PreTick/PostTick observer callbacks
// bracket the whole cycle.
func (m *Machine) Step(dec *Decoder) {
	if m.Observer != nil {
		m.Observer.PreTick()
	}

	opcode := m.Memory.ProgWord(m.CPU.PC)
	m.CPU.PC = m.maskPC(m.CPU.PC + 1)

	desc, ops := dec.Decode(opcode)

	name := ""
	if desc != nil {
		name = desc.Name
	}

	if m.CPU.Skip {
		m.CPU.Skip = false
		if desc != nil && desc.TwoWord {
			m.CPU.PC = m.maskPC(m.CPU.PC + 1)
		}
	} else if desc != nil {
		desc.Exec(m, ops)
	}

	m.CPU.Cycles++
	if m.Stats != nil {
		m.Stats.Record(name)
	}
	if m.Tracer != nil {
		m.Tracer.Trace(m, m.CPU.Cycles, name)
	}
	if m.Observer != nil {
		m.Observer.PostTick()
	}
}

// RunUntilHalt steps the machine until PC stops changing between cycles
// (the documented halt condition: a self-loop, direct or via an
// unconditional branch back to itself) or maxCycles cycles have run. A
// maxCycles of 0 means no cap. It returns the number of cycles executed.
func (m *Machine) RunUntilHalt(dec *Decoder, maxCycles uint64) uint64 {
	var executed uint64
	for maxCycles == 0 || executed < maxCycles {
		before := m.CPU.PC
		m.Step(dec)
		executed++
		if m.CPU.PC == before {
			break
		}
	}
	return executed
}
