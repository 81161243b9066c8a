package vm

// InstructionStats accumulates an instruction-mix histogram across a run:
// how many times each mnemonic executed, plus a count of cycles spent on
// unknown (no-op) opcodes.
type InstructionStats struct {
	Counts  map[string]uint64
	Unknown uint64
}

// NewInstructionStats returns an empty histogram ready for Record calls.
func NewInstructionStats() *InstructionStats {
	return &InstructionStats{Counts: make(map[string]uint64)}
}

// Record tallies one executed cycle against its mnemonic, or against Unknown
// when name is empty (an unrecognized opcode, executed as a no-op).
func (s *InstructionStats) Record(name string) {
	if name == "" {
		s.Unknown++
		return
	}
	s.Counts[name]++
}
