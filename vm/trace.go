package vm

// Tracer receives one callback per executed cycle, after the instruction has
// run and architectural state has settled. Implementations format and write
// whatever subset of state they care about; see cmd/avrsim for the reference
// file-backed tracer.
type Tracer interface {
	Trace(m *Machine, cycle uint64, name string)
}
