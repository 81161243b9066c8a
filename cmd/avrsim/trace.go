package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lookbusy1344/avr-emulator/vm"
)

// fileTracer is the reference vm.Tracer: one line per cycle naming the
// mnemonic that ran, restricted to whatever registers the config's
// filter_registers list names (PC and SP always print), with SREG flags
// appended when include_flags is set.
type fileTracer struct {
	w            io.Writer
	regs         []int
	includeFlags bool
}

// newFileTracer parses a comma-separated "R0,R3,R17" register filter, as
// documented for config.Config.Trace.FilterRegisters. Unknown or malformed
// tokens are ignored.
func newFileTracer(w io.Writer, filterRegisters string, includeFlags bool) *fileTracer {
	ft := &fileTracer{w: w, includeFlags: includeFlags}
	for _, tok := range strings.Split(filterRegisters, ",") {
		tok = strings.TrimSpace(tok)
		if !strings.HasPrefix(tok, "R") && !strings.HasPrefix(tok, "r") {
			continue
		}
		if n, err := strconv.Atoi(tok[1:]); err == nil && n >= 0 && n < vm.GPRegisterCount {
			ft.regs = append(ft.regs, n)
		}
	}
	return ft
}

func (ft *fileTracer) Trace(m *vm.Machine, cycle uint64, name string) {
	if name == "" {
		name = "???"
	}
	fmt.Fprintf(ft.w, "%8d PC=0x%04X SP=0x%04X %-6s", cycle, m.CPU.PC, m.Memory.GetSP(), name)
	for _, r := range ft.regs {
		fmt.Fprintf(ft.w, " R%d=%02X", r, m.Memory.R[r])
	}
	if ft.includeFlags {
		s := m.Memory.SREG
		fmt.Fprintf(ft.w, " SREG=%d%d%d%d%d%d%d%d",
			b2i(s.I), b2i(s.T), b2i(s.H), b2i(s.S), b2i(s.V), b2i(s.N), b2i(s.Z), b2i(s.C))
	}
	fmt.Fprintln(ft.w)
}

var _ vm.Tracer = (*fileTracer)(nil)
