// Command avrsim runs a raw AVRe program image to completion and reports the
// final architectural state. See `avrsim run --help` for flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/avr-emulator/config"
	"github.com/lookbusy1344/avr-emulator/loader"
	"github.com/lookbusy1344/avr-emulator/observer"
	"github.com/lookbusy1344/avr-emulator/vm"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		traceFile  string
		statsFile  string
		usiOutput  string
		enableUSI  bool
	)

	root := &cobra.Command{
		Use:   "avrsim [image]",
		Short: "AVRe-class instruction-set simulator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runImage(args[0], configPath, traceFile, statsFile, usiOutput, enableUSI)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (default: platform config dir)")

	runCmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load a raw program image into FLASH and execute it to halt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], configPath, traceFile, statsFile, usiOutput, enableUSI)
		},
	}
	runCmd.Flags().StringVar(&traceFile, "trace", "", "Write a per-cycle execution trace to this file")
	runCmd.Flags().StringVar(&statsFile, "stats", "", "Write instruction-mix statistics to this file (JSON)")
	runCmd.Flags().BoolVar(&enableUSI, "usi", false, "Attach the reference USI shift-out peripheral observer")
	runCmd.Flags().StringVar(&usiOutput, "usi-output", "", "USI shift-out destination file (default: stdout)")
	root.AddCommand(runCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("avrsim %s (commit %s, built %s)\n", Version, Commit, Date)
		},
	}
	root.AddCommand(versionCmd)

	return root
}

// runImage loads cfg, loads image into a freshly sized Machine, attaches the
// requested observer, runs to halt, and prints a final-state dump. Returns a
// non-nil error for every argument or I/O failure; the caller maps that to
// exit code 1.
func runImage(imagePath, configPath, traceFile, statsFile, usiOutput string, enableUSI bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if traceFile != "" {
		cfg.Trace.Enabled = true
		cfg.Trace.OutputFile = traceFile
	}
	if statsFile != "" {
		cfg.Statistics.Enabled = true
		cfg.Statistics.OutputFile = statsFile
	}
	if enableUSI {
		cfg.Peripheral.USIEnabled = true
	}
	if usiOutput != "" {
		cfg.Peripheral.USIOutputFile = usiOutput
	}

	machine := vm.NewMachine(cfg.Execution.FlashSize, cfg.Execution.SRAMSize, cfg.Execution.EEPROMSize)

	if err := loader.LoadImageFile(machine, imagePath); err != nil {
		return err
	}

	if cfg.Peripheral.USIEnabled {
		usiWriter, closeUSI, err := openOutput(cfg.Peripheral.USIOutputFile)
		if err != nil {
			return fmt.Errorf("failed to open USI output: %w", err)
		}
		defer closeUSI()
		machine.Observer = observer.NewUSIShiftOut(usiWriter)
	}

	if cfg.Trace.Enabled {
		traceWriter, closeTrace, err := openOutput(cfg.Trace.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to open trace output: %w", err)
		}
		defer closeTrace()
		machine.Tracer = newFileTracer(traceWriter, cfg.Trace.FilterRegisters, cfg.Trace.IncludeFlags)
	}

	if cfg.Statistics.Enabled {
		machine.Stats = vm.NewInstructionStats()
	}

	dec, err := vm.NewDecoder(vm.InstructionTable)
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}

	executed := machine.RunUntilHalt(dec, cfg.Execution.MaxCycles)

	if cfg.Statistics.Enabled {
		statsWriter, closeStats, err := openOutput(cfg.Statistics.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to open statistics output: %w", err)
		}
		defer closeStats()
		if err := writeStats(statsWriter, cfg.Statistics.Format, machine.Stats); err != nil {
			return fmt.Errorf("failed to write statistics: %w", err)
		}
	}

	printDump(os.Stdout, machine, executed)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// openOutput opens path for writing, or returns os.Stdout (with a no-op
// closer) when path is empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path) // #nosec G304 -- path comes from a CLI flag or config file
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// printDump renders the final register, flag and stack state after a run,
// the way a batch simulator reports a completed run rather than an
// interactive debugger session.
func printDump(w io.Writer, m *vm.Machine, executed uint64) {
	fmt.Fprintf(w, "Halted after %d cycle(s) at PC=0x%04X\n", executed, m.CPU.PC)
	fmt.Fprintln(w, "Registers:")
	for i := 0; i < vm.GPRegisterCount; i += 8 {
		fmt.Fprintf(w, "  R%-2d-R%-2d:", i, i+7)
		for j := i; j < i+8; j++ {
			fmt.Fprintf(w, " %02X", m.Memory.R[j])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "X: 0x%04X  Y: 0x%04X  Z: 0x%04X\n",
		m.Memory.GetPair(vm.RegX0), m.Memory.GetPair(vm.RegY0), m.Memory.GetPair(vm.RegZ0))
	s := m.Memory.SREG
	fmt.Fprintf(w, "SREG: I=%v T=%v H=%v S=%v V=%v N=%v Z=%v C=%v\n",
		b2i(s.I), b2i(s.T), b2i(s.H), b2i(s.S), b2i(s.V), b2i(s.N), b2i(s.Z), b2i(s.C))
	fmt.Fprintf(w, "PC: 0x%04X\n", m.CPU.PC)

	sp := m.Memory.GetSP()
	top := uint16(vm.GPRegisterCount + vm.IORegisterCount + len(m.Memory.SRAM) - 1)
	fmt.Fprintf(w, "SP: 0x%04X\n", sp)
	fmt.Fprint(w, "Stack (SP+1..top):")
	if sp >= top {
		fmt.Fprintln(w, " (empty)")
	} else {
		fmt.Fprintln(w)
		for addr := sp + 1; ; addr++ {
			if (addr-(sp+1))%16 == 0 {
				fmt.Fprintf(w, "  %04X:", addr)
			}
			fmt.Fprintf(w, " %02X", m.Memory.DataGet(nil, uint32(addr)))
			if (addr-(sp+1))%16 == 15 || addr == top {
				fmt.Fprintln(w)
			}
			if addr == top {
				break
			}
		}
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
