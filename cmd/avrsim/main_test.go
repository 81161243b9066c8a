package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/avr-emulator/vm"
)

// encodeRJMPSelf encodes "RJMP .-1", a self-loop that halts after one cycle
// (PC has already advanced past the opcode by the time the offset applies).
func encodeRJMPSelf() uint16 {
	return 0xC000 | uint16(-1)&0x0FFF
}

func TestRunImage_HaltsOnSelfLoop(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "image.bin")

	op := encodeRJMPSelf()
	image := []byte{byte(op), byte(op >> 8)}
	if err := os.WriteFile(imagePath, image, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var out bytes.Buffer
	stdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	err := runImage(imagePath, "", "", "", "", false)

	w.Close()
	os.Stdout = stdout
	out.ReadFrom(r)

	if err != nil {
		t.Fatalf("runImage: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Halted after")) {
		t.Errorf("expected dump output, got %q", out.String())
	}
}

func TestRunImage_MissingFile(t *testing.T) {
	if err := runImage("/nonexistent/path.bin", "", "", "", "", false); err == nil {
		t.Error("expected an error for a missing image file")
	}
}

func TestPrintDump_IncludesStackBytes(t *testing.T) {
	m := vm.NewMachine(vm.DefaultFlashSize, vm.DefaultSRAMSize, vm.DefaultEEPROMSize)
	top := uint16(vm.GPRegisterCount + vm.IORegisterCount + vm.DefaultSRAMSize - 1)
	m.Memory.SetSP(top - 1)
	m.Memory.DataSet(nil, uint32(top), 0xAB)

	var out bytes.Buffer
	printDump(&out, m, 1)

	got := out.String()
	if !bytes.Contains(out.Bytes(), []byte("Stack (SP+1..top):")) {
		t.Errorf("expected a stack-bytes section, got:\n%s", got)
	}
	if !bytes.Contains(out.Bytes(), []byte("AB")) {
		t.Errorf("expected the pushed byte 0xAB to appear in the stack dump, got:\n%s", got)
	}
}

func TestPrintDump_EmptyStack(t *testing.T) {
	m := vm.NewMachine(vm.DefaultFlashSize, vm.DefaultSRAMSize, vm.DefaultEEPROMSize)
	top := uint16(vm.GPRegisterCount + vm.IORegisterCount + vm.DefaultSRAMSize - 1)
	m.Memory.SetSP(top)

	var out bytes.Buffer
	printDump(&out, m, 1)

	if !bytes.Contains(out.Bytes(), []byte("Stack (SP+1..top): (empty)")) {
		t.Errorf("expected an explicit empty-stack marker, got:\n%s", out.String())
	}
}

func TestRunImage_WritesTraceAndStats(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "image.bin")
	tracePath := filepath.Join(dir, "trace.log")
	statsPath := filepath.Join(dir, "stats.json")

	op := encodeRJMPSelf()
	image := []byte{byte(op), byte(op >> 8)}
	if err := os.WriteFile(imagePath, image, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	stdout := os.Stdout
	_, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	if err := runImage(imagePath, "", tracePath, statsPath, "", false); err != nil {
		t.Fatalf("runImage: %v", err)
	}
	w.Close()
	os.Stdout = stdout

	traceBytes, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatalf("reading trace file: %v", err)
	}
	if len(traceBytes) == 0 {
		t.Error("expected a non-empty trace file")
	}

	statsBytes, err := os.ReadFile(statsPath)
	if err != nil {
		t.Fatalf("reading stats file: %v", err)
	}
	if !bytes.Contains(statsBytes, []byte("instructions")) {
		t.Errorf("expected JSON stats output, got %q", statsBytes)
	}
}
