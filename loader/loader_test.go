package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/avr-emulator/vm"
)

func TestLoadImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	image := []byte{0x01, 0x02, 0x03, 0x04}
	if err := os.WriteFile(path, image, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	m := vm.NewMachine(vm.DefaultFlashSize, vm.DefaultSRAMSize, vm.DefaultEEPROMSize)
	if err := LoadImageFile(m, path); err != nil {
		t.Fatalf("LoadImageFile: %v", err)
	}

	if got := m.Memory.ProgWord(0); got != 0x0201 {
		t.Errorf("word 0 = 0x%04X, want 0x0201", got)
	}
	if got := m.Memory.ProgWord(1); got != 0x0403 {
		t.Errorf("word 1 = 0x%04X, want 0x0403", got)
	}
	if m.CPU.PC != 0 {
		t.Errorf("PC = %d, want 0 after load", m.CPU.PC)
	}
}

func TestLoadImageFileMissing(t *testing.T) {
	m := vm.NewMachine(vm.DefaultFlashSize, vm.DefaultSRAMSize, vm.DefaultEEPROMSize)
	if err := LoadImageFile(m, filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("expected an error loading a missing file")
	}
}
