// Package loader acquires a raw program image from disk and loads it into a
// Machine's FLASH. Ingestion is limited to raw bytes: no object-file,
// assembler, or symbol-table support, and no validation of the image's
// contents beyond its length.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/lookbusy1344/avr-emulator/vm"
)

// LoadImageFile opens path, reads its entire contents, and loads them into
// machine's FLASH via Machine.Load. The file is closed on every exit path,
// including a failed read. A file longer than FLASH is truncated to FLASH's
// capacity; a short file leaves the remaining FLASH words zero.
func LoadImageFile(machine *vm.Machine, path string) error {
	f, err := os.Open(path) // #nosec G304 -- path is a user-supplied CLI argument
	if err != nil {
		return fmt.Errorf("failed to open image %q: %w", path, err)
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read image %q: %w", path, err)
	}

	machine.Load(image)
	return nil
}
