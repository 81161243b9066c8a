package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/avr-emulator/vm"
)

// TestNewDecoder_RejectsEqualSpecificityCollision exercises the no-ties
// contract directly: two descriptors with identical masks can never both
// win the same opcode, so NewDecoder must refuse to build a table rather
// than pick one arbitrarily.
func TestNewDecoder_RejectsEqualSpecificityCollision(t *testing.T) {
	table := []vm.InstructionDescriptor{
		{Name: "FOO", Pattern: "0000000000000000", Exec: func(m *vm.Machine, ops vm.Operands) {}},
		{Name: "BAR", Pattern: "0000000000000000", Exec: func(m *vm.Machine, ops vm.Operands) {}},
	}

	_, err := vm.NewDecoder(table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOO")
	assert.Contains(t, err.Error(), "BAR")
	assert.Contains(t, err.Error(), "0x0000")
}

// TestNewDecoder_DisjointMasksDoNotCollide is the negative case: two
// descriptors whose masks never match the same opcode build cleanly.
func TestNewDecoder_DisjointMasksDoNotCollide(t *testing.T) {
	table := []vm.InstructionDescriptor{
		{Name: "FOO", Pattern: "0000000000000000", Exec: func(m *vm.Machine, ops vm.Operands) {}},
		{Name: "BAR", Pattern: "1111111111111111", Exec: func(m *vm.Machine, ops vm.Operands) {}},
	}

	dec, err := vm.NewDecoder(table)

	require.NoError(t, err)
	desc, _ := dec.Decode(0x0000)
	require.NotNil(t, desc)
	assert.Equal(t, "FOO", desc.Name)
}

// TestNewDecoder_FullInstructionTableHasNoCollisions guards against a
// future edit to vm/isa.go accidentally introducing two patterns that tie
// on specificity for the same opcode.
func TestNewDecoder_FullInstructionTableHasNoCollisions(t *testing.T) {
	_, err := vm.NewDecoder(vm.InstructionTable)
	require.NoError(t, err)
}
