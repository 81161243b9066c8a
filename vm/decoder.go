package vm

import (
	"fmt"
	"math/bits"
)

// Operands holds the field values extracted from one decoded opcode. Each
// field is keyed by its pattern letter; raw values are concatenated MSB
// first as described by the decoder's operand-extraction rule. Executors
// interpret a raw field through whichever accessor matches the operand kind
// the instruction description calls for (plain register, high register,
// register pair, signed offset, I/O address, bit index...).
type Operands struct {
	raw   map[byte]uint32
	width map[byte]int
}

// Raw returns the unsigned value extracted for a field letter, or 0 if the
// instruction's pattern doesn't use it.
func (o Operands) Raw(letter byte) uint32 {
	return o.raw[letter]
}

// Signed sign-extends a field's raw value over its extracted bit width.
func (o Operands) Signed(letter byte) int32 {
	v := o.raw[letter]
	w := o.width[letter]
	if w == 0 || w >= 32 {
		return int32(v)
	}
	if v&(1<<uint(w-1)) != 0 {
		v |= ^uint32(0) << uint(w)
	}
	return int32(v)
}

// Reg interprets a field as a direct 5-bit register index (0..31).
func (o Operands) Reg(letter byte) int {
	return int(o.raw[letter])
}

// RegHigh interprets a 4-bit field as a register index in 16..31, the form
// used by LDI/SUBI/ANDI/ORI/SBCI/CPI.
func (o Operands) RegHigh(letter byte) int {
	return 16 + int(o.raw[letter])
}

// RegPairBase interprets a 4-bit field as an even-register-pair index
// (MOVW): the field value is the pair number, the low register is 2x that.
func (o Operands) RegPairBase(letter byte) int {
	return int(o.raw[letter]) * 2
}

// IOAddr interprets a field as a raw I/O-space address (0..63); callers add
// IORegisterBase to reach the unified data-memory address.
func (o Operands) IOAddr(letter byte) int {
	return int(o.raw[letter])
}

// Bit interprets a field as a 3-bit bit index (0..7).
func (o Operands) Bit(letter byte) int {
	return int(o.raw[letter]) & Mask3Bit
}

// InstructionDescriptor is one entry of the declarative instruction
// description table: a mnemonic, its 16-character encoding pattern, and the
// semantic body that mutates machine state once the decoder has bound
// operand fields. TwoWord marks the LDS/STS forms whose immediate operand
// occupies the FLASH word following the opcode.
type InstructionDescriptor struct {
	Name    string
	Pattern string
	TwoWord bool
	Exec    func(m *Machine, ops Operands)
}

// compiledPattern is the generator's internal representation of one
// descriptor: the (mask, value) pair used for matching, its specificity
// (popcount of mask), and the bit positions contributing to each operand
// field, already in MSB-first order.
type compiledPattern struct {
	desc      *InstructionDescriptor
	mask      uint16
	value     uint16
	popcount  int
	fieldBits map[byte][]int
}

func compilePattern(desc *InstructionDescriptor) (*compiledPattern, error) {
	if len(desc.Pattern) != 16 {
		return nil, fmt.Errorf("instruction %s: pattern must be 16 characters, got %d", desc.Name, len(desc.Pattern))
	}

	cp := &compiledPattern{desc: desc, fieldBits: make(map[byte][]int)}
	for i := 0; i < 16; i++ {
		bitPos := 15 - i
		c := desc.Pattern[i]
		switch c {
		case '0':
			cp.mask |= 1 << uint(bitPos)
		case '1':
			cp.mask |= 1 << uint(bitPos)
			cp.value |= 1 << uint(bitPos)
		default:
			cp.fieldBits[c] = append(cp.fieldBits[c], bitPos)
		}
	}
	cp.popcount = bits.OnesCount16(cp.mask)
	return cp, nil
}

// Decoder is the runtime-built, longest-specific-match dispatcher: a
// precomputed 65,536-entry lookup table, one slot per possible opcode. This
// is option (c) of the three dispatch strategies the decoder contract
// permits. No offline code-generator is built from InstructionTable in this
// repository; this table is its only consumer.
type Decoder struct {
	table [65536]*compiledPattern
}

// NewDecoder compiles the instruction description table into a dispatcher.
// It returns an error naming the colliding mnemonics if two patterns tie on
// specificity for the same opcode, per the decoder's no-ties contract.
func NewDecoder(table []InstructionDescriptor) (*Decoder, error) {
	compiled := make([]*compiledPattern, len(table))
	for i := range table {
		cp, err := compilePattern(&table[i])
		if err != nil {
			return nil, err
		}
		compiled[i] = cp
	}

	dec := &Decoder{}
	for opcode := 0; opcode < 65536; opcode++ {
		op := uint16(opcode)
		maxPop := -1
		for _, cp := range compiled {
			if op&cp.mask == cp.value && cp.popcount > maxPop {
				maxPop = cp.popcount
			}
		}
		if maxPop < 0 {
			continue // unknown opcode: no-op, per the decoder contract
		}

		var winner *compiledPattern
		var runnerUp *compiledPattern
		for _, cp := range compiled {
			if cp.popcount == maxPop && op&cp.mask == cp.value {
				if winner == nil {
					winner = cp
				} else {
					runnerUp = cp
				}
			}
		}
		if runnerUp != nil {
			return nil, fmt.Errorf("decoder collision at opcode 0x%04X: %q and %q both match with equal specificity",
				opcode, winner.desc.Name, runnerUp.desc.Name)
		}
		dec.table[opcode] = winner
	}
	return dec, nil
}

// Decode looks up the instruction matching opcode and extracts its operand
// fields. A nil descriptor means the opcode is unknown and must be treated
// as a no-op.
func (d *Decoder) Decode(opcode uint16) (*InstructionDescriptor, Operands) {
	cp := d.table[opcode]
	if cp == nil {
		return nil, Operands{}
	}

	ops := Operands{raw: make(map[byte]uint32, len(cp.fieldBits)), width: make(map[byte]int, len(cp.fieldBits))}
	for letter, positions := range cp.fieldBits {
		var v uint32
		for _, pos := range positions {
			bit := (opcode >> uint(pos)) & 1
			v = v<<1 | uint32(bit)
		}
		ops.raw[letter] = v
		ops.width[letter] = len(positions)
	}
	return cp.desc, ops
}
