// Package registers implements the ARM general purpose register references and the
// register-list bitmasks used by block data transfers
package registers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
)

// Identifies a general purpose register. Only the 4 least significant bits are encoded,
// use [New] to reject values out of the [0, 15] range
type Register uint8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// Total number of general purpose registers
	TOTAL_REGISTERS int = iota
)

// Register aliases
const (
	// Stack pointer
	SP = R13
	// Link register
	LR = R14
	// Program counter
	PC = R15
)

// Number of bits used to encode a register index
const RegisterBits = 4

var ErrInvalidRegister error = errors.New("invalid register")

var aliases = map[string]Register{
	"sp": SP,
	"lr": LR,
	"pc": PC,
}

// Returns a register given its index, failing if the index does not fit in a register field
func New(index int) (Register, error) {
	if index < 0 || index >= TOTAL_REGISTERS {
		return 0, utils.MakeError(ErrInvalidRegister, "register index %v out of range [0, %v]", index, TOTAL_REGISTERS-1)
	}

	return Register(index), nil
}

// Parses a register name. Accepts r0-r15 and the sp, lr and pc aliases, ignoring case
func Parse(name string) (Register, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	if r, isAlias := aliases[lower]; isAlias {
		return r, nil
	}

	if !strings.HasPrefix(lower, "r") {
		return 0, utils.MakeError(ErrInvalidRegister, "'%v'", name)
	}

	index, err := strconv.Atoi(lower[1:])
	if err != nil {
		return 0, utils.MakeError(ErrInvalidRegister, "'%v'", name)
	}

	return New(index)
}

// Returns true if the register index fits in a 4 bit register field
func (r Register) Valid() bool {
	return int(r) < TOTAL_REGISTERS
}

// Returns the register index truncated to the 4 bits of a register field
func (r Register) Encode() uint32 {
	return uint32(r) & utils.AllOnes[uint32](RegisterBits)
}

func (r Register) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	}

	return fmt.Sprintf("r%d", uint8(r))
}

// Set of registers transferred by a block data transfer, bit i set means register i is included
type List uint16

// Register list bits
const (
	BR0 List = 1 << iota
	BR1
	BR2
	BR3
	BR4
	BR5
	BR6
	BR7
	BR8
	BR9
	BR10
	BR11
	BR12
	BR13
	BR14
	BR15
)

const (
	BSP = BR13
	BLR = BR14
	BPC = BR15
)

// Returns the list bit of the register
func (r Register) Bit() List {
	return List(1) << r.Encode()
}

// Builds a register list out of a set of registers. Order and duplicates are irrelevant
func ListOf(regs ...Register) List {
	var list List

	for _, r := range regs {
		list |= r.Bit()
	}

	return list
}

// Returns true if the list includes the register
func (l List) Contains(r Register) bool {
	return l&r.Bit() != 0
}

// Returns the registers in the list in ascending order
func (l List) Registers() []Register {
	result := make([]Register, 0, TOTAL_REGISTERS)

	for i := range TOTAL_REGISTERS {
		if l.Contains(Register(i)) {
			result = append(result, Register(i))
		}
	}

	return result
}

// Returns the number of registers in the list
func (l List) Len() int {
	return len(l.Registers())
}

func (l List) String() string {
	return "{" + utils.FormatSlice(l.Registers(), ", ") + "}"
}
