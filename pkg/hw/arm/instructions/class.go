package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
)

// Instruction encoding class. All the opcodes of a class share the same field layout
type InstructionClass uint

const (
	InstructionClass_Branch InstructionClass = iota
	InstructionClass_DataProcessing
	InstructionClass_PSRTransfer
	InstructionClass_Multiply
	InstructionClass_MultiplyLong
	InstructionClass_SingleDataTransfer
	InstructionClass_HalfwordDataTransfer
	InstructionClass_BlockDataTransfer
	InstructionClass_Swap
	InstructionClass_SoftwareInterrupt

	// Total instruction classes implemented
	TOTAL_INSTRUCTION_CLASSES
)

var instructionClassNames = [TOTAL_INSTRUCTION_CLASSES]string{
	"branch",
	"dataprocessing",
	"psr",
	"multiply",
	"multiplylong",
	"transfer",
	"halfword",
	"block",
	"swap",
	"swi",
}

// Returns the short name of the class, as accepted by [ParseInstructionClass]
func (c InstructionClass) String() string {
	if c < TOTAL_INSTRUCTION_CLASSES {
		return instructionClassNames[c]
	}

	return fmt.Sprintf("InstructionClass(%d)", uint(c))
}

// Returns all instruction classes
func InstructionClasses() []InstructionClass {
	return utils.Iota(int(TOTAL_INSTRUCTION_CLASSES), func(i int) InstructionClass { return InstructionClass(i) })
}

// Parses an instruction class short name (branch, dataprocessing, psr, ...)
func ParseInstructionClass(name string) (InstructionClass, error) {
	for i, className := range instructionClassNames {
		if strings.EqualFold(strings.TrimSpace(name), className) {
			return InstructionClass(i), nil
		}
	}

	return 0, utils.MakeError(ErrInvalidOpCode, "unknown instruction class '%v'. Valid classes: %v", name, utils.FormatSlice(instructionClassNames[:], ", "))
}
