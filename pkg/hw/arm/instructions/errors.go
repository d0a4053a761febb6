package instructions

import (
	"errors"

	"github.com/Manu343726/armin/pkg/utils"
)

var (
	// An operand value does not fit its instruction field, or the operand form is not accepted by the instruction
	ErrInvalidOperand error = errors.New("invalid operand")
	// Unknown instruction mnemonic or opcode
	ErrInvalidOpCode error = errors.New("invalid instruction opcode")
	// Unknown condition code name
	ErrInvalidCondition error = errors.New("invalid condition code")
	// The instruction is not available on the selected CPU variant
	ErrUnsupportedInstruction error = errors.New("unsupported instruction")
	// Unknown CPU variant name
	ErrInvalidCPU error = errors.New("invalid cpu variant")
	// Unknown encoding policy name
	ErrInvalidPolicy error = errors.New("invalid encoding policy")
)

func makeOperandError(details string, args ...any) error {
	return utils.MakeError(ErrInvalidOperand, details, args...)
}
