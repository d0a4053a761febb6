package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
)

// Symbolic description of an instruction. Each opcode reads only the fields of its class:
//
//   - Branch: Target.
//   - Data processing: Rd, Rn, Operand2.
//   - PSR transfer: PSR, Rd (MRS), Rm (MSR), Operand2 (MSR_FLG).
//   - Multiply: Rd, Rn, Rm, Rs. Multiply long: RdHi, RdLo, Rm, Rs.
//   - Single data transfer: Rn, Rd, Offset, Mode.
//   - Halfword transfer: Rn, Rd, HalfwordOffset, Mode.
//   - Block data transfer: Rn, List, Mode (STM and LDM only).
//   - Swap: Rd, Rm, Rn.
//   - Software interrupt: Comment.
type Instruction struct {
	OpCode OpCode
	Cond   Condition

	Rd   registers.Register
	Rn   registers.Register
	Rm   registers.Register
	Rs   registers.Register
	RdHi registers.Register
	RdLo registers.Register

	Operand2       Operand2
	Offset         Offset
	HalfwordOffset HalfwordOffset
	Mode           AddressingMode
	List           registers.List
	PSR            PSR

	// Branch offset in words, relative to the branch address plus 8 bytes
	Target int32
	// SWI comment field
	Comment uint32

	// Informational label, not encoded
	Label string
}

// Returns the opcode descriptor of the instruction
func (instr *Instruction) Descriptor() (*OpCodeDescriptor, error) {
	return Opcodes.Descriptor(instr.OpCode)
}

// Returns the mnemonic with the condition suffix, if the instruction is conditional
func (instr *Instruction) Mnemonic() string {
	if instr.Cond == AL {
		return instr.OpCode.String()
	}

	return instr.OpCode.String() + instr.Cond.String()
}

// Returns an assembly like representation of the instruction
func (instr *Instruction) String() string {
	descriptor, err := instr.Descriptor()
	if err != nil {
		return instr.OpCode.String()
	}

	return descriptor.format(instr.Mnemonic(), instr)
}

func formatOperands(mnemonic string, operands ...any) string {
	var builder strings.Builder

	builder.WriteString(mnemonic)

	for i, operand := range operands {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}

		builder.WriteString(fmt.Sprint(operand))
	}

	return builder.String()
}

// Formats a transfer address. Immediate offsets carry the sign after the '#': [r1, #-4]
func formatAddress(rn registers.Register, offset string, isImmediate bool, isZero bool, mode AddressingMode) string {
	sign := "-"
	if mode.Up {
		sign = ""
	}

	if isImmediate {
		offset = "#" + sign + offset
	} else {
		offset = sign + offset
	}

	if mode.PreIndex {
		writeBack := ""
		if mode.WriteBack {
			writeBack = "!"
		}

		if isZero {
			return fmt.Sprintf("[%v]%v", rn, writeBack)
		}

		return fmt.Sprintf("[%v, %v]%v", rn, offset, writeBack)
	}

	return fmt.Sprintf("[%v], %v", rn, offset)
}

func formatTransferAddress(rn registers.Register, offset Offset, mode AddressingMode) string {
	if offset.Kind == OffsetKind_Immediate {
		return formatAddress(rn, fmt.Sprint(offset.Immediate), true, offset.Immediate == 0, mode)
	}

	return formatAddress(rn, offset.Register.String(), false, false, mode)
}

func formatHalfwordAddress(rn registers.Register, offset HalfwordOffset, mode AddressingMode) string {
	if offset.Kind == OffsetKind_Immediate {
		return formatAddress(rn, fmt.Sprint(offset.Immediate), true, offset.Immediate == 0, mode)
	}

	return formatAddress(rn, offset.Rm.String(), false, false, mode)
}

// Returns the IA/IB/DA/DB suffix of a block transfer addressing mode
func blockSuffix(mode AddressingMode) string {
	switch {
	case mode.Up && mode.PreIndex:
		return "IB"
	case mode.Up:
		return "IA"
	case mode.PreIndex:
		return "DB"
	}

	return "DA"
}
