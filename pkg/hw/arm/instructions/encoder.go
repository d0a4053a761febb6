package instructions

import "github.com/Manu343726/armin/pkg/utils"

// Encodes symbolic instructions for a given core variant.
//
// The zero value encodes for a generic core rejecting out of range operands. Encoders are
// plain values with no internal state and can be shared between goroutines
type Encoder struct {
	Policy Policy
	CPU    CPU
}

// Returns an encoder with the given policy and core variant
func NewEncoder(policy Policy, cpu CPU) Encoder {
	return Encoder{
		Policy: policy,
		CPU:    cpu,
	}
}

// Returns the machine word of the instruction.
//
// The instruction class must be supported by the encoder CPU, and operands of unknown kind fail
// with [ErrInvalidOperand] under every policy. With [Policy_Strict], operands that do not fit
// their fields and opcode constraint violations also fail with [ErrInvalidOperand]
func (e Encoder) Encode(instr Instruction) (Word, error) {
	if e.Policy >= TOTAL_POLICIES {
		return 0, utils.MakeError(ErrInvalidPolicy, "policy value %v", uint(e.Policy))
	}
	if e.CPU >= TOTAL_CPUS {
		return 0, utils.MakeError(ErrInvalidCPU, "cpu value %v", uint(e.CPU))
	}

	descriptor, err := Opcodes.Descriptor(instr.OpCode)
	if err != nil {
		return 0, err
	}

	if !e.CPU.Supports(descriptor.Class) {
		return 0, utils.MakeError(ErrUnsupportedInstruction, "%v (%v) is not available on %v cores", descriptor.Mnemonic, descriptor.Class, e.CPU)
	}

	if err := checkOperandKinds(descriptor, &instr); err != nil {
		return 0, utils.MakeError(err, "%v", descriptor.Mnemonic)
	}

	if e.Policy == Policy_Strict {
		if uint32(instr.Cond) >= TOTAL_CONDITIONS {
			return 0, utils.MakeError(ErrInvalidCondition, "condition value %v", uint32(instr.Cond))
		}

		if err := descriptor.Validate(&instr); err != nil {
			return 0, err
		}
	}

	return descriptor.Encode(&instr), nil
}

// Rejects operand kinds outside their enumerations in the operands read by the opcode
func checkOperandKinds(descriptor *OpCodeDescriptor, instr *Instruction) error {
	switch descriptor.Class {
	case InstructionClass_DataProcessing:
		return instr.Operand2.checkKind()
	case InstructionClass_PSRTransfer:
		if descriptor.OpCode == OpCode_MSR_FLG {
			return instr.Operand2.checkKind()
		}
	case InstructionClass_SingleDataTransfer:
		return instr.Offset.checkKind()
	case InstructionClass_HalfwordDataTransfer:
		return instr.HalfwordOffset.checkKind()
	}

	return nil
}

// Encodes a sequence of instructions, stopping at the first error
func (e Encoder) EncodeAll(instrs []Instruction) ([]Word, error) {
	words := make([]Word, 0, len(instrs))

	for i, instr := range instrs {
		word, err := e.Encode(instr)
		if err != nil {
			return nil, utils.MakeError(err, "instruction #%v (%v)", i, instr.OpCode)
		}

		words = append(words, word)
	}

	return words, nil
}
