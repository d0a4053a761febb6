package instructions

import (
	"fmt"
	"slices"

	"github.com/Manu343726/armin/pkg/utils"
)

// Contains implementation information of an instruction opcode
type OpCodeDescriptor struct {
	OpCode   OpCode
	Mnemonic string
	Class    InstructionClass
	// Fixed bits of the instruction, with an AL condition
	Template    uint32
	Description string
	// Operand fields of the class layout that the opcode fixes to a constant
	FixedFields []string

	encode   func(instr *Instruction) Word
	validate func(instr *Instruction) error
	format   func(mnemonic string, instr *Instruction) string
}

func (d *OpCodeDescriptor) String() string {
	return fmt.Sprintf("%v (class: %v, template: %v)", d.Mnemonic, d.Class, utils.FormatUintHex(uint64(d.Template), 8))
}

// Returns the class layout of the opcode, with the fields fixed by the opcode marked as such
func (d *OpCodeDescriptor) Layout() []Field {
	fields := slices.Clone(d.Class.Descriptor().Fields)

	for i := range fields {
		if fields[i].IsOperand() && slices.Contains(d.FixedFields, fields[i].Name) {
			fields[i].Kind = FieldKind_Fixed
		}
	}

	return fields
}

// Returns the bits of the instruction word written by caller supplied operands
func (d *OpCodeDescriptor) OperandMask() uint32 {
	var mask uint32

	for _, field := range d.Layout() {
		if field.IsOperand() {
			mask |= field.Mask()
		}
	}

	return mask
}

// Encodes the instruction truncating every operand to its field width.
// The instruction condition is merged into the resulting word
func (d *OpCodeDescriptor) Encode(instr *Instruction) Word {
	return d.encode(instr).If(instr.Cond)
}

// Checks that the instruction operands used by the opcode fit their fields and honor the opcode constraints
func (d *OpCodeDescriptor) Validate(instr *Instruction) error {
	if d.validate == nil {
		return nil
	}

	if err := d.validate(instr); err != nil {
		return utils.MakeError(err, "%v", d.Mnemonic)
	}

	return nil
}

// Returns an ascii diagram of the given instruction word split into the opcode fields
func (d *OpCodeDescriptor) Frame(word Word, leftpad int) (string, error) {
	return utils.AsciiFrame(asciiFields(d.Layout(), func(f Field) string { return f.Format(word) }), WordBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}
