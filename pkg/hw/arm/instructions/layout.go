package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/Manu343726/armin/pkg/utils"
)

// Role of a bit field within an instruction word
type FieldKind uint

const (
	// The condition nibble
	FieldKind_Condition FieldKind = iota
	// Bits fixed by the instruction template
	FieldKind_Fixed
	// Register index supplied by the caller
	FieldKind_Register
	// Any other caller supplied operand (immediates, flags, operand2, ...)
	FieldKind_Operand
)

func (k FieldKind) String() string {
	switch k {
	case FieldKind_Condition:
		return "condition"
	case FieldKind_Fixed:
		return "fixed"
	case FieldKind_Register:
		return "register"
	case FieldKind_Operand:
		return "operand"
	}

	return fmt.Sprintf("FieldKind(%d)", uint(k))
}

// A contiguous bit field of an instruction word
type Field struct {
	Name     string
	Position int
	Bits     int
	Kind     FieldKind
}

// Returns the bits of the word covered by the field
func (f Field) Mask() uint32 {
	return utils.FieldMask[uint32](f.Position, f.Bits)
}

// Returns true if the field is written by caller supplied operands
func (f Field) IsOperand() bool {
	return f.Kind == FieldKind_Register || f.Kind == FieldKind_Operand
}

// Returns a textual representation of the field contents within the given instruction word
func (f Field) Format(word Word) string {
	value := word.Bits(f.Position, f.Bits)

	switch f.Kind {
	case FieldKind_Condition:
		return conditionFromCode(value).String()
	case FieldKind_Fixed:
		return utils.FormatUintBinary(uint64(value), f.Bits)
	case FieldKind_Register:
		return fmt.Sprintf("%v=%v", f.Name, registers.Register(value))
	}

	if f.Bits == 1 {
		return fmt.Sprintf("%v=%v", f.Name, value)
	}

	return fmt.Sprintf("%v=%v", f.Name, utils.FormatUintHex(uint64(value), (f.Bits+3)/4))
}

func (f Field) String() string {
	return fmt.Sprintf("%v [%v:%v] (%v)", f.Name, f.Position+f.Bits-1, f.Position, f.Kind)
}

// Field names shared by several classes
const (
	Field_Condition = "Cond"
	Field_Rd        = "Rd"
	Field_Rn        = "Rn"
	Field_Rm        = "Rm"
	Field_Rs        = "Rs"
	Field_RdHi      = "RdHi"
	Field_RdLo      = "RdLo"
	Field_I         = "I"
	Field_P         = "P"
	Field_U         = "U"
	Field_S         = "S"
	Field_W         = "W"
	Field_Source    = "Source"
)

func conditionField() Field {
	return Field{Name: Field_Condition, Position: ConditionPosition, Bits: ConditionBits, Kind: FieldKind_Condition}
}

func fixedField(name string, position, bits int) Field {
	return Field{Name: name, Position: position, Bits: bits, Kind: FieldKind_Fixed}
}

func registerField(name string, position int) Field {
	return Field{Name: name, Position: position, Bits: registers.RegisterBits, Kind: FieldKind_Register}
}

func operandField(name string, position, bits int) Field {
	return Field{Name: name, Position: position, Bits: bits, Kind: FieldKind_Operand}
}

// Describes the field layout shared by all the opcodes of an instruction class
type ClassDescriptor struct {
	Class       InstructionClass
	Title       string
	Description string
	// Fields ordered from the most significant bit. Together they cover the whole word
	Fields []Field
}

var classDescriptors = [TOTAL_INSTRUCTION_CLASSES]*ClassDescriptor{
	InstructionClass_Branch: {
		Class:       InstructionClass_Branch,
		Title:       "Branch",
		Description: "Jumps to PC+8 plus a signed 24 bit word offset. With the link bit set, the return address is saved in LR",
		Fields: []Field{
			conditionField(),
			fixedField("101", 25, 3),
			fixedField("L", 24, 1),
			operandField("Offset", 0, 24),
		},
	},
	InstructionClass_DataProcessing: {
		Class:       InstructionClass_DataProcessing,
		Title:       "Data Processing",
		Description: "Arithmetic and logic operations between Rn and the flexible second operand, stored into Rd",
		Fields: []Field{
			conditionField(),
			fixedField("00", 26, 2),
			operandField(Field_I, ImmediateBit, 1),
			fixedField("OpCode", 21, 4),
			fixedField(Field_S, 20, 1),
			registerField(Field_Rn, 16),
			registerField(Field_Rd, 12),
			operandField("Operand2", 0, 12),
		},
	},
	InstructionClass_PSRTransfer: {
		Class:       InstructionClass_PSRTransfer,
		Title:       "PSR Transfer",
		Description: "Moves the current or saved program status register from or to a register, or writes the PSR flags only",
		Fields: []Field{
			conditionField(),
			fixedField("00", 26, 2),
			operandField(Field_I, ImmediateBit, 1),
			fixedField("10", 23, 2),
			operandField(Field_P, 22, 1),
			fixedField("Direction", 16, 6),
			registerField(Field_Rd, 12),
			operandField(Field_Source, 0, 12),
		},
	},
	InstructionClass_Multiply: {
		Class:       InstructionClass_Multiply,
		Title:       "Multiply",
		Description: "32 bit multiplication Rd = Rm * Rs, optionally accumulating Rn",
		Fields: []Field{
			conditionField(),
			fixedField("000000", 22, 6),
			fixedField("A", 21, 1),
			fixedField(Field_S, 20, 1),
			registerField(Field_Rd, 16),
			registerField(Field_Rn, 12),
			registerField(Field_Rs, 8),
			fixedField("1001", 4, 4),
			registerField(Field_Rm, 0),
		},
	},
	InstructionClass_MultiplyLong: {
		Class:       InstructionClass_MultiplyLong,
		Title:       "Multiply Long",
		Description: "64 bit multiplication RdHi:RdLo = Rm * Rs, signed or unsigned, optionally accumulating RdHi:RdLo",
		Fields: []Field{
			conditionField(),
			fixedField("00001", 23, 5),
			fixedField(Field_U, 22, 1),
			fixedField("A", 21, 1),
			fixedField(Field_S, 20, 1),
			registerField(Field_RdHi, 16),
			registerField(Field_RdLo, 12),
			registerField(Field_Rs, 8),
			fixedField("1001", 4, 4),
			registerField(Field_Rm, 0),
		},
	},
	InstructionClass_SingleDataTransfer: {
		Class:       InstructionClass_SingleDataTransfer,
		Title:       "Single Data Transfer",
		Description: "Loads or stores a word or byte at the address Rn +/- Offset",
		Fields: []Field{
			conditionField(),
			fixedField("01", 26, 2),
			operandField(Field_I, ImmediateBit, 1),
			operandField(Field_P, 24, 1),
			operandField(Field_U, 23, 1),
			fixedField("B", 22, 1),
			operandField(Field_W, 21, 1),
			fixedField("L", 20, 1),
			registerField(Field_Rn, 16),
			registerField(Field_Rd, 12),
			operandField("Offset", 0, 12),
		},
	},
	InstructionClass_HalfwordDataTransfer: {
		Class:       InstructionClass_HalfwordDataTransfer,
		Title:       "Halfword and Signed Data Transfer",
		Description: "Loads or stores a halfword, or loads a sign extended byte or halfword, at the address Rn +/- Offset",
		Fields: []Field{
			conditionField(),
			fixedField("000", 25, 3),
			operandField(Field_P, 24, 1),
			operandField(Field_U, 23, 1),
			operandField(Field_I, halfwordImmediateBit, 1),
			operandField(Field_W, 21, 1),
			fixedField("L", 20, 1),
			registerField(Field_Rn, 16),
			registerField(Field_Rd, 12),
			operandField("OffsetHi", halfwordImmediateHighPos, halfwordImmediateNibbleBits),
			fixedField("1SH1", 4, 4),
			operandField("OffsetLo", 0, halfwordImmediateNibbleBits),
		},
	},
	InstructionClass_BlockDataTransfer: {
		Class:       InstructionClass_BlockDataTransfer,
		Title:       "Block Data Transfer",
		Description: "Loads or stores a set of registers from or to consecutive words starting at the address in Rn",
		Fields: []Field{
			conditionField(),
			fixedField("100", 25, 3),
			operandField(Field_P, 24, 1),
			operandField(Field_U, 23, 1),
			operandField(Field_S, 22, 1),
			operandField(Field_W, 21, 1),
			fixedField("L", 20, 1),
			registerField(Field_Rn, 16),
			operandField("RegisterList", 0, registers.TOTAL_REGISTERS),
		},
	},
	InstructionClass_Swap: {
		Class:       InstructionClass_Swap,
		Title:       "Single Data Swap",
		Description: "Atomically loads Rd from the address in Rn and stores Rm at the same address",
		Fields: []Field{
			conditionField(),
			fixedField("00010", 23, 5),
			fixedField("B", 22, 1),
			fixedField("00", 20, 2),
			registerField(Field_Rn, 16),
			registerField(Field_Rd, 12),
			fixedField("00001001", 4, 8),
			registerField(Field_Rm, 0),
		},
	},
	InstructionClass_SoftwareInterrupt: {
		Class:       InstructionClass_SoftwareInterrupt,
		Title:       "Software Interrupt",
		Description: "Enters supervisor mode through the SWI exception vector. The comment field is ignored by the CPU",
		Fields: []Field{
			conditionField(),
			fixedField("1111", 24, 4),
			operandField("Comment", 0, SWICommentBits),
		},
	},
}

// Returns the layout descriptor of the class
func (c InstructionClass) Descriptor() *ClassDescriptor {
	return classDescriptors[c]
}

// Returns the descriptors of all instruction classes
func AllClasses() []*ClassDescriptor {
	return utils.Map(InstructionClasses(), InstructionClass.Descriptor)
}

// Returns the opcodes belonging to the class, ordered by opcode
func (d *ClassDescriptor) OpCodes() []*OpCodeDescriptor {
	result := make([]*OpCodeDescriptor, 0)

	for _, opcode := range Opcodes.AllOpCodes() {
		if opcode.Class == d.Class {
			result = append(result, opcode)
		}
	}

	return result
}

func asciiFields(fields []Field, name func(Field) string) []utils.AsciiFrameField {
	return utils.Map(fields, func(f Field) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  name(f),
			Begin: f.Position,
			Width: f.Bits,
		}
	})
}

// Returns an ascii diagram of the class fields
func (d *ClassDescriptor) Frame(leftpad int) (string, error) {
	return utils.AsciiFrame(asciiFields(d.Fields, func(f Field) string { return f.Name }), WordBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}

// Returns full documentation for the instruction class
func (d *ClassDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v (%v)\n\n", d.Title, d.Class))

	leftpad_str += "  "
	leftpad += 2

	builder.WriteString(leftpad_str)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpad_str)
	builder.WriteString(d.Description)
	builder.WriteString("\n\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Memory layout:\n\n")

	asciiFrame, err := d.Frame(leftpad + 2)
	if err != nil {
		panic(fmt.Errorf("error generating documentation for instruction class %v: %w", d.Class, err))
	}

	builder.WriteString(asciiFrame)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Opcodes:\n\n")

	for _, opcode := range d.OpCodes() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %-8v %v  %v\n", opcode.Mnemonic, utils.FormatUintHex(uint64(opcode.Template), 8), opcode.Description))
	}

	return builder.String()
}
