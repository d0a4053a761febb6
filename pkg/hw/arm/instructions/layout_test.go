package instructions

import (
	"strings"
	"testing"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassLayouts_CoverTheWholeWord(t *testing.T) {
	for _, class := range AllClasses() {
		var covered uint32
		total := 0

		for _, field := range class.Fields {
			assert.Zero(t, covered&field.Mask(), "%v: field %v overlaps a previous field", class.Title, field)
			covered |= field.Mask()
			total += field.Bits
		}

		assert.Equal(t, ^uint32(0), covered, class.Title)
		assert.Equal(t, WordBits, total, class.Title)
	}
}

func TestTemplates_DoNotWriteOperandFields(t *testing.T) {
	for _, opcode := range Opcodes.AllOpCodes() {
		assert.Zero(t, opcode.Template&opcode.OperandMask(), "%v", opcode)
		assert.Equal(t, AL, Word(opcode.Template).Condition(), "%v", opcode)
	}
}

// Instructions with every operand field saturated, one per operand form
func saturatedInstructions(op OpCode) []Instruction {
	all := registers.Register(0xFF)
	operands := []Operand2{
		IMM(0xFFFFFFFF, 0xFFFFFFFF),
		LSL(all, 0xFFFFFFFF),
		RORR(all, all),
	}

	result := make([]Instruction, 0, len(operands))

	for _, op2 := range operands {
		result = append(result, Instruction{
			OpCode:         op,
			Rd:             all,
			Rn:             all,
			Rm:             all,
			Rs:             all,
			RdHi:           all,
			RdLo:           all,
			Operand2:       op2,
			Offset:         RegisterOffset(op2),
			HalfwordOffset: HSTIMM(0xFFFFFFFF),
			Mode:           AddressingMode{PreIndex: true, Up: true, WriteBack: true, ForceUser: true},
			List:           registers.List(0xFFFF),
			PSR:            PSR(0xFFFFFFFF),
			Target:         -1,
			Comment:        0xFFFFFFFF,
		}, Instruction{
			OpCode:         op,
			Operand2:       op2,
			Offset:         IMM12(0xFFFFFFFF),
			HalfwordOffset: HalfwordRegister(all),
		})
	}

	return result
}

func TestOperands_DoNotWriteFixedFields(t *testing.T) {
	encoder := NewEncoder(Policy_Wrap, CPU_Generic)

	for _, opcode := range Opcodes.AllOpCodes() {
		fixedMask := ^opcode.OperandMask()

		for _, instr := range saturatedInstructions(opcode.OpCode) {
			word, err := encoder.Encode(instr)
			require.NoError(t, err)

			assert.Equal(t, opcode.Template&fixedMask, uint32(word)&fixedMask, "%v: %v", opcode, word)
		}
	}
}

func TestOpCodeLayout_MarksFixedFields(t *testing.T) {
	mov, err := Opcodes.Descriptor(OpCode_MOV)
	require.NoError(t, err)

	for _, field := range mov.Layout() {
		if field.Name == Field_Rn {
			assert.Equal(t, FieldKind_Fixed, field.Kind)
		}
	}

	add, err := Opcodes.Descriptor(OpCode_ADD)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x020FFFFF), add.OperandMask())
	assert.Equal(t, uint32(0x0200FFFF), mov.OperandMask())
}

func TestClassDocumentation(t *testing.T) {
	for _, class := range AllClasses() {
		doc := class.Documentation(0)

		assert.Contains(t, doc, class.Title)
		assert.Contains(t, doc, "Memory layout")

		for _, opcode := range class.OpCodes() {
			assert.Contains(t, doc, opcode.Mnemonic)
		}
	}
}

func TestOpCodeFrame(t *testing.T) {
	mul, err := Opcodes.Descriptor(OpCode_MUL)
	require.NoError(t, err)

	frame, err := mul.Frame(MUL(registers.R3, registers.R1, registers.R2).If(NE), 0)
	require.NoError(t, err)

	assert.Contains(t, frame, "NE")
	assert.Contains(t, frame, "Rd=r3")
	assert.Contains(t, frame, "Rs=r2")
	assert.Contains(t, frame, "Rm=r1")
	assert.Contains(t, frame, "1001")
	assert.Equal(t, 5, strings.Count(frame, "\n"))
}

func TestParseInstructionClass(t *testing.T) {
	for _, class := range InstructionClasses() {
		parsed, err := ParseInstructionClass(class.String())
		require.NoError(t, err)
		assert.Equal(t, class, parsed)
	}

	_, err := ParseInstructionClass("coprocessor")
	assert.ErrorIs(t, err, ErrInvalidOpCode)
}
