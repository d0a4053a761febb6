package instructions

import (
	"testing"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIMM(t *testing.T) {
	assert.Equal(t, uint32(0x02000005), IMM(5, 0).Encode())
	assert.Equal(t, uint32(0x020002FF), IMM(0xFF, 2).Encode())
	assert.Equal(t, uint32(0x02000F01), IMM(1, 15).Encode())
}

func TestIMM_FieldsWrap(t *testing.T) {
	assert.Equal(t, IMM(0x34, 1).Encode(), IMM(0x1234, 17).Encode())
}

func TestIMM_Value(t *testing.T) {
	value, ok := IMM(0xFF, 4).Value()
	require.True(t, ok)
	assert.Equal(t, uint32(0xFF000000), value)

	value, ok = IMM(1, 1).Value()
	require.True(t, ok)
	assert.Equal(t, uint32(0x40000000), value)

	_, ok = REG(registers.R0).Value()
	assert.False(t, ok)
}

func TestEncodeImmediate(t *testing.T) {
	values := []uint32{0, 1, 0xFF, 0x100, 0x3FC, 0xFF000000, 0xF000000F, 0x00AB0000, 0x80000000, 0x104}

	for _, value := range values {
		op2, ok := EncodeImmediate(value)
		require.True(t, ok, "%#x", value)

		decoded, ok := op2.Value()
		require.True(t, ok)
		assert.Equal(t, value, decoded, "%#x", value)
		assert.NoError(t, op2.Validate())
	}
}

func TestEncodeImmediate_NotEncodable(t *testing.T) {
	for _, value := range []uint32{0x101, 0x1FE00001, 0xFFFFFFFF, 0x12345678} {
		_, ok := EncodeImmediate(value)
		assert.False(t, ok, "%#x", value)
	}
}

func TestShiftedRegister(t *testing.T) {
	assert.Equal(t, uint32(0x00000003), REG(registers.R3).Encode())
	assert.Equal(t, uint32(0x00000F83), LSL(registers.R3, 31).Encode())
	assert.Equal(t, uint32(0x000000A3), LSR(registers.R3, 1).Encode())
	assert.Equal(t, uint32(0x00000143), ASR(registers.R3, 2).Encode())
	assert.Equal(t, uint32(0x000001E3), ROR(registers.R3, 3).Encode())
	assert.Equal(t, uint32(0x00000063), RRX(registers.R3).Encode())
}

func TestShiftedRegister_AmountWrapsTo5Bits(t *testing.T) {
	assert.Equal(t, REG(registers.R3).Encode(), LSL(registers.R3, 32).Encode())
}

func TestRegisterShiftedRegister(t *testing.T) {
	assert.Equal(t, uint32(0x00000213), LSLR(registers.R3, registers.R2).Encode())
	assert.Equal(t, uint32(0x00000233), LSRR(registers.R3, registers.R2).Encode())
	assert.Equal(t, uint32(0x00000253), ASRR(registers.R3, registers.R2).Encode())
	assert.Equal(t, uint32(0x00000F73), RORR(registers.R3, registers.R15).Encode())
}

func TestOperand2_StaysWithinMask(t *testing.T) {
	operands := []Operand2{
		IMM(0xFFFFFFFF, 0xFFFFFFFF),
		LSL(registers.Register(0xFF), 0xFFFFFFFF),
		RORR(registers.Register(0xFF), registers.Register(0xFF)),
	}

	for _, op2 := range operands {
		assert.Zero(t, op2.Encode()&^Operand2Mask, "%v", op2)
	}
}

func TestOperand2_Validate(t *testing.T) {
	assert.NoError(t, IMM(0xFF, 15).Validate())
	assert.NoError(t, LSL(registers.R15, 31).Validate())
	assert.NoError(t, RORR(registers.R15, registers.R15).Validate())

	assert.ErrorIs(t, IMM(0x100, 0).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, IMM(1, 16).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, LSL(registers.R0, 32).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, LSL(registers.Register(16), 0).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, LSLR(registers.R0, registers.Register(16)).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, Operand2{Kind: Operand2Kind_ShiftedRegister, Shift: TOTAL_SHIFT_TYPES}.Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, Operand2{Kind: Operand2Kind(42)}.Validate(), ErrInvalidOperand)
}

func TestOperand2_String(t *testing.T) {
	assert.Equal(t, "#5", IMM(5, 0).String())
	assert.Equal(t, "#4278190080", IMM(0xFF, 4).String())
	assert.Equal(t, "r3", REG(registers.R3).String())
	assert.Equal(t, "r3, lsl #2", LSL(registers.R3, 2).String())
	assert.Equal(t, "r3, rrx", RRX(registers.R3).String())
	assert.Equal(t, "r3, asr r4", ASRR(registers.R3, registers.R4).String())
}

func TestParseShiftType(t *testing.T) {
	shift, err := ParseShiftType("ASR")
	require.NoError(t, err)
	assert.Equal(t, ShiftType_ASR, shift)

	_, err = ParseShiftType("rrx")
	assert.ErrorIs(t, err, ErrInvalidOperand)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, uint32(0x00000FFF), IMM12(0xFFF).Encode())
	assert.Equal(t, uint32(0x00000000), IMM12(0x1000).Encode())
	assert.Equal(t, uint32(0x02000102), RegisterOffset(LSL(registers.R2, 2)).Encode())

	assert.NoError(t, IMM12(0xFFF).Validate())
	assert.NoError(t, RegisterOffset(REG(registers.R1)).Validate())
	assert.ErrorIs(t, IMM12(0x1000).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, RegisterOffset(IMM(1, 0)).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, RegisterOffset(LSLR(registers.R1, registers.R2)).Validate(), ErrInvalidOperand)
}

func TestHalfwordOffset_Validate(t *testing.T) {
	assert.NoError(t, HSTIMM(0xFF).Validate())
	assert.NoError(t, HalfwordRegister(registers.R15).Validate())
	assert.ErrorIs(t, HSTIMM(0x100).Validate(), ErrInvalidOperand)
	assert.ErrorIs(t, HalfwordRegister(registers.Register(16)).Validate(), ErrInvalidOperand)
}
