package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliases(t *testing.T) {
	assert.Equal(t, Register(13), SP)
	assert.Equal(t, Register(14), LR)
	assert.Equal(t, Register(15), PC)
	assert.Equal(t, 16, TOTAL_REGISTERS)
}

func TestNew(t *testing.T) {
	r, err := New(7)
	require.NoError(t, err)
	assert.Equal(t, R7, r)

	_, err = New(16)
	assert.ErrorIs(t, err, ErrInvalidRegister)

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidRegister)
}

func TestParse(t *testing.T) {
	for name, expected := range map[string]Register{
		"r0":  R0,
		"R12": R12,
		"sp":  SP,
		"LR":  LR,
		"pc":  PC,
		"r15": PC,
		" r3": R3,
	} {
		r, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, r, name)
	}

	for _, name := range []string{"", "r", "r16", "x0", "rr1", "r-1"} {
		_, err := Parse(name)
		assert.ErrorIs(t, err, ErrInvalidRegister, name)
	}
}

func TestEncode_TruncatesToFieldWidth(t *testing.T) {
	assert.Equal(t, uint32(0), Register(16).Encode())
	assert.Equal(t, uint32(15), Register(31).Encode())
	assert.False(t, Register(16).Valid())
	assert.True(t, PC.Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "r0", R0.String())
	assert.Equal(t, "r12", R12.String())
	assert.Equal(t, "sp", SP.String())
	assert.Equal(t, "lr", LR.String())
	assert.Equal(t, "pc", PC.String())
}

func TestListBits(t *testing.T) {
	for i := range TOTAL_REGISTERS {
		assert.Equal(t, List(1<<i), Register(i).Bit())
	}

	assert.Equal(t, List(0x2000), BSP)
	assert.Equal(t, List(0x4000), BLR)
	assert.Equal(t, List(0x8000), BPC)
}

func TestListOf(t *testing.T) {
	list := ListOf(LR, R0, R1, R0)

	assert.Equal(t, BR0|BR1|BLR, list)
	assert.True(t, list.Contains(R1))
	assert.False(t, list.Contains(R2))
	assert.Equal(t, []Register{R0, R1, LR}, list.Registers())
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "{r0, r1, lr}", list.String())
}

func TestEmptyList(t *testing.T) {
	assert.Equal(t, "{}", List(0).String())
	assert.Empty(t, List(0).Registers())
}
