package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `
cpu: armv4
policy: wrap
origin: 0x8000
instructions:
  - op: mov
    rd: r0
    op2: {imm: 5}
    label: start
  - op: add
    cond: eq
    rd: r1
    rn: r2
    op2: {reg: r3, shift: lsl, amount: 2}
  - op: ldr
    rd: r0
    rn: r1
    offset: {imm: 4}
    flags: [pre, up]
  - op: ldrh
    rd: r0
    rn: r1
    hoffset: {imm: 2}
    flags: [pre, up]
  - op: stmfd
    rn: sp
    regs: [r0, r1, lr]
  - op: b
    cond: ne
    address: 0x8000
  - op: swi
    comment: 0x11
`

func load(t *testing.T, text string) *Listing {
	listing, err := Load(strings.NewReader(text))
	require.NoError(t, err)
	return listing
}

func TestLoad(t *testing.T) {
	listing := load(t, program)

	require.NotNil(t, listing.CPU)
	require.NotNil(t, listing.Policy)
	assert.Equal(t, instructions.CPU_ARMv4, *listing.CPU)
	assert.Equal(t, instructions.Policy_Wrap, *listing.Policy)
	assert.Equal(t, uint32(0x8000), listing.Origin)
	require.Len(t, listing.Instructions, 7)

	assert.Equal(t, instructions.Instruction{
		OpCode:   instructions.OpCode_MOV,
		Rd:       registers.R0,
		Operand2: instructions.IMM(5, 0),
		Label:    "start",
	}, listing.Instructions[0])

	add := listing.Instructions[1]
	assert.Equal(t, instructions.OpCode_ADD, add.OpCode)
	assert.Equal(t, instructions.EQ, add.Cond)
	assert.Equal(t, instructions.LSL(registers.R3, 2), add.Operand2)

	assert.Equal(t, instructions.IMM12(4), listing.Instructions[2].Offset)
	assert.Equal(t, instructions.AddressingMode{PreIndex: true, Up: true}, listing.Instructions[2].Mode)
	assert.Equal(t, instructions.HSTIMM(2), listing.Instructions[3].HalfwordOffset)

	assert.Equal(t, instructions.OpCode_STMDB, listing.Instructions[4].OpCode)
	assert.Equal(t, registers.SP, listing.Instructions[4].Rn)
	assert.Equal(t, registers.BR0|registers.BR1|registers.BLR, listing.Instructions[4].List)

	assert.Equal(t, int32(-7), listing.Instructions[5].Target)
	assert.Equal(t, uint32(0x11), listing.Instructions[6].Comment)
}

func TestLoad_EncodesToExpectedWords(t *testing.T) {
	listing := load(t, program)

	words, err := instructions.NewEncoder(*listing.Policy, *listing.CPU).EncodeAll(listing.Instructions)
	require.NoError(t, err)

	assert.Equal(t, []instructions.Word{
		0xE3A00005,
		0x00821103,
		0xE5910004,
		0xE1D100B2,
		0xE92D4003,
		0x1AFFFFF9,
		0xEF000011,
	}, words)
}

func TestLoad_Defaults(t *testing.T) {
	listing := load(t, "instructions:\n  - op: swi\n")

	assert.Nil(t, listing.CPU)
	assert.Nil(t, listing.Policy)
	assert.Equal(t, uint32(0), listing.Origin)
	assert.Equal(t, instructions.Instruction{OpCode: instructions.OpCode_SWI}, listing.Instructions[0])
}

func TestLoad_Operand2Forms(t *testing.T) {
	listing := load(t, `
instructions:
  - {op: mov, op2: {value: 0xFF000000}}
  - {op: mov, op2: {imm: 0xFF, rot: 4}}
  - {op: mov, op2: {reg: r1, shift: asr, rs: r2}}
  - {op: mov, op2: {reg: r1, shift: rrx}}
  - {op: mov, op2: {reg: pc}}
  - {op: ldr, offset: {reg: r2, shift: lsl, amount: 3}}
  - {op: ldrsh, hoffset: {reg: r4}}
  - {op: msr_flg, psr: spsr, op2: {reg: r0}}
`)

	value, ok := listing.Instructions[0].Operand2.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(0xFF000000), value)
	assert.Equal(t, instructions.IMM(0xFF, 4), listing.Instructions[1].Operand2)
	assert.Equal(t, instructions.ASRR(registers.R1, registers.R2), listing.Instructions[2].Operand2)
	assert.Equal(t, instructions.RRX(registers.R1), listing.Instructions[3].Operand2)
	assert.Equal(t, instructions.REG(registers.PC), listing.Instructions[4].Operand2)
	assert.Equal(t, instructions.RegisterOffset(instructions.LSL(registers.R2, 3)), listing.Instructions[5].Offset)
	assert.Equal(t, instructions.HalfwordRegister(registers.R4), listing.Instructions[6].HalfwordOffset)
	assert.Equal(t, instructions.OpCode_MSR_FLG, listing.Instructions[7].OpCode)
	assert.Equal(t, instructions.SPSR, listing.Instructions[7].PSR)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"unknown key":        "instructions:\n  - {op: mov, bogus: 1}\n",
		"missing op":         "instructions:\n  - {rd: r0}\n",
		"unknown op":         "instructions:\n  - {op: bx}\n",
		"unknown condition":  "instructions:\n  - {op: b, cond: xx}\n",
		"unknown register":   "instructions:\n  - {op: mov, rd: r16}\n",
		"unknown flag":       "instructions:\n  - {op: ldr, flags: [sideways]}\n",
		"unknown psr":        "instructions:\n  - {op: mrs, psr: apsr}\n",
		"unknown cpu":        "cpu: armv8\ninstructions: []\n",
		"unknown policy":     "policy: lenient\ninstructions: []\n",
		"unaligned origin":   "origin: 2\ninstructions: []\n",
		"empty operand":      "instructions:\n  - {op: mov, op2: {}}\n",
		"not encodable":      "instructions:\n  - {op: mov, op2: {value: 0x101}}\n",
		"imm and reg":        "instructions:\n  - {op: mov, op2: {imm: 1, reg: r1}}\n",
		"amount and rs":      "instructions:\n  - {op: mov, op2: {reg: r1, shift: lsl, amount: 1, rs: r2}}\n",
		"immediate offset":   "instructions:\n  - {op: ldr, offset: {value: 4}}\n",
		"target and address": "instructions:\n  - {op: b, target: 1, address: 0}\n",
	}

	for name, text := range cases {
		_, err := Load(strings.NewReader(text))
		assert.ErrorIs(t, err, ErrInvalidListing, name)
	}
}

func TestLoad_ErrorReportsEntryIndex(t *testing.T) {
	_, err := Load(strings.NewReader("instructions:\n  - {op: mov}\n  - {op: mov}\n  - {op: mov, rd: r99}\n"))

	assert.ErrorIs(t, err, ErrInvalidListing)
	assert.ErrorIs(t, err, registers.ErrInvalidRegister)
	assert.ErrorContains(t, err, "entry #2")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte(program), 0o644))

	listing, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, listing.Instructions, 7)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
