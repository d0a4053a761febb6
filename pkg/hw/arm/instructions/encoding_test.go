package instructions

import (
	"testing"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/stretchr/testify/assert"
)

func TestBranch(t *testing.T) {
	assert.Equal(t, Word(0xEA000000), B(0))
	assert.Equal(t, Word(0xEB000000), BL(0))
	assert.Equal(t, Word(0xEAFFFFFE), B(-2))
	assert.Equal(t, Word(0xEB7FFFFF), BL(1<<23-1))
}

func TestBranch_OffsetWrapsTo24Bits(t *testing.T) {
	assert.Equal(t, B(0), B(1<<24))
	assert.Equal(t, B(-1), B(1<<24-1))
}

func TestBranchOffset(t *testing.T) {
	assert.Equal(t, int32(-2), BranchOffset(0x8000, 0x8000))
	assert.Equal(t, int32(0), BranchOffset(0x8000, 0x8008))
	assert.Equal(t, int32(2), BranchOffset(0x8000, 0x8010))
	assert.Equal(t, Word(0xEAFFFFFE), B(BranchOffset(0x100, 0x100)))
}

func TestDataProcessing(t *testing.T) {
	assert.Equal(t, Word(0xE3A00005), MOV(registers.R0, IMM(5, 0)))
	assert.Equal(t, Word(0xE0821003), ADD(registers.R1, registers.R2, REG(registers.R3)))
	assert.Equal(t, Word(0xE2500001), SUBS(registers.R0, registers.R0, IMM(1, 0)))
	assert.Equal(t, Word(0xE3500000), CMP(registers.R0, IMM(0, 0)))
	assert.Equal(t, Word(0xE3E00000), MVN(registers.R0, IMM(0, 0)))
	assert.Equal(t, Word(0xE1A0F00E), MOV(registers.PC, REG(registers.LR)))
	assert.Equal(t, Word(0xE1A00101), MOV(registers.R0, LSL(registers.R1, 2)))
	assert.Equal(t, Word(0xE1A001C1), MOV(registers.R0, ASR(registers.R1, 3)))
	assert.Equal(t, Word(0xE1A00211), MOV(registers.R0, LSLR(registers.R1, registers.R2)))
	assert.Equal(t, Word(0xE1A00061), MOV(registers.R0, RRX(registers.R1)))
}

func TestDataProcessing_CompareOpcodesAlwaysSetFlags(t *testing.T) {
	for _, compare := range []func(registers.Register, Operand2) Word{TST, TEQ, CMP, CMN} {
		word := compare(registers.R3, REG(registers.R4))

		assert.True(t, word.IsSet(20))
		assert.Equal(t, uint32(0), word.Bits(12, 4))
		assert.Equal(t, uint32(3), word.Bits(16, 4))
	}

	assert.Equal(t, TST(registers.R1, IMM(1, 0)), TSTS(registers.R1, IMM(1, 0)))
	assert.Equal(t, TEQ(registers.R1, IMM(1, 0)), TEQS(registers.R1, IMM(1, 0)))
	assert.Equal(t, CMP(registers.R1, IMM(1, 0)), CMPS(registers.R1, IMM(1, 0)))
	assert.Equal(t, CMN(registers.R1, IMM(1, 0)), CMNS(registers.R1, IMM(1, 0)))
}

func TestDataProcessing_FlagSettingVariants(t *testing.T) {
	pairs := [][2]func(registers.Register, registers.Register, Operand2) Word{
		{AND, ANDS}, {EOR, EORS}, {SUB, SUBS}, {RSB, RSBS},
		{ADD, ADDS}, {ADC, ADCS}, {SBC, SBCS}, {RSC, RSCS},
		{ORR, ORRS}, {BIC, BICS},
	}

	for _, pair := range pairs {
		plain := pair[0](registers.R1, registers.R2, REG(registers.R3))
		flags := pair[1](registers.R1, registers.R2, REG(registers.R3))

		assert.False(t, plain.IsSet(20))
		assert.Equal(t, uint32(plain)|SetFlagsBit, uint32(flags))
	}

	assert.Equal(t, uint32(MOV(registers.R1, IMM(1, 0)))|SetFlagsBit, uint32(MOVS(registers.R1, IMM(1, 0))))
	assert.Equal(t, uint32(MVN(registers.R1, IMM(1, 0)))|SetFlagsBit, uint32(MVNS(registers.R1, IMM(1, 0))))
}

func TestDataProcessing_RegistersWrapTo4Bits(t *testing.T) {
	assert.Equal(t, AND(registers.R0, registers.R0, REG(registers.R0)), AND(registers.Register(16), registers.R0, REG(registers.R0)))
	assert.Equal(t, ADD(registers.R1, registers.R2, REG(registers.R3)), ADD(registers.Register(17), registers.Register(18), REG(registers.Register(19))))
}

func TestDataProcessing_DestinationField(t *testing.T) {
	for i := range registers.TOTAL_REGISTERS {
		rd := registers.Register(i)
		word := ORR(rd, registers.R0, IMM(0, 0))

		assert.Equal(t, uint32(i), word.Bits(12, 4))
		assert.Equal(t, uint32(ORR(registers.R0, registers.R0, IMM(0, 0))), uint32(word)&^0x0000F000)
	}
}

func TestCondition(t *testing.T) {
	word := ADD(registers.R0, registers.R1, IMM(1, 0))

	assert.Equal(t, AL, word.Condition())
	assert.Equal(t, uint32(0x0), word.If(EQ).Bits(28, 4))
	assert.Equal(t, Word(0x02810001), word.If(EQ))
	assert.Equal(t, EQ, word.If(EQ).Condition())
	assert.Equal(t, word, word.If(NE).If(AL))
}

func TestCondition_EncodersDefaultToAlways(t *testing.T) {
	words := []Word{
		B(0), MOV(registers.R0, IMM(0, 0)), MRS(CPSR, registers.R0), MUL(registers.R0, registers.R1, registers.R2),
		UMULL(registers.R0, registers.R1, registers.R2, registers.R3), LDR(registers.R0, registers.R1, IMM12(0), 0),
		LDRH(registers.R0, registers.R1, HSTIMM(0), 0), PUSH(registers.BLR), SWP(registers.R0, registers.R1, registers.R2), SWI(0),
	}

	for _, word := range words {
		assert.Equal(t, AL, word.Condition(), "%v", word)
	}
}

func TestPSRTransfer(t *testing.T) {
	assert.Equal(t, Word(0xE10F0000), MRS(CPSR, registers.R0))
	assert.Equal(t, Word(0xE14F1000), MRS(SPSR, registers.R1))
	assert.Equal(t, Word(0xE129F000), MSR(CPSR, registers.R0))
	assert.Equal(t, Word(0xE169F003), MSR(SPSR, registers.R3))
	assert.Equal(t, Word(0xE328F20F), MSRFlags(CPSR, IMM(0xF, 2)))
	assert.Equal(t, Word(0xE128F001), MSRFlags(CPSR, REG(registers.R1)))
}

func TestMultiply(t *testing.T) {
	word := MUL(registers.R3, registers.R1, registers.R2)

	assert.Equal(t, Word(0xE0030291), word)
	assert.Equal(t, uint32(3), word.Bits(16, 4))
	assert.Equal(t, uint32(0), word.Bits(12, 4))
	assert.Equal(t, uint32(2), word.Bits(8, 4))
	assert.Equal(t, uint32(0x9), word.Bits(4, 4))
	assert.Equal(t, uint32(1), word.Bits(0, 4))

	assert.Equal(t, Word(0xE0130291), MULS(registers.R3, registers.R1, registers.R2))
	assert.Equal(t, Word(0xE0203291), MLA(registers.R0, registers.R1, registers.R2, registers.R3))
	assert.Equal(t, Word(0xE0303291), MLAS(registers.R0, registers.R1, registers.R2, registers.R3))
}

func TestMultiplyLong(t *testing.T) {
	assert.Equal(t, Word(0xE0810392), UMULL(registers.R1, registers.R0, registers.R2, registers.R3))
	assert.Equal(t, Word(0xE0910392), UMULLS(registers.R1, registers.R0, registers.R2, registers.R3))
	assert.Equal(t, Word(0xE0A10392), UMLAL(registers.R1, registers.R0, registers.R2, registers.R3))
	assert.Equal(t, Word(0xE0C10392), SMULL(registers.R1, registers.R0, registers.R2, registers.R3))
	assert.Equal(t, Word(0xE0E10392), SMLAL(registers.R1, registers.R0, registers.R2, registers.R3))
	assert.Equal(t, Word(0xE0F10392), SMLALS(registers.R1, registers.R0, registers.R2, registers.R3))

	word := SMULLS(registers.R5, registers.R4, registers.R6, registers.R7)
	assert.True(t, word.IsSet(22))
	assert.False(t, word.IsSet(21))
	assert.True(t, word.IsSet(20))
	assert.Equal(t, uint32(5), word.Bits(16, 4))
	assert.Equal(t, uint32(4), word.Bits(12, 4))
	assert.Equal(t, uint32(7), word.Bits(8, 4))
	assert.Equal(t, uint32(6), word.Bits(0, 4))
}

func TestSingleDataTransfer(t *testing.T) {
	assert.Equal(t, Word(0xE5910004), LDR(registers.R1, registers.R0, IMM12(4), STP|STU))
	assert.Equal(t, Word(0xE5010004), STR(registers.R1, registers.R0, IMM12(4), STP))
	assert.Equal(t, Word(0xE4910004), LDR(registers.R1, registers.R0, IMM12(4), STU))
	assert.Equal(t, Word(0xE5B10004), LDR(registers.R1, registers.R0, IMM12(4), STP|STU|STW))
	assert.Equal(t, Word(0xE5D10000), LDRB(registers.R1, registers.R0, IMM12(0), STP|STU))
	assert.Equal(t, Word(0xE5C10000), STRB(registers.R1, registers.R0, IMM12(0), STP|STU))
	assert.Equal(t, Word(0xE7910102), LDR(registers.R1, registers.R0, RegisterOffset(LSL(registers.R2, 2)), STP|STU))
}

func TestSingleDataTransfer_IgnoresForeignFlagBits(t *testing.T) {
	word := LDR(registers.R1, registers.R0, IMM12(4), STP|STU|TransferFlags(0xFFFFFFFF))

	assert.Equal(t, LDR(registers.R1, registers.R0, IMM12(4), STP|STU|STW), word)
}

func TestHalfwordDataTransfer(t *testing.T) {
	assert.Equal(t, Word(0xE1D100B2), LDRH(registers.R1, registers.R0, HSTIMM(2), HSTP|HSTU))
	assert.Equal(t, Word(0xE1C100B0), STRH(registers.R1, registers.R0, HSTIMM(0), HSTP|HSTU))
	assert.Equal(t, Word(0xE19100F2), LDRSH(registers.R1, registers.R0, HalfwordRegister(registers.R2), HSTP|HSTU))
	assert.Equal(t, Word(0xE1D100D1), LDRSB(registers.R1, registers.R0, HSTIMM(1), HSTP|HSTU))
}

func TestHalfwordImmediateIsSplitInNibbles(t *testing.T) {
	assert.Equal(t, uint32(0x00400102), HSTIMM(0x12).Encode())
	assert.Equal(t, uint32(0x00400F0F), HSTIMM(0xFF).Encode())
	assert.Equal(t, uint32(0x00400000), HSTIMM(0x100).Encode())
	assert.Equal(t, uint32(0x00000003), HalfwordRegister(registers.R3).Encode())
}

func TestBlockDataTransfer(t *testing.T) {
	assert.Equal(t, Word(0xE8AD0003), STMIA(registers.SP, registers.BR0|registers.BR1))
	assert.Equal(t, Word(0xE92D4010), PUSH(registers.BR4|registers.BLR))
	assert.Equal(t, Word(0xE8BD8010), POP(registers.BR4|registers.BPC))
	assert.Equal(t, Word(0xE8900002), LDM(registers.R0, MTU, registers.BR1))
	assert.Equal(t, Word(0xE9D08000), LDM(registers.R0, MTP|MTU|MTS, registers.BPC))
	assert.Equal(t, Word(0xE8900002), LDM(registers.R0, MTU|BlockFlags(0x0E000000), registers.BR1))
}

func TestBlockDataTransfer_Shortcuts(t *testing.T) {
	list := registers.BR0 | registers.BR2

	assert.Equal(t, STM(registers.R1, MTP|MTU|MTW, list), STMIB(registers.R1, list))
	assert.Equal(t, STM(registers.R1, MTU|MTW, list), STMIA(registers.R1, list))
	assert.Equal(t, STM(registers.R1, MTP|MTW, list), STMDB(registers.R1, list))
	assert.Equal(t, STM(registers.R1, MTW, list), STMDA(registers.R1, list))
	assert.Equal(t, LDM(registers.R1, MTP|MTU|MTW, list), LDMIB(registers.R1, list))
	assert.Equal(t, LDM(registers.R1, MTU|MTW, list), LDMIA(registers.R1, list))
	assert.Equal(t, LDM(registers.R1, MTP|MTW, list), LDMDB(registers.R1, list))
	assert.Equal(t, LDM(registers.R1, MTW, list), LDMDA(registers.R1, list))
}

func TestBlockDataTransfer_StackAliases(t *testing.T) {
	list := registers.BR0 | registers.BLR

	assert.Equal(t, STMDB(registers.SP, list), STMFD(registers.SP, list))
	assert.Equal(t, LDMIA(registers.SP, list), LDMFD(registers.SP, list))
	assert.Equal(t, STMIA(registers.SP, list), STMEA(registers.SP, list))
	assert.Equal(t, LDMDB(registers.SP, list), LDMEA(registers.SP, list))
	assert.Equal(t, STMIB(registers.SP, list), STMFA(registers.SP, list))
	assert.Equal(t, LDMDA(registers.SP, list), LDMFA(registers.SP, list))
	assert.Equal(t, STMDA(registers.SP, list), STMED(registers.SP, list))
	assert.Equal(t, LDMIB(registers.SP, list), LDMED(registers.SP, list))
	assert.Equal(t, STMFD(registers.SP, list), PUSH(list))
	assert.Equal(t, LDMFD(registers.SP, list), POP(list))
}

func TestSwap(t *testing.T) {
	assert.Equal(t, Word(0xE1020091), SWP(registers.R0, registers.R1, registers.R2))
	assert.Equal(t, Word(0xE1420091), SWPB(registers.R0, registers.R1, registers.R2))
}

func TestSoftwareInterrupt(t *testing.T) {
	assert.Equal(t, Word(0xEF000000), SWI(0))
	assert.Equal(t, Word(0xEF123456), SWI(0x123456))
	assert.Equal(t, Word(0xEF000000), SWI(0x1000000))
}
