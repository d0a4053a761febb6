package instructions

import "github.com/Manu343726/armin/pkg/hw/arm/registers"

/*

Multiply and Multiply-Accumulate (MUL, MLA)

-----------------------------------------------------------------
|31  28|27     22| 21 | 20 |19  16|15  12|11   8|7      4|3    0|
-----------------------------------------------------------------
| Cond | 000000  | A  | S  |  Rd  |  Rn  |  Rs  |  1001  |  Rm  |
-----------------------------------------------------------------
A: 0 - Multiply only, 1 - Multiply and accumulate;
S: 1 - Set condition flags in CPSR, 0 - Do not;

Multiply Long and Multiply-Accumulate Long (MULL, MLAL)

-----------------------------------------------------------------
|31  28|27   23| 22 | 21 | 20 |19  16|15  12|11   8|7    4|3   0|
-----------------------------------------------------------------
| Cond | 00001 | U  | A  | S  | RdHi | RdLo |  Rs  | 1001 | Rm  |
-----------------------------------------------------------------
U: 1 - Signed, 0 - Unsigned;

Rd and Rm must differ, and RdHi, RdLo and Rm must be distinct registers. PC is not a valid
operand. The encoders do not check either constraint.
*/

const (
	Template_MUL  uint32 = 0xE0000090
	Template_MULS uint32 = 0xE0100090
	Template_MLA  uint32 = 0xE0200090
	Template_MLAS uint32 = 0xE0300090

	Template_UMULL  uint32 = 0xE0800090
	Template_UMULLS uint32 = 0xE0900090
	Template_UMLAL  uint32 = 0xE0A00090
	Template_UMLALS uint32 = 0xE0B00090
	Template_SMULL  uint32 = 0xE0C00090
	Template_SMULLS uint32 = 0xE0D00090
	Template_SMLAL  uint32 = 0xE0E00090
	Template_SMLALS uint32 = 0xE0F00090
)

func multiplyWord(template uint32, rd, rn, rs, rm registers.Register) Word {
	return Word(template | rd.Encode()<<16 | rn.Encode()<<12 | rs.Encode()<<8 | rm.Encode())
}

// Rd = Rm * Rs. The Rn field is encoded as zero
func MUL(rd, rm, rs registers.Register) Word {
	return multiplyWord(Template_MUL, rd, registers.R0, rs, rm)
}

func MULS(rd, rm, rs registers.Register) Word {
	return multiplyWord(Template_MULS, rd, registers.R0, rs, rm)
}

// Rd = Rm * Rs + Rn
func MLA(rd, rm, rs, rn registers.Register) Word {
	return multiplyWord(Template_MLA, rd, rn, rs, rm)
}

func MLAS(rd, rm, rs, rn registers.Register) Word {
	return multiplyWord(Template_MLAS, rd, rn, rs, rm)
}

// RdHi:RdLo = Rm * Rs (unsigned)
func UMULL(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_UMULL, rdHi, rdLo, rs, rm)
}

func UMULLS(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_UMULLS, rdHi, rdLo, rs, rm)
}

// RdHi:RdLo += Rm * Rs (unsigned)
func UMLAL(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_UMLAL, rdHi, rdLo, rs, rm)
}

func UMLALS(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_UMLALS, rdHi, rdLo, rs, rm)
}

// RdHi:RdLo = Rm * Rs (signed)
func SMULL(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_SMULL, rdHi, rdLo, rs, rm)
}

func SMULLS(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_SMULLS, rdHi, rdLo, rs, rm)
}

// RdHi:RdLo += Rm * Rs (signed)
func SMLAL(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_SMLAL, rdHi, rdLo, rs, rm)
}

func SMLALS(rdHi, rdLo, rm, rs registers.Register) Word {
	return multiplyWord(Template_SMLALS, rdHi, rdLo, rs, rm)
}
