package instructions

import "github.com/Manu343726/armin/pkg/hw/arm/registers"

/*
   Data Processing

-----------------------------------------------------------------
|31  28|27  26| 25 |24    21| 20 |19  16|15  12|11             0|
-----------------------------------------------------------------
| Cond |  00  | I  | OpCode | S  |  Rn  |  Rd  |    Operand2    |
-----------------------------------------------------------------
I: 1 - Op2 is immediate, 0 - Op2 is register;
S: 1 - Set condition flags in CPSR, 0 - Do not;
OpCodes:
0000 = AND - Rd = Rn & Op2
0001 = EOR - Rd = Rn ^ Op2
0010 = SUB - Rd = Rn - Op2
0011 = RSB - Rd = Op2 - Rn
0100 = ADD - Rd = Rn + Op2
0101 = ADC - Rd = Rn + Op2 + C
0110 = SBC - Rd = Rn - Op2 + C - 1
0111 = RSC - Rd = Op2 - Rn + C - 1
1000 = TST - Set CPSR on Rn & Op2
1001 = TEQ - Set CPSR on Rn ^ Op2
1010 = CMP - Set CPSR on Rn - Op2
1011 = CMN - Set CPSR on Rn + Op2
1100 = ORR - Rd = Rn | Op2
1101 = MOV - Rd = Op2
1110 = BIC - Rd = Rn & (~Op2)
1111 = MVN - Rd = ~Op2
*/

const (
	Template_AND uint32 = 0xE0000000
	Template_EOR uint32 = 0xE0200000
	Template_SUB uint32 = 0xE0400000
	Template_RSB uint32 = 0xE0600000
	Template_ADD uint32 = 0xE0800000
	Template_ADC uint32 = 0xE0A00000
	Template_SBC uint32 = 0xE0C00000
	Template_RSC uint32 = 0xE0E00000
	Template_TST uint32 = 0xE1100000
	Template_TEQ uint32 = 0xE1300000
	Template_CMP uint32 = 0xE1500000
	Template_CMN uint32 = 0xE1700000
	Template_ORR uint32 = 0xE1800000
	Template_MOV uint32 = 0xE1A00000
	Template_BIC uint32 = 0xE1C00000
	Template_MVN uint32 = 0xE1E00000

	// Set condition flags bit
	SetFlagsBit uint32 = 0x00100000
)

func dataProcessing(template uint32, rd registers.Register, rn registers.Register, op2 Operand2) Word {
	return Word(template | rn.Encode()<<16 | rd.Encode()<<12 | op2.Encode()&Operand2Mask)
}

// Rd = Rn & Op2
func AND(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_AND, rd, rn, op2)
}

// Rd = Rn ^ Op2
func EOR(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_EOR, rd, rn, op2)
}

// Rd = Rn - Op2
func SUB(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_SUB, rd, rn, op2)
}

// Rd = Op2 - Rn
func RSB(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_RSB, rd, rn, op2)
}

// Rd = Rn + Op2
func ADD(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_ADD, rd, rn, op2)
}

// Rd = Rn + Op2 + C
func ADC(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_ADC, rd, rn, op2)
}

// Rd = Rn - Op2 + C - 1
func SBC(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_SBC, rd, rn, op2)
}

// Rd = Op2 - Rn + C - 1
func RSC(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_RSC, rd, rn, op2)
}

// Sets the condition flags on Rn & Op2. Comparisons always set the flags and have no destination
func TST(rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_TST, registers.R0, rn, op2)
}

// Sets the condition flags on Rn ^ Op2
func TEQ(rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_TEQ, registers.R0, rn, op2)
}

// Sets the condition flags on Rn - Op2
func CMP(rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_CMP, registers.R0, rn, op2)
}

// Sets the condition flags on Rn + Op2
func CMN(rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_CMN, registers.R0, rn, op2)
}

// Rd = Rn | Op2
func ORR(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_ORR, rd, rn, op2)
}

// Rd = Op2
func MOV(rd registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_MOV, rd, registers.R0, op2)
}

// Rd = Rn & ~Op2
func BIC(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_BIC, rd, rn, op2)
}

// Rd = ~Op2
func MVN(rd registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_MVN, rd, registers.R0, op2)
}

// Flag setting variants

func ANDS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_AND|SetFlagsBit, rd, rn, op2)
}

func EORS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_EOR|SetFlagsBit, rd, rn, op2)
}

func SUBS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_SUB|SetFlagsBit, rd, rn, op2)
}

func RSBS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_RSB|SetFlagsBit, rd, rn, op2)
}

func ADDS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_ADD|SetFlagsBit, rd, rn, op2)
}

func ADCS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_ADC|SetFlagsBit, rd, rn, op2)
}

func SBCS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_SBC|SetFlagsBit, rd, rn, op2)
}

func RSCS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_RSC|SetFlagsBit, rd, rn, op2)
}

// Same as [TST], comparisons have no non flag setting form
func TSTS(rn registers.Register, op2 Operand2) Word {
	return TST(rn, op2)
}

// Same as [TEQ]
func TEQS(rn registers.Register, op2 Operand2) Word {
	return TEQ(rn, op2)
}

// Same as [CMP]
func CMPS(rn registers.Register, op2 Operand2) Word {
	return CMP(rn, op2)
}

// Same as [CMN]
func CMNS(rn registers.Register, op2 Operand2) Word {
	return CMN(rn, op2)
}

func ORRS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_ORR|SetFlagsBit, rd, rn, op2)
}

func MOVS(rd registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_MOV|SetFlagsBit, rd, registers.R0, op2)
}

func BICS(rd, rn registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_BIC|SetFlagsBit, rd, rn, op2)
}

func MVNS(rd registers.Register, op2 Operand2) Word {
	return dataProcessing(Template_MVN|SetFlagsBit, rd, registers.R0, op2)
}
