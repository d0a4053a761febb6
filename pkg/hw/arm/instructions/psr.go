package instructions

import (
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/Manu343726/armin/pkg/utils"
)

/*
  Program State Register (PSR) Transfer

MRS (transfer PSR contents to a register)
-----------------------------------------------------------------
|31  28|27            23| 22  |21    16|15  12|11              0|
-----------------------------------------------------------------
| Cond | 00010          | PSR | 001111 |  Rd  |  000000000000   |
-----------------------------------------------------------------

MSR (transfer register contents to PSR)
-----------------------------------------------------------------
|31  28|27            23| 22  |21        12|11          4|3    0|
-----------------------------------------------------------------
| Cond | 00010          | PSR | 1010011111 |  00000000   |  Rm  |
-----------------------------------------------------------------

MSR (transfer register contents or immediate to PSR flags only)
-----------------------------------------------------------------
|31  28|27 26| 25 |24 23| 22  |21        12|11                 0|
-----------------------------------------------------------------
| Cond | 00  | I  | 10  | PSR | 1010001111 |   Source Operand   |
-----------------------------------------------------------------
PSR: 0 - CPSR, 1 - SPSR;
I:   0 - Source Op is register, 1 - Source Op is immediate;
*/

// Selects the program status register accessed by PSR transfers
type PSR uint32

const (
	// Current program status register
	CPSR PSR = 0x00000000
	// Saved program status register of the current mode
	SPSR PSR = 0x00400000

	PSRMask uint32 = 0x00400000
)

const (
	Template_MRS     uint32 = 0xE10F0000
	Template_MSR     uint32 = 0xE129F000
	Template_MSR_FLG uint32 = 0xE128F000
)

func (p PSR) String() string {
	if uint32(p)&PSRMask != 0 {
		return "spsr"
	}

	return "cpsr"
}

// Parses a PSR name (cpsr, spsr)
func ParsePSR(name string) (PSR, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cpsr":
		return CPSR, nil
	case "spsr":
		return SPSR, nil
	}

	return CPSR, utils.MakeError(ErrInvalidOperand, "unknown program status register '%v'", name)
}

// Rd = PSR
func MRS(psr PSR, rd registers.Register) Word {
	return Word(Template_MRS | uint32(psr)&PSRMask | rd.Encode()<<12)
}

// PSR = Rm
func MSR(psr PSR, rm registers.Register) Word {
	return Word(Template_MSR | uint32(psr)&PSRMask | rm.Encode())
}

// PSR flags = Op2. The operand must be an immediate or a plain register ([REG]),
// other register forms are not valid sources
func MSRFlags(psr PSR, op2 Operand2) Word {
	return Word(Template_MSR_FLG | uint32(psr)&PSRMask | op2.Encode()&Operand2Mask)
}
