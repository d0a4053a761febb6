package instructions

import "github.com/Manu343726/armin/pkg/hw/arm/registers"

/*

Halfword and Signed Data Transfer (LDRH/STRH/LDRSB/LDRSH)

-----------------------------------------------------------------
|31  28|27 25|24|23|22|21|20|19  16|15  12|11 8|7|6|5|4|3      0|
-----------------------------------------------------------------
| Cond | 000 |P |U |0 |W |L |  Rn  |  Rd  |0000|1|S|H|1|   Rm   |
-----------------------------------------------------------------

Halfword and Signed Data Transfer With Immediate Offset

-----------------------------------------------------------------
|31  28|27 25|24|23|22|21|20|19  16|15  12|11   8|7|6|5|4|3    0|
-----------------------------------------------------------------
| Cond | 000 |P |U |1 |W |L |  Rn  |  Rd  |OffsHi|1|S|H|1|OffsLo|
-----------------------------------------------------------------
P:   0 - Post-indexing, 1 - Pre-indexing;
U:   0 - Down (substract offset), 1 - Up (add offset);
W:   0 - No write-back, 1 - Write-back address into base;
L:   0 - Store to memory, 1 - Load from memory;
SH:
00 - SWP instruction;
01 - Unsigned halfwords;
10 - Signed byte;
11 - Signed halfwords;
*/

const (
	Template_STRH  uint32 = 0xE00000B0
	Template_LDRH  uint32 = 0xE01000B0
	Template_LDRSB uint32 = 0xE01000D0
	Template_LDRSH uint32 = 0xE01000F0
)

func halfwordDataTransfer(template uint32, rn, rd registers.Register, offset HalfwordOffset, flags HalfwordFlags) Word {
	return Word(template | rn.Encode()<<16 | rd.Encode()<<12 | offset.Encode()&HalfwordOffsetMask | uint32(flags)&HalfwordFlagsMask)
}

// [Rn +/- offset] = Rd (halfword)
func STRH(rn, rd registers.Register, offset HalfwordOffset, flags HalfwordFlags) Word {
	return halfwordDataTransfer(Template_STRH, rn, rd, offset, flags)
}

// Rd = [Rn +/- offset] (zero extended halfword)
func LDRH(rn, rd registers.Register, offset HalfwordOffset, flags HalfwordFlags) Word {
	return halfwordDataTransfer(Template_LDRH, rn, rd, offset, flags)
}

// Rd = [Rn +/- offset] (sign extended byte)
func LDRSB(rn, rd registers.Register, offset HalfwordOffset, flags HalfwordFlags) Word {
	return halfwordDataTransfer(Template_LDRSB, rn, rd, offset, flags)
}

// Rd = [Rn +/- offset] (sign extended halfword)
func LDRSH(rn, rd registers.Register, offset HalfwordOffset, flags HalfwordFlags) Word {
	return halfwordDataTransfer(Template_LDRSH, rn, rd, offset, flags)
}
