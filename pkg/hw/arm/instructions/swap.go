package instructions

import "github.com/Manu343726/armin/pkg/hw/arm/registers"

/*

Single Data Swap (SWP)

-----------------------------------------------------------------
|31  28|27   23| 22 |21   20|19  16|15  12|11           4|3    0|
-----------------------------------------------------------------
| Cond | 00010 | B  |  0 0  |  Rn  |  Rd  |   00001001   |  Rm  |
-----------------------------------------------------------------
B:   0 - Swap word quantity, 1 - Swap byte quantity;
Rn:  Base register;
Rd:  Destination register;
Rm:  Source Register.
*/

const (
	Template_SWP  uint32 = 0xE1000090
	Template_SWPB uint32 = 0xE1400090
)

func swap(template uint32, rd, rm, rn registers.Register) Word {
	return Word(template | rn.Encode()<<16 | rd.Encode()<<12 | rm.Encode())
}

// Rd = [Rn], [Rn] = Rm, as a single atomic bus operation (word)
func SWP(rd, rm, rn registers.Register) Word {
	return swap(Template_SWP, rd, rm, rn)
}

// Rd = [Rn], [Rn] = Rm, as a single atomic bus operation (byte)
func SWPB(rd, rm, rn registers.Register) Word {
	return swap(Template_SWPB, rd, rm, rn)
}
