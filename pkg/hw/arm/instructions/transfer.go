package instructions

import "github.com/Manu343726/armin/pkg/hw/arm/registers"

/*

Single Data Transfer (LDR, STR)

-----------------------------------------------------------------
|31  28|27 26| 25 | 24 | 23 | 22 | 21 | 20 |19  16|15  12|11   0|
-----------------------------------------------------------------
| Cond | 0 1 | I  | P  | U  | B  | W  | L  |  Rn  |  Rd  |Offset|
-----------------------------------------------------------------
I:   0 - Offset is immediate, 1 - Offset is register;
P:   0 - Post-indexing, 1 - Pre-indexing;
U:   0 - Down (substract offset), 1 - Up (add offset);
B:   0 - Word transfer, 1 - Byte transfer;
W:   0 - No write-back, 1 - Write-back address into base;
L:   0 - Store to memory, 1 - Load from memory.

Action: [Rn{+/-}Offset]=Rd or Rd=[Rn{+/-}Offset].
*/

const (
	Template_STR  uint32 = 0xE4000000
	Template_STRB uint32 = 0xE4400000
	Template_LDR  uint32 = 0xE4100000
	Template_LDRB uint32 = 0xE4500000
)

func singleDataTransfer(template uint32, rn, rd registers.Register, offset Offset, flags TransferFlags) Word {
	return Word(template | rn.Encode()<<16 | rd.Encode()<<12 | offset.Encode()&OffsetMask | uint32(flags)&TransferFlagsMask)
}

// [Rn +/- offset] = Rd (word)
func STR(rn, rd registers.Register, offset Offset, flags TransferFlags) Word {
	return singleDataTransfer(Template_STR, rn, rd, offset, flags)
}

// [Rn +/- offset] = Rd (byte)
func STRB(rn, rd registers.Register, offset Offset, flags TransferFlags) Word {
	return singleDataTransfer(Template_STRB, rn, rd, offset, flags)
}

// Rd = [Rn +/- offset] (word)
func LDR(rn, rd registers.Register, offset Offset, flags TransferFlags) Word {
	return singleDataTransfer(Template_LDR, rn, rd, offset, flags)
}

// Rd = [Rn +/- offset] (zero extended byte)
func LDRB(rn, rd registers.Register, offset Offset, flags TransferFlags) Word {
	return singleDataTransfer(Template_LDRB, rn, rd, offset, flags)
}
