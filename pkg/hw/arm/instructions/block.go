package instructions

import "github.com/Manu343726/armin/pkg/hw/arm/registers"

/*

Block Data Transfer (LDM, STM)

-----------------------------------------------------------------
|31  28|27 25| 24 | 23 | 22 | 21 | 20 |19  16|15               0|
-----------------------------------------------------------------
| Cond | 100 | P  | U  | S  | W  | L  |  Rn  |  Register List   |
-----------------------------------------------------------------
P:   0 - Post-indexing, 1 - Pre-indexing;
U:   0 - Down (substract offset), 1 - Up (add offset);
S:   0 - Do not force user mode, 1 - Force user mode;
W:   0 - No write-back, 1 - Write-back address into base;
L:   0 - Store to memory, 1 - Load from memory;
*/

const (
	Template_STM uint32 = 0xE8000000
	Template_LDM uint32 = 0xE8100000

	Template_STMIB uint32 = 0xE9A00000
	Template_STMIA uint32 = 0xE8A00000
	Template_STMDB uint32 = 0xE9200000
	Template_STMDA uint32 = 0xE8200000
	Template_LDMIB uint32 = 0xE9B00000
	Template_LDMIA uint32 = 0xE8B00000
	Template_LDMDB uint32 = 0xE9300000
	Template_LDMDA uint32 = 0xE8300000

	RegisterListMask uint32 = 0x0000FFFF
)

func blockDataTransfer(template uint32, rn registers.Register, flags BlockFlags, list registers.List) Word {
	return Word(template | rn.Encode()<<16 | uint32(list)&RegisterListMask | uint32(flags)&BlockFlagsMask)
}

// Stores the listed registers starting at the address in Rn
func STM(rn registers.Register, flags BlockFlags, list registers.List) Word {
	return blockDataTransfer(Template_STM, rn, flags, list)
}

// Loads the listed registers starting at the address in Rn
func LDM(rn registers.Register, flags BlockFlags, list registers.List) Word {
	return blockDataTransfer(Template_LDM, rn, flags, list)
}

// Addressing mode shortcuts. All of them write the final address back into Rn

// Store, increment before
func STMIB(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_STMIB, rn, 0, list)
}

// Store, increment after
func STMIA(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_STMIA, rn, 0, list)
}

// Store, decrement before
func STMDB(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_STMDB, rn, 0, list)
}

// Store, decrement after
func STMDA(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_STMDA, rn, 0, list)
}

// Load, increment before
func LDMIB(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_LDMIB, rn, 0, list)
}

// Load, increment after
func LDMIA(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_LDMIA, rn, 0, list)
}

// Load, decrement before
func LDMDB(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_LDMDB, rn, 0, list)
}

// Load, decrement after
func LDMDA(rn registers.Register, list registers.List) Word {
	return blockDataTransfer(Template_LDMDA, rn, 0, list)
}

// Stack addressing aliases: full/empty, descending/ascending stacks

func STMFD(rn registers.Register, list registers.List) Word { return STMDB(rn, list) }
func LDMFD(rn registers.Register, list registers.List) Word { return LDMIA(rn, list) }
func STMED(rn registers.Register, list registers.List) Word { return STMDA(rn, list) }
func LDMED(rn registers.Register, list registers.List) Word { return LDMIB(rn, list) }
func STMFA(rn registers.Register, list registers.List) Word { return STMIB(rn, list) }
func LDMFA(rn registers.Register, list registers.List) Word { return LDMDA(rn, list) }
func STMEA(rn registers.Register, list registers.List) Word { return STMIA(rn, list) }
func LDMEA(rn registers.Register, list registers.List) Word { return LDMDB(rn, list) }

// Pushes the listed registers into the full descending stack pointed by SP
func PUSH(list registers.List) Word {
	return STMFD(registers.SP, list)
}

// Pops the listed registers from the full descending stack pointed by SP
func POP(list registers.List) Word {
	return LDMFD(registers.SP, list)
}
