package instructions

import "strings"

// Addressing flags of single data transfers (LDR, STR, LDRB, STRB)
type TransferFlags uint32

const (
	// Pre-indexing: the offset is applied before the transfer
	STP TransferFlags = 0x01000000
	// Up: the offset is added to the base
	STU TransferFlags = 0x00800000
	// Write the effective address back into the base register
	STW TransferFlags = 0x00200000

	TransferFlagsMask uint32 = 0x01A00000
)

// Addressing flags of halfword and signed data transfers (LDRH, STRH, LDRSB, LDRSH)
type HalfwordFlags uint32

const (
	// Pre-indexing: the offset is applied before the transfer
	HSTP HalfwordFlags = 0x01000000
	// Up: the offset is added to the base
	HSTU HalfwordFlags = 0x00800000
	// Write the effective address back into the base register
	HSTW HalfwordFlags = 0x00200000

	HalfwordFlagsMask uint32 = 0x01A00000
)

// Addressing flags of block data transfers (LDM, STM)
type BlockFlags uint32

const (
	// Pre-indexing: the base is incremented/decremented before each transfer
	MTP BlockFlags = 0x01000000
	// Up: addresses increment from the base
	MTU BlockFlags = 0x00800000
	// Transfer user bank registers (or restore CPSR on LDM with PC in the list)
	MTS BlockFlags = 0x00400000
	// Write the final address back into the base register
	MTW BlockFlags = 0x00200000

	BlockFlagsMask uint32 = 0x01E00000
)

// Class independent description of a transfer addressing mode, converted into the
// flag bits of each transfer class
type AddressingMode struct {
	PreIndex  bool
	Up        bool
	WriteBack bool
	ForceUser bool
}

// Returns the single data transfer flags of the addressing mode.
//
// Post-indexed transfers always write back: the W bit of a post-indexed transfer selects the user mode
// (LDRT/STRT) variant instead, so it is set only when ForceUser is
func (m AddressingMode) Transfer() TransferFlags {
	var flags TransferFlags

	if m.PreIndex {
		flags |= STP
		if m.WriteBack {
			flags |= STW
		}
	} else if m.ForceUser {
		flags |= STW
	}

	if m.Up {
		flags |= STU
	}

	return flags
}

// Returns the halfword transfer flags of the addressing mode. Write-back only applies to pre-indexed transfers
func (m AddressingMode) Halfword() HalfwordFlags {
	var flags HalfwordFlags

	if m.PreIndex {
		flags |= HSTP
		if m.WriteBack {
			flags |= HSTW
		}
	}

	if m.Up {
		flags |= HSTU
	}

	return flags
}

// Returns the block transfer flags of the addressing mode
func (m AddressingMode) Block() BlockFlags {
	var flags BlockFlags

	if m.PreIndex {
		flags |= MTP
	}
	if m.Up {
		flags |= MTU
	}
	if m.ForceUser {
		flags |= MTS
	}
	if m.WriteBack {
		flags |= MTW
	}

	return flags
}

// Names of the addressing mode flags in listings
const (
	AddressingFlag_PreIndex  = "pre"
	AddressingFlag_Up        = "up"
	AddressingFlag_WriteBack = "wb"
	AddressingFlag_ForceUser = "user"
)

// Builds an addressing mode out of a set of flag names (pre, up, wb, user)
func ParseAddressingMode(flags []string) (AddressingMode, error) {
	var mode AddressingMode

	for _, flag := range flags {
		switch strings.ToLower(strings.TrimSpace(flag)) {
		case AddressingFlag_PreIndex:
			mode.PreIndex = true
		case AddressingFlag_Up:
			mode.Up = true
		case AddressingFlag_WriteBack:
			mode.WriteBack = true
		case AddressingFlag_ForceUser:
			mode.ForceUser = true
		default:
			return AddressingMode{}, makeOperandError("unknown addressing flag '%v'", flag)
		}
	}

	return mode, nil
}

func (m AddressingMode) String() string {
	names := make([]string, 0, 4)

	if m.PreIndex {
		names = append(names, AddressingFlag_PreIndex)
	}
	if m.Up {
		names = append(names, AddressingFlag_Up)
	}
	if m.WriteBack {
		names = append(names, AddressingFlag_WriteBack)
	}
	if m.ForceUser {
		names = append(names, AddressingFlag_ForceUser)
	}

	return strings.Join(names, "|")
}
