package instructions

import (
	"fmt"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/Manu343726/armin/pkg/utils"
)

// Form of a memory transfer offset
type OffsetKind uint

const (
	OffsetKind_Immediate OffsetKind = iota
	OffsetKind_Register

	TOTAL_OFFSET_KINDS
)

const (
	// Offset bits of single data transfers, including the I bit
	OffsetMask uint32 = 0x02000FFF
	// Offset bits of halfword and signed data transfers, including the immediate form bit (22)
	HalfwordOffsetMask uint32 = 0x00400F0F

	offsetImmediateBits         = 12
	halfwordImmediateBits       = 8
	halfwordImmediateBit        = 22
	halfwordImmediateHighPos    = 8
	halfwordImmediateNibbleBits = 4
)

// Offset of a single data transfer (LDR, STR, LDRB, STRB): a 12 bit immediate or a register
// shifted by a constant. The offset is added or substracted depending on the U flag
type Offset struct {
	Kind      OffsetKind
	Immediate uint32
	// Offset register. Must be a constant shift operand, see [RegisterOffset]
	Register Operand2
}

// Immediate single data transfer offset
func IMM12(imm uint32) Offset {
	return Offset{
		Kind:      OffsetKind_Immediate,
		Immediate: imm,
	}
}

// Register single data transfer offset. The operand must be built with [REG], [LSL], [LSR], [ASR],
// [ROR] or [RRX]: transfers do not support register controlled shifts
func RegisterOffset(op2 Operand2) Offset {
	return Offset{
		Kind:     OffsetKind_Register,
		Register: op2,
	}
}

// Returns the offset bits 11-0 and the I bit (bit 25).
//
// Note the I bit meaning is the opposite of data processing operands: it is set for register offsets.
// Offsets of unknown kind encode no bits
func (o Offset) Encode() uint32 {
	switch o.Kind {
	case OffsetKind_Immediate:
		return o.Immediate & utils.AllOnes[uint32](offsetImmediateBits)
	case OffsetKind_Register:
		return 1<<ImmediateBit | o.Register.Encode()&utils.AllOnes[uint32](offsetImmediateBits)
	}

	return 0
}

func (o Offset) checkKind() error {
	if o.Kind >= TOTAL_OFFSET_KINDS {
		return utils.MakeError(ErrInvalidOperand, "unknown offset kind %v", uint(o.Kind))
	}

	if o.Kind == OffsetKind_Register {
		return o.Register.checkKind()
	}

	return nil
}

func (o Offset) Validate() error {
	switch o.Kind {
	case OffsetKind_Immediate:
		if !utils.FitsUnsigned(o.Immediate, offsetImmediateBits) {
			return utils.MakeError(ErrInvalidOperand, "offset %v does not fit in %v bits", o.Immediate, offsetImmediateBits)
		}
		return nil
	case OffsetKind_Register:
		if o.Register.Kind != Operand2Kind_ShiftedRegister {
			return utils.MakeError(ErrInvalidOperand, "transfer offset must be a register shifted by a constant, got %v operand", o.Register.Kind)
		}
		return o.Register.Validate()
	}

	return utils.MakeError(ErrInvalidOperand, "unknown offset kind %v", uint(o.Kind))
}

func (o Offset) String() string {
	if o.Kind == OffsetKind_Immediate {
		return fmt.Sprintf("#%v", o.Immediate)
	}

	return o.Register.String()
}

// Offset of a halfword or signed data transfer (LDRH, STRH, LDRSB, LDRSH): an 8 bit immediate
// or a register, with no shift
type HalfwordOffset struct {
	Kind      OffsetKind
	Immediate uint32
	Rm        registers.Register
}

// Immediate halfword transfer offset. The immediate is split into two nibbles, the high one in
// bits 11-8 and the low one in bits 3-0
func HSTIMM(imm uint32) HalfwordOffset {
	return HalfwordOffset{
		Kind:      OffsetKind_Immediate,
		Immediate: imm,
	}
}

// Register halfword transfer offset
func HalfwordRegister(rm registers.Register) HalfwordOffset {
	return HalfwordOffset{
		Kind: OffsetKind_Register,
		Rm:   rm,
	}
}

// Returns the offset encoding, within [HalfwordOffsetMask]. Offsets of unknown kind encode no bits
func (o HalfwordOffset) Encode() uint32 {
	var result uint32
	view := utils.CreateBitView(&result)

	switch o.Kind {
	case OffsetKind_Immediate:
		view.SetBit(halfwordImmediateBit)
		view.Write(o.Immediate>>halfwordImmediateNibbleBits, halfwordImmediateHighPos, halfwordImmediateNibbleBits)
		view.Write(o.Immediate, 0, halfwordImmediateNibbleBits)
	case OffsetKind_Register:
		view.Write(o.Rm.Encode(), 0, registers.RegisterBits)
	}

	return result
}

func (o HalfwordOffset) checkKind() error {
	if o.Kind >= TOTAL_OFFSET_KINDS {
		return utils.MakeError(ErrInvalidOperand, "unknown halfword offset kind %v", uint(o.Kind))
	}

	return nil
}

func (o HalfwordOffset) Validate() error {
	switch o.Kind {
	case OffsetKind_Immediate:
		if !utils.FitsUnsigned(o.Immediate, halfwordImmediateBits) {
			return utils.MakeError(ErrInvalidOperand, "halfword offset %v does not fit in %v bits", o.Immediate, halfwordImmediateBits)
		}
		return nil
	case OffsetKind_Register:
		return validateRegister("rm", o.Rm)
	}

	return utils.MakeError(ErrInvalidOperand, "unknown offset kind %v", uint(o.Kind))
}

func (o HalfwordOffset) String() string {
	if o.Kind == OffsetKind_Immediate {
		return fmt.Sprintf("#%v", o.Immediate)
	}

	return o.Rm.String()
}
