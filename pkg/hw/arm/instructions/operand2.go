package instructions

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/Manu343726/armin/pkg/utils"
)

// Barrel shifter operation applied to a register operand
type ShiftType uint32

const (
	ShiftType_LSL ShiftType = iota
	ShiftType_LSR
	ShiftType_ASR
	ShiftType_ROR

	TOTAL_SHIFT_TYPES
)

var shiftTypeNames = [TOTAL_SHIFT_TYPES]string{"lsl", "lsr", "asr", "ror"}

func (s ShiftType) String() string {
	if s < TOTAL_SHIFT_TYPES {
		return shiftTypeNames[s]
	}

	return fmt.Sprintf("ShiftType(%d)", uint32(s))
}

// Parses a shift type name (lsl, LSR, ...)
func ParseShiftType(name string) (ShiftType, error) {
	for i, shiftName := range shiftTypeNames {
		if strings.EqualFold(name, shiftName) {
			return ShiftType(i), nil
		}
	}

	return 0, utils.MakeError(ErrInvalidOperand, "unknown shift type '%v'", name)
}

// Operand2 encoding form
type Operand2Kind uint

const (
	// 8 bit immediate rotated right by twice a 4 bit rotation
	Operand2Kind_Immediate Operand2Kind = iota
	// Register shifted by a 5 bit constant
	Operand2Kind_ShiftedRegister
	// Register shifted by the value of another register
	Operand2Kind_RegisterShiftedRegister

	TOTAL_OPERAND2_KINDS
)

func (k Operand2Kind) String() string {
	switch k {
	case Operand2Kind_Immediate:
		return "Immediate"
	case Operand2Kind_ShiftedRegister:
		return "ShiftedRegister"
	case Operand2Kind_RegisterShiftedRegister:
		return "RegisterShiftedRegister"
	}

	return fmt.Sprintf("Operand2Kind(%d)", uint(k))
}

// Field layout of the operand2 encodings
const (
	// Bits 11-0 plus the I bit
	Operand2Mask uint32 = 0x02000FFF

	ImmediateBit = 25

	immediateValueBits     = 8
	immediateRotateBits    = 4
	immediateRotatePos     = 8
	shiftAmountBits        = 5
	shiftAmountPos         = 7
	shiftTypeBits          = 2
	shiftTypePos           = 5
	registerShiftMarkerPos = 4
	shiftRegisterPos       = 8
)

// The flexible second operand of data processing instructions.
//
// Operand2 values are built with the [IMM], [LSL], [LSR], [ASR], [ROR], [LSLR], [LSRR], [ASRR], [RORR],
// [REG] and [RRX] constructors. Fields are stored as given, and truncated to their widths by [Operand2.Encode]
type Operand2 struct {
	Kind Operand2Kind

	// Immediate form
	Immediate uint32
	Rotate    uint32

	// Register forms
	Rm    registers.Register
	Shift ShiftType
	// Shift amount of the constant shift form
	Amount uint32
	// Shift amount register of the register shift form
	Rs registers.Register
}

// Immediate operand equal to imm rotated right by 2*rot bits.
// The rotation is not searched, see [EncodeImmediate] for that
func IMM(imm uint32, rot uint32) Operand2 {
	return Operand2{
		Kind:      Operand2Kind_Immediate,
		Immediate: imm,
		Rotate:    rot,
	}
}

func shiftedRegister(rm registers.Register, shift ShiftType, amount uint32) Operand2 {
	return Operand2{
		Kind:   Operand2Kind_ShiftedRegister,
		Rm:     rm,
		Shift:  shift,
		Amount: amount,
	}
}

func registerShiftedRegister(rm registers.Register, shift ShiftType, rs registers.Register) Operand2 {
	return Operand2{
		Kind:  Operand2Kind_RegisterShiftedRegister,
		Rm:    rm,
		Shift: shift,
		Rs:    rs,
	}
}

// Register rm shifted left by a constant
func LSL(rm registers.Register, amount uint32) Operand2 {
	return shiftedRegister(rm, ShiftType_LSL, amount)
}

// Register rm logically shifted right by a constant
func LSR(rm registers.Register, amount uint32) Operand2 {
	return shiftedRegister(rm, ShiftType_LSR, amount)
}

// Register rm arithmetically shifted right by a constant
func ASR(rm registers.Register, amount uint32) Operand2 {
	return shiftedRegister(rm, ShiftType_ASR, amount)
}

// Register rm rotated right by a constant
func ROR(rm registers.Register, amount uint32) Operand2 {
	return shiftedRegister(rm, ShiftType_ROR, amount)
}

// Register rm shifted left by the value of register rs
func LSLR(rm registers.Register, rs registers.Register) Operand2 {
	return registerShiftedRegister(rm, ShiftType_LSL, rs)
}

// Register rm logically shifted right by the value of register rs
func LSRR(rm registers.Register, rs registers.Register) Operand2 {
	return registerShiftedRegister(rm, ShiftType_LSR, rs)
}

// Register rm arithmetically shifted right by the value of register rs
func ASRR(rm registers.Register, rs registers.Register) Operand2 {
	return registerShiftedRegister(rm, ShiftType_ASR, rs)
}

// Register rm rotated right by the value of register rs
func RORR(rm registers.Register, rs registers.Register) Operand2 {
	return registerShiftedRegister(rm, ShiftType_ROR, rs)
}

// Plain register operand
func REG(rm registers.Register) Operand2 {
	return LSL(rm, 0)
}

// Register rm rotated right one bit through the carry flag (encoded as ROR #0)
func RRX(rm registers.Register) Operand2 {
	return ROR(rm, 0)
}

// Returns an immediate operand whose rotated value equals the given constant, if any rotation can express it
func EncodeImmediate(value uint32) (Operand2, bool) {
	for rot := uint32(0); rot < 1<<immediateRotateBits; rot++ {
		imm := bits.RotateLeft32(value, int(2*rot))

		if utils.FitsUnsigned(imm, immediateValueBits) {
			return IMM(imm, rot), true
		}
	}

	return Operand2{}, false
}

// Returns the 32 bit constant an immediate operand evaluates to
func (o Operand2) Value() (uint32, bool) {
	if o.Kind != Operand2Kind_Immediate {
		return 0, false
	}

	imm := o.Immediate & utils.AllOnes[uint32](immediateValueBits)
	rot := o.Rotate & utils.AllOnes[uint32](immediateRotateBits)
	return bits.RotateLeft32(imm, -int(2*rot)), true
}

// Returns true if the operand is a register with no shift applied
func (o Operand2) IsPlainRegister() bool {
	return o.Kind == Operand2Kind_ShiftedRegister && o.Shift == ShiftType_LSL && o.Amount == 0
}

// Returns the operand encoding: bits 11-0 and the I bit (bit 25).
// Fields wider than their encoding are truncated. Operands of unknown kind encode no bits
func (o Operand2) Encode() uint32 {
	var result uint32
	view := utils.CreateBitView(&result)

	switch o.Kind {
	case Operand2Kind_Immediate:
		view.SetBit(ImmediateBit)
		view.Write(o.Rotate, immediateRotatePos, immediateRotateBits)
		view.Write(o.Immediate, 0, immediateValueBits)
	case Operand2Kind_ShiftedRegister:
		view.Write(o.Amount, shiftAmountPos, shiftAmountBits)
		view.Write(uint32(o.Shift), shiftTypePos, shiftTypeBits)
		view.Write(o.Rm.Encode(), 0, registers.RegisterBits)
	case Operand2Kind_RegisterShiftedRegister:
		view.Write(o.Rs.Encode(), shiftRegisterPos, registers.RegisterBits)
		view.Write(uint32(o.Shift), shiftTypePos, shiftTypeBits)
		view.SetBit(registerShiftMarkerPos)
		view.Write(o.Rm.Encode(), 0, registers.RegisterBits)
	}

	return result
}

func (o Operand2) checkKind() error {
	if o.Kind >= TOTAL_OPERAND2_KINDS {
		return utils.MakeError(ErrInvalidOperand, "unknown operand2 kind %v", uint(o.Kind))
	}

	return nil
}

// Checks that all operand fields fit their encoding
func (o Operand2) Validate() error {
	switch o.Kind {
	case Operand2Kind_Immediate:
		if !utils.FitsUnsigned(o.Immediate, immediateValueBits) {
			return utils.MakeError(ErrInvalidOperand, "immediate %v does not fit in %v bits", o.Immediate, immediateValueBits)
		}
		if !utils.FitsUnsigned(o.Rotate, immediateRotateBits) {
			return utils.MakeError(ErrInvalidOperand, "rotation %v does not fit in %v bits", o.Rotate, immediateRotateBits)
		}
	case Operand2Kind_ShiftedRegister, Operand2Kind_RegisterShiftedRegister:
		if err := validateRegister("rm", o.Rm); err != nil {
			return err
		}
		if o.Shift >= TOTAL_SHIFT_TYPES {
			return utils.MakeError(ErrInvalidOperand, "unknown shift type %v", uint32(o.Shift))
		}
		if o.Kind == Operand2Kind_ShiftedRegister {
			if !utils.FitsUnsigned(o.Amount, shiftAmountBits) {
				return utils.MakeError(ErrInvalidOperand, "shift amount %v out of range [0, 31]", o.Amount)
			}
		} else if err := validateRegister("rs", o.Rs); err != nil {
			return err
		}
	default:
		return utils.MakeError(ErrInvalidOperand, "unknown operand2 kind %v", uint(o.Kind))
	}

	return nil
}

func (o Operand2) String() string {
	switch o.Kind {
	case Operand2Kind_Immediate:
		value, _ := o.Value()
		return fmt.Sprintf("#%v", value)
	case Operand2Kind_ShiftedRegister:
		if o.IsPlainRegister() {
			return o.Rm.String()
		}
		if o.Shift == ShiftType_ROR && o.Amount == 0 {
			return fmt.Sprintf("%v, rrx", o.Rm)
		}
		return fmt.Sprintf("%v, %v #%v", o.Rm, o.Shift, o.Amount)
	case Operand2Kind_RegisterShiftedRegister:
		return fmt.Sprintf("%v, %v %v", o.Rm, o.Shift, o.Rs)
	}

	return fmt.Sprintf("Operand2(%v)", uint(o.Kind))
}

func validateRegister(name string, r registers.Register) error {
	if !r.Valid() {
		return utils.MakeError(ErrInvalidOperand, "%v: register index %v out of range [0, 15]", name, uint8(r))
	}

	return nil
}
