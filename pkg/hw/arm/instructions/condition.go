package instructions

import (
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
)

// Condition gating the execution of an instruction, based on the CPSR flags.
//
// Conditions are stored xored with the AL code, so that the zero value of a condition is AL
// and merging a condition into an instruction template (which always carries AL) is a xor
type Condition uint32

const alwaysCode uint32 = 0xE

const (
	EQ Condition = Condition(0x0 ^ alwaysCode) // Z==1       (Equal)
	NE Condition = Condition(0x1 ^ alwaysCode) // Z==0       (Not equal)
	CS Condition = Condition(0x2 ^ alwaysCode) // C==1       (Unsigned higher or same)
	CC Condition = Condition(0x3 ^ alwaysCode) // C==0       (Unsigned lower)
	MI Condition = Condition(0x4 ^ alwaysCode) // N==1       (Negative)
	PL Condition = Condition(0x5 ^ alwaysCode) // N==0       (Positive or zero)
	VS Condition = Condition(0x6 ^ alwaysCode) // V==1       (Overflow)
	VC Condition = Condition(0x7 ^ alwaysCode) // V==0       (No overflow)
	HI Condition = Condition(0x8 ^ alwaysCode) // C==1&&Z==0 (Unsigned higher)
	LS Condition = Condition(0x9 ^ alwaysCode) // C==0||Z==1 (Unsigned lower or same)
	GE Condition = Condition(0xA ^ alwaysCode) // N==V       (Greater or equal)
	LT Condition = Condition(0xB ^ alwaysCode) // N!=V       (Less than)
	GT Condition = Condition(0xC ^ alwaysCode) // Z==0&&N==V (Greater than)
	LE Condition = Condition(0xD ^ alwaysCode) // Z==1||N!=V (Less than or equal)
	AL Condition = Condition(0xE ^ alwaysCode) // Always
	NV Condition = Condition(0xF ^ alwaysCode) // Never

	HS = CS
	LO = CC
)

// Total number of condition codes
const TOTAL_CONDITIONS = 16

var conditionNames = [TOTAL_CONDITIONS]string{
	"EQ", "NE", "CS", "CC", "MI", "PL", "VS", "VC",
	"HI", "LS", "GE", "LT", "GT", "LE", "AL", "NV",
}

var conditionsByName = func() map[string]Condition {
	result := make(map[string]Condition, TOTAL_CONDITIONS+2)

	for code, name := range conditionNames {
		result[name] = conditionFromCode(uint32(code))
	}

	result["HS"] = HS
	result["LO"] = LO

	return result
}()

func conditionFromCode(code uint32) Condition {
	return Condition((code & 0xF) ^ alwaysCode)
}

// Returns the 4 bit code of the condition, as encoded in bits 31-28 of the instruction word
func (c Condition) Code() uint32 {
	return (uint32(c) ^ alwaysCode) & utils.AllOnes[uint32](ConditionBits)
}

// Returns the condition name
func (c Condition) String() string {
	return conditionNames[c.Code()]
}

// Returns the condition that holds exactly when this one does not
func (c Condition) Opposite() Condition {
	return conditionFromCode(c.Code() ^ 1)
}

// Returns all condition codes ordered by their encoding
func Conditions() []Condition {
	return utils.Iota(TOTAL_CONDITIONS, func(code int) Condition { return conditionFromCode(uint32(code)) })
}

// Parses a condition name (EQ, ne, HS, ...). An empty name means AL
func ParseCondition(name string) (Condition, error) {
	if name == "" {
		return AL, nil
	}

	if cond, ok := conditionsByName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return cond, nil
	}

	return AL, utils.MakeError(ErrInvalidCondition, "'%v'", name)
}
