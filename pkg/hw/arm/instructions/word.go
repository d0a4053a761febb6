package instructions

import (
	"fmt"

	"github.com/Manu343726/armin/pkg/utils"
)

// A 32 bit ARM instruction word, as the CPU fetches it
type Word uint32

const (
	// Bits used by every instruction word
	WordBits = 32

	ConditionPosition = 28
	ConditionBits     = 4

	conditionMask uint32 = 0xF0000000
)

// Returns the condition gating the execution of the instruction
func (w Word) Condition() Condition {
	return conditionFromCode(w.Bits(ConditionPosition, ConditionBits))
}

// Returns a copy of the instruction word executed only if the given condition holds
func (w Word) If(cond Condition) Word {
	return Word((uint32(w) &^ conditionMask) | cond.Code()<<ConditionPosition)
}

// Extracts a field of the instruction word
func (w Word) Bits(bit int, width int) uint32 {
	value := uint32(w)
	return utils.CreateBitView(&value).Read(bit, width)
}

// Returns true if the given bit is set
func (w Word) IsSet(bit int) bool {
	return w.Bits(bit, 1) == 1
}

func (w Word) String() string {
	return fmt.Sprintf("0x%08x", uint32(w))
}
