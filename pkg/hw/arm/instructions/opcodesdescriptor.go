package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
)

// Returns information about the implemented opcodes
type OpCodesDescriptor struct {
	opcodes           []*OpCodeDescriptor
	mnemonicsToOpCode map[string]OpCode
}

// Returns the descriptor of the given opcode
func (d *OpCodesDescriptor) Descriptor(op OpCode) (*OpCodeDescriptor, error) {
	if op >= TOTAL_OPCODES {
		return nil, utils.MakeError(ErrInvalidOpCode, "opcode %v", uint(op))
	}

	return d.opcodes[op], nil
}

// Returns the descriptors of all implemented opcodes, ordered by opcode
func (d *OpCodesDescriptor) AllOpCodes() []*OpCodeDescriptor {
	return d.opcodes
}

// Number of opcodes implemented
func (d *OpCodesDescriptor) TotalOpCodes() int {
	return len(d.opcodes)
}

// Returns the mnemonic string representation of the opcode
func (d *OpCodesDescriptor) Mnemonic(op OpCode) string {
	if op >= TOTAL_OPCODES {
		return fmt.Sprintf("OpCode(%d)", uint(op))
	}

	return d.opcodes[op].Mnemonic
}

// Returns the opcode corresponding to the given mnemonic. Alternative spellings
// (TSTS, STMFD, SVC, ...) resolve to the opcode encoding the same instruction
func (d *OpCodesDescriptor) ParseOpCode(mnemonic string) (OpCode, error) {
	if opcode, hasOpCode := d.mnemonicsToOpCode[strings.ToUpper(strings.TrimSpace(mnemonic))]; hasOpCode {
		return opcode, nil
	} else {
		return 0, utils.MakeError(ErrInvalidOpCode, "'%v'", mnemonic)
	}
}

// Initializes an opcodes descriptor with the given opcode descriptors and mnemonic aliases
func NewOpCodesDescriptor(opcodes []*OpCodeDescriptor, aliases map[string]OpCode) OpCodesDescriptor {
	d := OpCodesDescriptor{
		opcodes:           make([]*OpCodeDescriptor, TOTAL_OPCODES),
		mnemonicsToOpCode: make(map[string]OpCode, len(opcodes)+len(aliases)),
	}

	for _, opcode := range opcodes {
		if opcode.OpCode >= TOTAL_OPCODES {
			panic(fmt.Sprintf("opcode %v (%v) out of range", uint(opcode.OpCode), opcode.Mnemonic))
		}
		if d.opcodes[opcode.OpCode] != nil {
			panic(fmt.Sprintf("duplicated entry for opcode %v in opcodes table", opcode.Mnemonic))
		}

		d.opcodes[opcode.OpCode] = opcode
		d.mnemonicsToOpCode[opcode.Mnemonic] = opcode.OpCode
	}

	for i, opcode := range d.opcodes {
		if opcode == nil {
			panic(fmt.Sprintf("missing entry for opcode %v in opcodes table. Make sure you've added all opcode descriptors in the NewOpCodesDescriptor() call", i))
		}
	}

	for alias, opcode := range aliases {
		if _, hasMnemonic := d.mnemonicsToOpCode[alias]; hasMnemonic {
			panic(fmt.Sprintf("alias %v shadows an opcode mnemonic", alias))
		}

		d.mnemonicsToOpCode[alias] = opcode
	}

	return d
}
