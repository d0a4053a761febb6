// Package listing loads structured instruction listings.
//
// A listing is a YAML document describing a sequence of symbolic instructions, one mapping
// per instruction. It is not assembly text: every operand is given in its own key and the
// loader performs no symbol resolution. For example:
//
//	cpu: armv4
//	policy: strict
//	origin: 0x8000
//	instructions:
//	  - op: mov
//	    rd: r0
//	    op2: {imm: 5}
//	  - op: ldr
//	    rd: r1
//	    rn: sp
//	    offset: {imm: 4}
//	    flags: [pre, up]
//	  - op: push
//	    regs: [r4, lr]
//	  - op: b
//	    cond: ne
//	    address: 0x8000
//
// Loading never encodes: the returned instructions are handed to an [instructions.Encoder].
package listing

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/Manu343726/armin/pkg/utils"
	"gopkg.in/yaml.v3"
)

var ErrInvalidListing error = errors.New("invalid listing")

// Size in bytes of an instruction word, used to compute entry addresses
const WordBytes = 4

// A loaded listing
type Listing struct {
	// Core variant requested by the listing, if any
	CPU *instructions.CPU
	// Encoding policy requested by the listing, if any
	Policy *instructions.Policy
	// Address of the first instruction
	Origin uint32

	Instructions []instructions.Instruction
}

// Returns the address of the i-th instruction of the listing
func (l *Listing) Address(i int) uint32 {
	return l.Origin + uint32(i)*WordBytes
}

type document struct {
	CPU          string  `yaml:"cpu"`
	Policy       string  `yaml:"policy"`
	Origin       uint32  `yaml:"origin"`
	Instructions []entry `yaml:"instructions"`
}

type operand2Entry struct {
	// Immediate form: 8 bit value with an explicit rotation
	Imm *uint32 `yaml:"imm"`
	Rot uint32  `yaml:"rot"`
	// Immediate form: 32 bit constant, the rotation is searched
	Value *uint32 `yaml:"value"`

	// Register forms
	Reg    string  `yaml:"reg"`
	Shift  string  `yaml:"shift"`
	Amount *uint32 `yaml:"amount"`
	Rs     string  `yaml:"rs"`
}

type halfwordOffsetEntry struct {
	Imm *uint32 `yaml:"imm"`
	Reg string  `yaml:"reg"`
}

type entry struct {
	Op   string `yaml:"op"`
	Cond string `yaml:"cond"`

	Rd   string `yaml:"rd"`
	Rn   string `yaml:"rn"`
	Rm   string `yaml:"rm"`
	Rs   string `yaml:"rs"`
	RdHi string `yaml:"rdhi"`
	RdLo string `yaml:"rdlo"`

	Op2     *operand2Entry       `yaml:"op2"`
	Offset  *operand2Entry       `yaml:"offset"`
	HOffset *halfwordOffsetEntry `yaml:"hoffset"`
	Flags   []string             `yaml:"flags"`
	Regs    []string             `yaml:"regs"`
	PSR     string               `yaml:"psr"`

	// Branch offset in words
	Target *int32 `yaml:"target"`
	// Absolute branch destination, converted into a word offset from the entry address
	Address *uint32 `yaml:"address"`
	Comment uint32  `yaml:"comment"`

	Label string `yaml:"label"`
}

func parseRegister(name string) (registers.Register, error) {
	if name == "" {
		return registers.R0, nil
	}

	return registers.Parse(name)
}

func (e *operand2Entry) isRegister() bool {
	return e.Reg != ""
}

func (e *operand2Entry) operand2() (instructions.Operand2, error) {
	switch {
	case e.Value != nil:
		if e.Imm != nil || e.isRegister() {
			return instructions.Operand2{}, utils.MakeError(ErrInvalidListing, "op2 'value' excludes 'imm' and 'reg'")
		}

		op2, ok := instructions.EncodeImmediate(*e.Value)
		if !ok {
			return instructions.Operand2{}, utils.MakeError(instructions.ErrInvalidOperand, "constant %v cannot be encoded as a rotated 8 bit immediate", utils.FormatUintHex(uint64(*e.Value), 8))
		}

		return op2, nil
	case e.Imm != nil:
		if e.isRegister() {
			return instructions.Operand2{}, utils.MakeError(ErrInvalidListing, "op2 'imm' excludes 'reg'")
		}

		return instructions.IMM(*e.Imm, e.Rot), nil
	case e.isRegister():
		rm, err := registers.Parse(e.Reg)
		if err != nil {
			return instructions.Operand2{}, err
		}

		if e.Shift == "" {
			if e.Amount != nil || e.Rs != "" {
				return instructions.Operand2{}, utils.MakeError(ErrInvalidListing, "shift amount given without a shift type")
			}

			return instructions.REG(rm), nil
		}

		if strings.EqualFold(e.Shift, "rrx") {
			return instructions.RRX(rm), nil
		}

		shift, err := instructions.ParseShiftType(e.Shift)
		if err != nil {
			return instructions.Operand2{}, err
		}

		if e.Rs != "" {
			if e.Amount != nil {
				return instructions.Operand2{}, utils.MakeError(ErrInvalidListing, "shift 'amount' excludes 'rs'")
			}

			rs, err := registers.Parse(e.Rs)
			if err != nil {
				return instructions.Operand2{}, err
			}

			return instructions.Operand2{
				Kind:  instructions.Operand2Kind_RegisterShiftedRegister,
				Rm:    rm,
				Shift: shift,
				Rs:    rs,
			}, nil
		}

		amount := uint32(0)
		if e.Amount != nil {
			amount = *e.Amount
		}

		return instructions.Operand2{
			Kind:   instructions.Operand2Kind_ShiftedRegister,
			Rm:     rm,
			Shift:  shift,
			Amount: amount,
		}, nil
	}

	return instructions.Operand2{}, utils.MakeError(ErrInvalidListing, "operand needs one of 'imm', 'value' or 'reg'")
}

func (e *operand2Entry) offset() (instructions.Offset, error) {
	if e.Imm != nil && !e.isRegister() {
		return instructions.IMM12(*e.Imm), nil
	}

	op2, err := e.operand2()
	if err != nil {
		return instructions.Offset{}, err
	}

	if op2.Kind == instructions.Operand2Kind_Immediate {
		return instructions.Offset{}, utils.MakeError(ErrInvalidListing, "transfer offsets take 'imm' or 'reg'")
	}

	return instructions.RegisterOffset(op2), nil
}

func (e *halfwordOffsetEntry) halfwordOffset() (instructions.HalfwordOffset, error) {
	switch {
	case e.Imm != nil && e.Reg != "":
		return instructions.HalfwordOffset{}, utils.MakeError(ErrInvalidListing, "hoffset 'imm' excludes 'reg'")
	case e.Imm != nil:
		return instructions.HSTIMM(*e.Imm), nil
	case e.Reg != "":
		rm, err := registers.Parse(e.Reg)
		if err != nil {
			return instructions.HalfwordOffset{}, err
		}
		return instructions.HalfwordRegister(rm), nil
	}

	return instructions.HalfwordOffset{}, utils.MakeError(ErrInvalidListing, "hoffset needs one of 'imm' or 'reg'")
}

func (e *entry) instruction(address uint32) (instructions.Instruction, error) {
	var instr instructions.Instruction
	var err error

	if e.Op == "" {
		return instr, utils.MakeError(ErrInvalidListing, "missing 'op'")
	}

	if instr.OpCode, err = instructions.Opcodes.ParseOpCode(e.Op); err != nil {
		return instr, err
	}
	if instr.Cond, err = instructions.ParseCondition(e.Cond); err != nil {
		return instr, err
	}

	namedRegisters := []struct {
		name   string
		target *registers.Register
	}{
		{e.Rd, &instr.Rd},
		{e.Rn, &instr.Rn},
		{e.Rm, &instr.Rm},
		{e.Rs, &instr.Rs},
		{e.RdHi, &instr.RdHi},
		{e.RdLo, &instr.RdLo},
	}

	for _, r := range namedRegisters {
		if *r.target, err = parseRegister(r.name); err != nil {
			return instr, err
		}
	}

	if e.Op2 != nil {
		if instr.Operand2, err = e.Op2.operand2(); err != nil {
			return instr, utils.MakeError(err, "op2")
		}
	}
	if e.Offset != nil {
		if instr.Offset, err = e.Offset.offset(); err != nil {
			return instr, utils.MakeError(err, "offset")
		}
	}
	if e.HOffset != nil {
		if instr.HalfwordOffset, err = e.HOffset.halfwordOffset(); err != nil {
			return instr, utils.MakeError(err, "hoffset")
		}
	}

	if instr.Mode, err = instructions.ParseAddressingMode(e.Flags); err != nil {
		return instr, err
	}

	for _, name := range e.Regs {
		r, err := registers.Parse(name)
		if err != nil {
			return instr, err
		}

		instr.List |= r.Bit()
	}

	if instr.PSR, err = instructions.ParsePSR(e.PSR); err != nil {
		return instr, err
	}

	switch {
	case e.Target != nil && e.Address != nil:
		return instr, utils.MakeError(ErrInvalidListing, "'target' excludes 'address'")
	case e.Target != nil:
		instr.Target = *e.Target
	case e.Address != nil:
		instr.Target = instructions.BranchOffset(address, *e.Address)
	}

	instr.Comment = e.Comment
	instr.Label = e.Label

	return instr, nil
}

// Reads a listing from a YAML document
func Load(r io.Reader) (*Listing, error) {
	var doc document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, utils.MakeError(ErrInvalidListing, "empty document")
		}

		return nil, utils.MakeError(ErrInvalidListing, "%v", err)
	}

	listing := &Listing{
		Origin:       doc.Origin,
		Instructions: make([]instructions.Instruction, 0, len(doc.Instructions)),
	}

	if doc.CPU != "" {
		cpu, err := instructions.ParseCPU(doc.CPU)
		if err != nil {
			return nil, utils.MakeError(ErrInvalidListing, "%w", err)
		}
		listing.CPU = &cpu
	}

	if doc.Policy != "" {
		policy, err := instructions.ParsePolicy(doc.Policy)
		if err != nil {
			return nil, utils.MakeError(ErrInvalidListing, "%w", err)
		}
		listing.Policy = &policy
	}

	if listing.Origin%WordBytes != 0 {
		return nil, utils.MakeError(ErrInvalidListing, "origin %v is not word aligned", utils.FormatUintHex(uint64(listing.Origin), 8))
	}

	for i := range doc.Instructions {
		instr, err := doc.Instructions[i].instruction(listing.Address(i))
		if err != nil {
			return nil, utils.MakeError(ErrInvalidListing, "entry #%v: %w", i, err)
		}

		listing.Instructions = append(listing.Instructions, instr)
	}

	return listing, nil
}

// Reads a listing from a YAML file
func LoadFile(path string) (*Listing, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}
