package instructions

import (
	"fmt"

	"github.com/Manu343726/armin/pkg/hw/arm/registers"
	"github.com/Manu343726/armin/pkg/utils"
)

var Opcodes OpCodesDescriptor = NewOpCodesDescriptor(
	[]*OpCodeDescriptor{
		branch(OpCode_B, "B", Template_B, B, "Branch"),
		branch(OpCode_BL, "BL", Template_BL, BL, "Branch with link"),

		binaryDataProcessing(OpCode_AND, "AND", Template_AND, AND, "Rd = Rn & Op2"),
		binaryDataProcessing(OpCode_EOR, "EOR", Template_EOR, EOR, "Rd = Rn ^ Op2"),
		binaryDataProcessing(OpCode_SUB, "SUB", Template_SUB, SUB, "Rd = Rn - Op2"),
		binaryDataProcessing(OpCode_RSB, "RSB", Template_RSB, RSB, "Rd = Op2 - Rn"),
		binaryDataProcessing(OpCode_ADD, "ADD", Template_ADD, ADD, "Rd = Rn + Op2"),
		binaryDataProcessing(OpCode_ADC, "ADC", Template_ADC, ADC, "Rd = Rn + Op2 + C"),
		binaryDataProcessing(OpCode_SBC, "SBC", Template_SBC, SBC, "Rd = Rn - Op2 + C - 1"),
		binaryDataProcessing(OpCode_RSC, "RSC", Template_RSC, RSC, "Rd = Op2 - Rn + C - 1"),
		compareDataProcessing(OpCode_TST, "TST", Template_TST, TST, "Set CPSR flags on Rn & Op2"),
		compareDataProcessing(OpCode_TEQ, "TEQ", Template_TEQ, TEQ, "Set CPSR flags on Rn ^ Op2"),
		compareDataProcessing(OpCode_CMP, "CMP", Template_CMP, CMP, "Set CPSR flags on Rn - Op2"),
		compareDataProcessing(OpCode_CMN, "CMN", Template_CMN, CMN, "Set CPSR flags on Rn + Op2"),
		binaryDataProcessing(OpCode_ORR, "ORR", Template_ORR, ORR, "Rd = Rn | Op2"),
		moveDataProcessing(OpCode_MOV, "MOV", Template_MOV, MOV, "Rd = Op2"),
		binaryDataProcessing(OpCode_BIC, "BIC", Template_BIC, BIC, "Rd = Rn & ~Op2"),
		moveDataProcessing(OpCode_MVN, "MVN", Template_MVN, MVN, "Rd = ~Op2"),

		binaryDataProcessing(OpCode_ANDS, "ANDS", Template_AND|SetFlagsBit, ANDS, "Rd = Rn & Op2, set CPSR flags"),
		binaryDataProcessing(OpCode_EORS, "EORS", Template_EOR|SetFlagsBit, EORS, "Rd = Rn ^ Op2, set CPSR flags"),
		binaryDataProcessing(OpCode_SUBS, "SUBS", Template_SUB|SetFlagsBit, SUBS, "Rd = Rn - Op2, set CPSR flags"),
		binaryDataProcessing(OpCode_RSBS, "RSBS", Template_RSB|SetFlagsBit, RSBS, "Rd = Op2 - Rn, set CPSR flags"),
		binaryDataProcessing(OpCode_ADDS, "ADDS", Template_ADD|SetFlagsBit, ADDS, "Rd = Rn + Op2, set CPSR flags"),
		binaryDataProcessing(OpCode_ADCS, "ADCS", Template_ADC|SetFlagsBit, ADCS, "Rd = Rn + Op2 + C, set CPSR flags"),
		binaryDataProcessing(OpCode_SBCS, "SBCS", Template_SBC|SetFlagsBit, SBCS, "Rd = Rn - Op2 + C - 1, set CPSR flags"),
		binaryDataProcessing(OpCode_RSCS, "RSCS", Template_RSC|SetFlagsBit, RSCS, "Rd = Op2 - Rn + C - 1, set CPSR flags"),
		binaryDataProcessing(OpCode_ORRS, "ORRS", Template_ORR|SetFlagsBit, ORRS, "Rd = Rn | Op2, set CPSR flags"),
		moveDataProcessing(OpCode_MOVS, "MOVS", Template_MOV|SetFlagsBit, MOVS, "Rd = Op2, set CPSR flags"),
		binaryDataProcessing(OpCode_BICS, "BICS", Template_BIC|SetFlagsBit, BICS, "Rd = Rn & ~Op2, set CPSR flags"),
		moveDataProcessing(OpCode_MVNS, "MVNS", Template_MVN|SetFlagsBit, MVNS, "Rd = ~Op2, set CPSR flags"),

		mrs(),
		msr(),
		msrFlags(),

		multiply(OpCode_MUL, "MUL", Template_MUL, MUL, "Rd = Rm * Rs"),
		multiply(OpCode_MULS, "MULS", Template_MULS, MULS, "Rd = Rm * Rs, set CPSR flags"),
		multiplyAccumulate(OpCode_MLA, "MLA", Template_MLA, MLA, "Rd = Rm * Rs + Rn"),
		multiplyAccumulate(OpCode_MLAS, "MLAS", Template_MLAS, MLAS, "Rd = Rm * Rs + Rn, set CPSR flags"),

		multiplyLong(OpCode_UMULL, "UMULL", Template_UMULL, UMULL, "RdHi:RdLo = Rm * Rs (unsigned)"),
		multiplyLong(OpCode_UMULLS, "UMULLS", Template_UMULLS, UMULLS, "RdHi:RdLo = Rm * Rs (unsigned), set CPSR flags"),
		multiplyLong(OpCode_UMLAL, "UMLAL", Template_UMLAL, UMLAL, "RdHi:RdLo += Rm * Rs (unsigned)"),
		multiplyLong(OpCode_UMLALS, "UMLALS", Template_UMLALS, UMLALS, "RdHi:RdLo += Rm * Rs (unsigned), set CPSR flags"),
		multiplyLong(OpCode_SMULL, "SMULL", Template_SMULL, SMULL, "RdHi:RdLo = Rm * Rs (signed)"),
		multiplyLong(OpCode_SMULLS, "SMULLS", Template_SMULLS, SMULLS, "RdHi:RdLo = Rm * Rs (signed), set CPSR flags"),
		multiplyLong(OpCode_SMLAL, "SMLAL", Template_SMLAL, SMLAL, "RdHi:RdLo += Rm * Rs (signed)"),
		multiplyLong(OpCode_SMLALS, "SMLALS", Template_SMLALS, SMLALS, "RdHi:RdLo += Rm * Rs (signed), set CPSR flags"),

		transfer(OpCode_STR, "STR", Template_STR, STR, "[Rn +/- Offset] = Rd (word)"),
		transfer(OpCode_STRB, "STRB", Template_STRB, STRB, "[Rn +/- Offset] = Rd (byte)"),
		transfer(OpCode_LDR, "LDR", Template_LDR, LDR, "Rd = [Rn +/- Offset] (word)"),
		transfer(OpCode_LDRB, "LDRB", Template_LDRB, LDRB, "Rd = [Rn +/- Offset] (zero extended byte)"),

		halfwordTransfer(OpCode_STRH, "STRH", Template_STRH, STRH, "[Rn +/- Offset] = Rd (halfword)"),
		halfwordTransfer(OpCode_LDRH, "LDRH", Template_LDRH, LDRH, "Rd = [Rn +/- Offset] (zero extended halfword)"),
		halfwordTransfer(OpCode_LDRSB, "LDRSB", Template_LDRSB, LDRSB, "Rd = [Rn +/- Offset] (sign extended byte)"),
		halfwordTransfer(OpCode_LDRSH, "LDRSH", Template_LDRSH, LDRSH, "Rd = [Rn +/- Offset] (sign extended halfword)"),

		blockTransfer(OpCode_STM, "STM", Template_STM, STM, "Store the listed registers at the address in Rn"),
		blockTransfer(OpCode_LDM, "LDM", Template_LDM, LDM, "Load the listed registers from the address in Rn"),
		blockTransferShortcut(OpCode_STMIB, "STMIB", Template_STMIB, STMIB, "Store multiple, increment before, write back"),
		blockTransferShortcut(OpCode_STMIA, "STMIA", Template_STMIA, STMIA, "Store multiple, increment after, write back"),
		blockTransferShortcut(OpCode_STMDB, "STMDB", Template_STMDB, STMDB, "Store multiple, decrement before, write back"),
		blockTransferShortcut(OpCode_STMDA, "STMDA", Template_STMDA, STMDA, "Store multiple, decrement after, write back"),
		blockTransferShortcut(OpCode_LDMIB, "LDMIB", Template_LDMIB, LDMIB, "Load multiple, increment before, write back"),
		blockTransferShortcut(OpCode_LDMIA, "LDMIA", Template_LDMIA, LDMIA, "Load multiple, increment after, write back"),
		blockTransferShortcut(OpCode_LDMDB, "LDMDB", Template_LDMDB, LDMDB, "Load multiple, decrement before, write back"),
		blockTransferShortcut(OpCode_LDMDA, "LDMDA", Template_LDMDA, LDMDA, "Load multiple, decrement after, write back"),
		stack(OpCode_PUSH, "PUSH", Template_STMDB, PUSH, "Push the listed registers (STMFD sp!)"),
		stack(OpCode_POP, "POP", Template_LDMIA, POP, "Pop the listed registers (LDMFD sp!)"),

		swapInstruction(OpCode_SWP, "SWP", Template_SWP, SWP, "Rd = [Rn], [Rn] = Rm (word)"),
		swapInstruction(OpCode_SWPB, "SWPB", Template_SWPB, SWPB, "Rd = [Rn], [Rn] = Rm (byte)"),

		softwareInterrupt(),
	},
	map[string]OpCode{
		"TSTS":   OpCode_TST,
		"TEQS":   OpCode_TEQ,
		"CMPS":   OpCode_CMP,
		"CMNS":   OpCode_CMN,
		"MSRFLG": OpCode_MSR_FLG,
		"STMFD":  OpCode_STMDB,
		"LDMFD":  OpCode_LDMIA,
		"STMED":  OpCode_STMDA,
		"LDMED":  OpCode_LDMIB,
		"STMFA":  OpCode_STMIB,
		"LDMFA":  OpCode_LDMDA,
		"STMEA":  OpCode_STMIA,
		"LDMEA":  OpCode_LDMDB,
		"SVC":    OpCode_SWI,
	},
)

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func validateNotPC(name string, r registers.Register) error {
	if r.Encode() == registers.PC.Encode() {
		return makeOperandError("%v: pc is not a valid operand", name)
	}

	return nil
}

func validatePSR(p PSR) error {
	if uint32(p)&^PSRMask != 0 {
		return makeOperandError("invalid program status register selector %v", utils.FormatUintHex(uint64(p), 8))
	}

	return nil
}

func validateList(list registers.List) error {
	if list == 0 {
		return makeOperandError("empty register list")
	}

	return nil
}

func branch(op OpCode, mnemonic string, template uint32, encode func(int32) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_Branch,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Target)
		},
		validate: func(instr *Instruction) error {
			if !utils.FitsSigned(instr.Target, BranchOffsetBits) {
				return makeOperandError("branch offset %v out of range [%v, %v]", instr.Target, -(1 << (BranchOffsetBits - 1)), 1<<(BranchOffsetBits-1)-1)
			}
			return nil
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, fmt.Sprintf("#%v", instr.Target))
		},
	}
}

func binaryDataProcessing(op OpCode, mnemonic string, template uint32, encode func(rd, rn registers.Register, op2 Operand2) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_DataProcessing,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Rd, instr.Rn, instr.Operand2)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validateRegister("rd", instr.Rd),
				validateRegister("rn", instr.Rn),
				instr.Operand2.Validate(),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, instr.Rn, instr.Operand2)
		},
	}
}

func moveDataProcessing(op OpCode, mnemonic string, template uint32, encode func(rd registers.Register, op2 Operand2) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_DataProcessing,
		Template:    template,
		Description: description,
		FixedFields: []string{Field_Rn},
		encode: func(instr *Instruction) Word {
			return encode(instr.Rd, instr.Operand2)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validateRegister("rd", instr.Rd),
				instr.Operand2.Validate(),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, instr.Operand2)
		},
	}
}

func compareDataProcessing(op OpCode, mnemonic string, template uint32, encode func(rn registers.Register, op2 Operand2) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_DataProcessing,
		Template:    template,
		Description: description,
		FixedFields: []string{Field_Rd},
		encode: func(instr *Instruction) Word {
			return encode(instr.Rn, instr.Operand2)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validateRegister("rn", instr.Rn),
				instr.Operand2.Validate(),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rn, instr.Operand2)
		},
	}
}

func mrs() *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      OpCode_MRS,
		Mnemonic:    "MRS",
		Class:       InstructionClass_PSRTransfer,
		Template:    Template_MRS,
		Description: "Rd = PSR",
		FixedFields: []string{Field_I, Field_Source},
		encode: func(instr *Instruction) Word {
			return MRS(instr.PSR, instr.Rd)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validatePSR(instr.PSR),
				validateRegister("rd", instr.Rd),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, instr.PSR)
		},
	}
}

func msr() *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      OpCode_MSR,
		Mnemonic:    "MSR",
		Class:       InstructionClass_PSRTransfer,
		Template:    Template_MSR,
		Description: "PSR = Rm",
		FixedFields: []string{Field_I, Field_Rd},
		encode: func(instr *Instruction) Word {
			return MSR(instr.PSR, instr.Rm)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validatePSR(instr.PSR),
				validateRegister("rm", instr.Rm),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.PSR, instr.Rm)
		},
	}
}

func msrFlags() *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      OpCode_MSR_FLG,
		Mnemonic:    "MSR_FLG",
		Class:       InstructionClass_PSRTransfer,
		Template:    Template_MSR_FLG,
		Description: "PSR flags = Op2 (immediate or register)",
		FixedFields: []string{Field_Rd},
		encode: func(instr *Instruction) Word {
			return MSRFlags(instr.PSR, instr.Operand2)
		},
		validate: func(instr *Instruction) error {
			if instr.Operand2.Kind != Operand2Kind_Immediate && !instr.Operand2.IsPlainRegister() {
				return makeOperandError("flags source must be an immediate or an unshifted register, got %v", instr.Operand2)
			}

			return firstError(
				validatePSR(instr.PSR),
				instr.Operand2.Validate(),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.PSR.String()+"_flg", instr.Operand2)
		},
	}
}

func validateMultiply(instr *Instruction, hasAccumulator bool) error {
	if instr.Rd.Encode() == instr.Rm.Encode() {
		return makeOperandError("rd and rm must be different registers, got %v", instr.Rd)
	}

	err := firstError(
		validateRegister("rd", instr.Rd),
		validateRegister("rm", instr.Rm),
		validateRegister("rs", instr.Rs),
		validateNotPC("rd", instr.Rd),
		validateNotPC("rm", instr.Rm),
		validateNotPC("rs", instr.Rs),
	)

	if err == nil && hasAccumulator {
		err = firstError(
			validateRegister("rn", instr.Rn),
			validateNotPC("rn", instr.Rn),
		)
	}

	return err
}

func multiply(op OpCode, mnemonic string, template uint32, encode func(rd, rm, rs registers.Register) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_Multiply,
		Template:    template,
		Description: description,
		FixedFields: []string{Field_Rn},
		encode: func(instr *Instruction) Word {
			return encode(instr.Rd, instr.Rm, instr.Rs)
		},
		validate: func(instr *Instruction) error {
			return validateMultiply(instr, false)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, instr.Rm, instr.Rs)
		},
	}
}

func multiplyAccumulate(op OpCode, mnemonic string, template uint32, encode func(rd, rm, rs, rn registers.Register) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_Multiply,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Rd, instr.Rm, instr.Rs, instr.Rn)
		},
		validate: func(instr *Instruction) error {
			return validateMultiply(instr, true)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, instr.Rm, instr.Rs, instr.Rn)
		},
	}
}

func multiplyLong(op OpCode, mnemonic string, template uint32, encode func(rdHi, rdLo, rm, rs registers.Register) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_MultiplyLong,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.RdHi, instr.RdLo, instr.Rm, instr.Rs)
		},
		validate: func(instr *Instruction) error {
			hi, lo, rm := instr.RdHi.Encode(), instr.RdLo.Encode(), instr.Rm.Encode()
			if hi == lo || hi == rm || lo == rm {
				return makeOperandError("rdhi (%v), rdlo (%v) and rm (%v) must be different registers", instr.RdHi, instr.RdLo, instr.Rm)
			}

			return firstError(
				validateRegister("rdhi", instr.RdHi),
				validateRegister("rdlo", instr.RdLo),
				validateRegister("rm", instr.Rm),
				validateRegister("rs", instr.Rs),
				validateNotPC("rdhi", instr.RdHi),
				validateNotPC("rdlo", instr.RdLo),
				validateNotPC("rm", instr.Rm),
				validateNotPC("rs", instr.Rs),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.RdLo, instr.RdHi, instr.Rm, instr.Rs)
		},
	}
}

func transfer(op OpCode, mnemonic string, template uint32, encode func(rn, rd registers.Register, offset Offset, flags TransferFlags) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_SingleDataTransfer,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Rn, instr.Rd, instr.Offset, instr.Mode.Transfer())
		},
		validate: func(instr *Instruction) error {
			if instr.Mode.ForceUser && instr.Mode.PreIndex {
				return makeOperandError("user mode transfers must be post-indexed")
			}

			return firstError(
				validateRegister("rn", instr.Rn),
				validateRegister("rd", instr.Rd),
				instr.Offset.Validate(),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			if instr.Mode.ForceUser && !instr.Mode.PreIndex {
				mnemonic += "T"
			}

			return formatOperands(mnemonic, instr.Rd, formatTransferAddress(instr.Rn, instr.Offset, instr.Mode))
		},
	}
}

func halfwordTransfer(op OpCode, mnemonic string, template uint32, encode func(rn, rd registers.Register, offset HalfwordOffset, flags HalfwordFlags) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_HalfwordDataTransfer,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Rn, instr.Rd, instr.HalfwordOffset, instr.Mode.Halfword())
		},
		validate: func(instr *Instruction) error {
			if instr.Mode.ForceUser {
				return makeOperandError("halfword transfers have no user mode form")
			}

			return firstError(
				validateRegister("rn", instr.Rn),
				validateRegister("rd", instr.Rd),
				instr.HalfwordOffset.Validate(),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, formatHalfwordAddress(instr.Rn, instr.HalfwordOffset, instr.Mode))
		},
	}
}

func formatBlockBase(rn registers.Register, writeBack bool) string {
	if writeBack {
		return rn.String() + "!"
	}

	return rn.String()
}

func blockTransfer(op OpCode, mnemonic string, template uint32, encode func(rn registers.Register, flags BlockFlags, list registers.List) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_BlockDataTransfer,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Rn, instr.Mode.Block(), instr.List)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validateRegister("rn", instr.Rn),
				validateList(instr.List),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			list := instr.List.String()
			if instr.Mode.ForceUser {
				list += "^"
			}

			return formatOperands(mnemonic+blockSuffix(instr.Mode), formatBlockBase(instr.Rn, instr.Mode.WriteBack), list)
		},
	}
}

func blockTransferShortcut(op OpCode, mnemonic string, template uint32, encode func(rn registers.Register, list registers.List) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_BlockDataTransfer,
		Template:    template,
		Description: description,
		FixedFields: []string{Field_P, Field_U, Field_S, Field_W},
		encode: func(instr *Instruction) Word {
			return encode(instr.Rn, instr.List)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validateRegister("rn", instr.Rn),
				validateList(instr.List),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, formatBlockBase(instr.Rn, true), instr.List)
		},
	}
}

func stack(op OpCode, mnemonic string, template uint32, encode func(list registers.List) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_BlockDataTransfer,
		Template:    template | registers.SP.Encode()<<16,
		Description: description,
		FixedFields: []string{Field_P, Field_U, Field_S, Field_W, Field_Rn},
		encode: func(instr *Instruction) Word {
			return encode(instr.List)
		},
		validate: func(instr *Instruction) error {
			return validateList(instr.List)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.List)
		},
	}
}

func swapInstruction(op OpCode, mnemonic string, template uint32, encode func(rd, rm, rn registers.Register) Word, description string) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      op,
		Mnemonic:    mnemonic,
		Class:       InstructionClass_Swap,
		Template:    template,
		Description: description,
		encode: func(instr *Instruction) Word {
			return encode(instr.Rd, instr.Rm, instr.Rn)
		},
		validate: func(instr *Instruction) error {
			return firstError(
				validateRegister("rd", instr.Rd),
				validateRegister("rm", instr.Rm),
				validateRegister("rn", instr.Rn),
				validateNotPC("rd", instr.Rd),
				validateNotPC("rm", instr.Rm),
				validateNotPC("rn", instr.Rn),
			)
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, instr.Rd, instr.Rm, fmt.Sprintf("[%v]", instr.Rn))
		},
	}
}

func softwareInterrupt() *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:      OpCode_SWI,
		Mnemonic:    "SWI",
		Class:       InstructionClass_SoftwareInterrupt,
		Template:    Template_SWI,
		Description: "Software interrupt",
		encode: func(instr *Instruction) Word {
			return SWI(instr.Comment)
		},
		validate: func(instr *Instruction) error {
			if !utils.FitsUnsigned(instr.Comment, SWICommentBits) {
				return makeOperandError("comment %v does not fit in %v bits", utils.FormatUintHex(uint64(instr.Comment), 8), SWICommentBits)
			}
			return nil
		},
		format: func(mnemonic string, instr *Instruction) string {
			return formatOperands(mnemonic, utils.FormatUintHex(uint64(instr.Comment), 6))
		},
	}
}
