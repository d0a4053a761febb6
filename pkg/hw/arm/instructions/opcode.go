package instructions

// Represents an instruction opcode: one entry point of the encoder
type OpCode uint

const (
	// Branch
	OpCode_B OpCode = iota
	// Branch with link
	OpCode_BL
	// Rd = Rn & Op2
	OpCode_AND
	// Rd = Rn ^ Op2
	OpCode_EOR
	// Rd = Rn - Op2
	OpCode_SUB
	// Rd = Op2 - Rn
	OpCode_RSB
	// Rd = Rn + Op2
	OpCode_ADD
	// Rd = Rn + Op2 + C
	OpCode_ADC
	// Rd = Rn - Op2 + C - 1
	OpCode_SBC
	// Rd = Op2 - Rn + C - 1
	OpCode_RSC
	// Set CPSR on Rn & Op2
	OpCode_TST
	// Set CPSR on Rn ^ Op2
	OpCode_TEQ
	// Set CPSR on Rn - Op2
	OpCode_CMP
	// Set CPSR on Rn + Op2
	OpCode_CMN
	// Rd = Rn | Op2
	OpCode_ORR
	// Rd = Op2
	OpCode_MOV
	// Rd = Rn & ~Op2
	OpCode_BIC
	// Rd = ~Op2
	OpCode_MVN

	// Data processing variants updating the CPSR flags
	OpCode_ANDS
	OpCode_EORS
	OpCode_SUBS
	OpCode_RSBS
	OpCode_ADDS
	OpCode_ADCS
	OpCode_SBCS
	OpCode_RSCS
	OpCode_ORRS
	OpCode_MOVS
	OpCode_BICS
	OpCode_MVNS
	// Rd = PSR
	OpCode_MRS
	// PSR = Rm
	OpCode_MSR
	// PSR flags = Op2
	OpCode_MSR_FLG
	// Rd = Rm * Rs
	OpCode_MUL
	OpCode_MULS // MUL updating the CPSR flags
	// Rd = Rm * Rs + Rn
	OpCode_MLA
	OpCode_MLAS // MLA updating the CPSR flags
	// RdHi:RdLo = Rm * Rs (unsigned)
	OpCode_UMULL
	OpCode_UMULLS // UMULL updating the CPSR flags
	// RdHi:RdLo += Rm * Rs (unsigned)
	OpCode_UMLAL
	OpCode_UMLALS // UMLAL updating the CPSR flags
	// RdHi:RdLo = Rm * Rs (signed)
	OpCode_SMULL
	OpCode_SMULLS // SMULL updating the CPSR flags
	// RdHi:RdLo += Rm * Rs (signed)
	OpCode_SMLAL
	OpCode_SMLALS // SMLAL updating the CPSR flags
	// Store word
	OpCode_STR
	// Store byte
	OpCode_STRB
	// Load word
	OpCode_LDR
	// Load byte
	OpCode_LDRB
	// Store halfword
	OpCode_STRH
	// Load unsigned halfword
	OpCode_LDRH
	// Load signed byte
	OpCode_LDRSB
	// Load signed halfword
	OpCode_LDRSH
	// Store multiple registers
	OpCode_STM
	// Load multiple registers
	OpCode_LDM
	// Store multiple, increment before
	OpCode_STMIB
	// Store multiple, increment after
	OpCode_STMIA
	// Store multiple, decrement before
	OpCode_STMDB
	// Store multiple, decrement after
	OpCode_STMDA
	// Load multiple, increment before
	OpCode_LDMIB
	// Load multiple, increment after
	OpCode_LDMIA
	// Load multiple, decrement before
	OpCode_LDMDB
	// Load multiple, decrement after
	OpCode_LDMDA
	// Push registers into the full descending stack
	OpCode_PUSH
	// Pop registers from the full descending stack
	OpCode_POP
	// Swap word
	OpCode_SWP
	// Swap byte
	OpCode_SWPB
	// Software interrupt
	OpCode_SWI

	// Total opcodes implemented
	TOTAL_OPCODES
)

// Returns the mnemonic of the instruction opcode
func (op OpCode) String() string {
	return Opcodes.Mnemonic(op)
}
