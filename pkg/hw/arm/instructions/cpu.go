package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
)

// ARM core variant targeted by an [Encoder]. Variants gate the instruction classes introduced
// by later architecture revisions
type CPU uint

const (
	// Any core, all instruction classes available
	CPU_Generic CPU = iota
	// ARMv3 cores (ARM6, ARM7): no halfword transfers, no long multiplies
	CPU_ARMv3
	// ARMv3M cores: ARMv3 with long multiplies
	CPU_ARMv3M
	// ARMv4 cores (StrongARM)
	CPU_ARMv4
	// ARMv4T cores (ARM7TDMI, ARM9TDMI). Thumb is not encoded
	CPU_ARMv4T

	TOTAL_CPUS
)

var cpuNames = [TOTAL_CPUS]string{"generic", "armv3", "armv3m", "armv4", "armv4t"}

func (c CPU) String() string {
	if c < TOTAL_CPUS {
		return cpuNames[c]
	}

	return fmt.Sprintf("CPU(%d)", uint(c))
}

// Returns true if the instructions of the given class can be executed by the core
func (c CPU) Supports(class InstructionClass) bool {
	switch class {
	case InstructionClass_HalfwordDataTransfer:
		return c != CPU_ARMv3 && c != CPU_ARMv3M
	case InstructionClass_MultiplyLong:
		return c != CPU_ARMv3
	}

	return true
}

// Returns all the supported core variants
func CPUs() []CPU {
	return utils.Iota(int(TOTAL_CPUS), func(i int) CPU { return CPU(i) })
}

// Parses a core variant name (generic, armv3, armv3m, armv4, armv4t). An empty name means generic
func ParseCPU(name string) (CPU, error) {
	if strings.TrimSpace(name) == "" {
		return CPU_Generic, nil
	}

	for i, cpuName := range cpuNames {
		if strings.EqualFold(strings.TrimSpace(name), cpuName) {
			return CPU(i), nil
		}
	}

	return CPU_Generic, utils.MakeError(ErrInvalidCPU, "unknown cpu variant '%v'. Valid variants: %v", name, utils.FormatSlice(cpuNames[:], ", "))
}
