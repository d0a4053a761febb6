package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
)

// Controls how an [Encoder] treats operands that do not fit their instruction fields
type Policy uint

const (
	// Reject out of range operands and caller contract violations with [ErrInvalidOperand]
	Policy_Strict Policy = iota
	// Truncate every operand to its field width, as the package level encoders do
	Policy_Wrap

	TOTAL_POLICIES
)

var policyNames = [TOTAL_POLICIES]string{"strict", "wrap"}

func (p Policy) String() string {
	if p < TOTAL_POLICIES {
		return policyNames[p]
	}

	return fmt.Sprintf("Policy(%d)", uint(p))
}

// Parses an encoding policy name (strict, wrap). An empty name means strict
func ParsePolicy(name string) (Policy, error) {
	if strings.TrimSpace(name) == "" {
		return Policy_Strict, nil
	}

	for i, policyName := range policyNames {
		if strings.EqualFold(strings.TrimSpace(name), policyName) {
			return Policy(i), nil
		}
	}

	return Policy_Strict, utils.MakeError(ErrInvalidPolicy, "unknown encoding policy '%v'. Valid policies: %v", name, utils.FormatSlice(policyNames[:], ", "))
}
