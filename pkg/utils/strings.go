package utils

import (
	"fmt"
	"strings"
)

// Formats the value as a binary string zero padded to the given number of bits
func FormatUintBinary(value uint64, bits int) string {
	return fmt.Sprintf("%0*b", bits, value)
}

// Formats the value as a 0x prefixed hex string zero padded to the given number of digits
func FormatUintHex(value uint64, digits int) string {
	return fmt.Sprintf("0x%0*x", digits, value)
}

// Joins the formatted items of a sequence with a separator
func FormatSlice[T any](input []T, separator string) string {
	return strings.Join(Map(input, func(item T) string { return fmt.Sprint(item) }), separator)
}
