// Package valueobject contains domain value objects for the Finex system.
package valueobject

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultProductCode is the code used when the operator is not known.
const DefaultProductCode = "PRD001"

// maxSuffixDigits bounds the numeric suffix read from an existing code.
const maxSuffixDigits = 9

// codePrefixLength is the number of characters of the operator name used as prefix.
const codePrefixLength = 3

// CodePrefix returns the upper-cased first three characters of the operator name.
// Shorter names are used whole; the prefix itself is never padded.
func CodePrefix(operatorName string) string {
	runes := []rune(operatorName)
	if len(runes) > codePrefixLength {
		runes = runes[:codePrefixLength]
	}
	return strings.ToUpper(string(runes))
}

// NextProductCode computes prefix + (max suffix + 1) zero-padded to at least three digits.
// Codes not starting with prefix are ignored. A suffix is read from its leading digits,
// so an empty, non-numeric or oversized remainder counts as zero.
func NextProductCode(prefix string, existing []string) string {
	highest := 0
	for _, code := range existing {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		if n := leadingNumber(strings.TrimPrefix(code, prefix)); n > highest {
			highest = n
		}
	}
	return FormatProductCode(prefix, highest+1)
}

// FormatProductCode formats a sequence number under prefix, e.g. JOA + 4 -> JOA004.
func FormatProductCode(prefix string, sequence int) string {
	return fmt.Sprintf("%s%03d", prefix, sequence)
}

// leadingNumber reads the leading digits of s. Runs longer than maxSuffixDigits count as zero.
func leadingNumber(s string) int {
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(s)
	}
	if end == 0 || end > maxSuffixDigits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
