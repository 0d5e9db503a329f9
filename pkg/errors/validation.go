package errors

import (
	"math"
	"regexp"
	"unicode"
)

// MaxPriority is the strongest priority a host engine accepts ("required").
const MaxPriority = 1000

// ValidateMultiplier rejects multipliers the host engine cannot represent.
// A multiplier must be finite and non-zero; zero collapses the second item out
// of the expression and is reported rather than silently accepted.
func ValidateMultiplier(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return New(ErrCodeInvalidInput, "multiplier must be finite, got %v", m)
	}
	if m == 0 {
		return New(ErrCodeInvalidInput, "multiplier must not be zero")
	}
	return nil
}

// ValidateConstant rejects NaN and infinite constants.
func ValidateConstant(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return New(ErrCodeInvalidInput, "constant must be finite, got %v", c)
	}
	return nil
}

// ValidatePriority checks that p lies in the host's priority range (0, 1000].
func ValidatePriority(p float64) error {
	if math.IsNaN(p) || p <= 0 || p > MaxPriority {
		return New(ErrCodeInvalidPriority, "priority must be in (0, %d], got %v", MaxPriority, p)
	}
	return nil
}

// ValidateIdentifier validates a constraint identifier.
//
// The validation rules are intentionally conservative:
//   - Empty identifiers are allowed (they clear a tag)
//   - No control characters
//   - Maximum length of 256 characters
func ValidateIdentifier(id string) error {
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "identifier too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier contains invalid control characters")
		}
	}
	return nil
}

// elementIDRegex matches element ids accepted in blueprints.
var elementIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateElementID validates an element id declared in a blueprint.
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidFormat, "element id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidFormat, "element id too long (max 128 characters)")
	}
	if !elementIDRegex.MatchString(id) {
		return New(ErrCodeInvalidFormat, "invalid element id: %q", id)
	}
	return nil
}
