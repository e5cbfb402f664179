package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var hexWordPattern = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]{1,8}$`)

// ValidateHexWord checks that input is a 32-bit hex word, with or without a
// 0x prefix.
func ValidateHexWord(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex word cannot be empty")
	}

	if !hexWordPattern.MatchString(input) {
		return fmt.Errorf("'%s' is not a 32-bit hex word", input)
	}

	return nil
}

// ValidateSeedWords checks that words form a complete register seed: exactly
// five 32-bit hex words.
func ValidateSeedWords(words []string, registerSize int) error {
	if len(words) != registerSize {
		return fmt.Errorf("seed must have exactly %d words, got %d", registerSize, len(words))
	}

	for i, word := range words {
		if err := ValidateHexWord(word); err != nil {
			return fmt.Errorf("seed word %d: %w", i, err)
		}
	}

	return nil
}

// ValidateSteps checks that a step count is usable.
func ValidateSteps(steps int) error {
	if steps < 0 {
		return fmt.Errorf("steps cannot be negative, got %d", steps)
	}
	return nil
}
