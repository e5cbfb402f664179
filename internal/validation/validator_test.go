package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHexWord(t *testing.T) {
	tests := []struct {
		input     string
		wantError bool
	}{
		{"BE3CA984", false},
		{"0xBE3CA984", false},
		{"0X1c3", false},
		{"  FF  ", false},
		{"", true},
		{"xyz", true},
		{"BE3CA9841", true}, // 9 digits
		{"0x", true},
	}

	for _, tt := range tests {
		err := ValidateHexWord(tt.input)
		if tt.wantError {
			assert.Errorf(t, err, "input %q", tt.input)
		} else {
			assert.NoErrorf(t, err, "input %q", tt.input)
		}
	}
}

func TestValidateSeedWords(t *testing.T) {
	valid := []string{"BE3CA984", "974E6719", "86916EFF", "F52DACF9", "960329B5"}

	assert.NoError(t, ValidateSeedWords(valid, 5))
	assert.Error(t, ValidateSeedWords(valid[:4], 5))
	assert.Error(t, ValidateSeedWords(append(valid[:4:4], "nope"), 5))
}

func TestValidateSteps(t *testing.T) {
	assert.NoError(t, ValidateSteps(0))
	assert.NoError(t, ValidateSteps(64))
	assert.Error(t, ValidateSteps(-1))
}
