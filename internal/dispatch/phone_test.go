package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/smstask/internal/dispatch"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "international kept", raw: "+33 6 12 34 56 78", expected: "+33612345678"},
		{name: "country code without plus", raw: "237677000000", expected: "+237677000000"},
		{name: "national with leading zero", raw: "0677000000", expected: "+237677000000"},
		{name: "nine digit local", raw: "677-00-00-00", expected: "+237677000000"},
		{name: "short number unchanged", raw: "8000", expected: "8000"},
		{name: "leading zero too short", raw: "067700", expected: "067700"},
		{name: "letters stripped", raw: "tel: 677 000 000", expected: "+237677000000"},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dispatch.FormatPhoneNumber(tt.raw, ""))
		})
	}
}

func TestFormatPhoneNumber_CustomCountryCode(t *testing.T) {
	assert.Equal(t, "+225070000000", dispatch.FormatPhoneNumber("070000000", "225"))
	assert.Equal(t, "+225070000000", dispatch.FormatPhoneNumber("0070000000", "225"))
}

func TestMaskPhoneNumber(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "+237677001234", expected: "+********1234"},
		{raw: "677001234", expected: "*****1234"},
		{raw: "+123", expected: "+***"},
		{raw: "123", expected: "***"},
		{raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, dispatch.MaskPhoneNumber(tt.raw))
		})
	}
}
