package dispatch_test

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/smstask/internal/dispatch"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected dispatch.Encoding
	}{
		{name: "plain ascii", text: "Votre code est 1234", expected: dispatch.EncodingGSM7},
		{name: "gsm accents", text: "Réunion à 10h, née à Yaoundé", expected: dispatch.EncodingGSM7},
		{name: "extension chars", text: "Total: 50€ [promo]", expected: dispatch.EncodingGSM7},
		{name: "cedilla lowercase is not gsm", text: "garçon", expected: dispatch.EncodingUCS2},
		{name: "emoji", text: "Merci 🙏", expected: dispatch.EncodingUCS2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dispatch.DetectEncoding(tt.text))
		})
	}
}

func TestDivideMessage_GSM(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedParts int
	}{
		{name: "empty", text: "", expectedParts: 1},
		{name: "exactly single", text: strings.Repeat("a", 160), expectedParts: 1},
		{name: "one over single", text: strings.Repeat("a", 161), expectedParts: 2},
		{name: "two full parts", text: strings.Repeat("a", 306), expectedParts: 2},
		{name: "three parts", text: strings.Repeat("a", 307), expectedParts: 3},
		{name: "extension chars count double", text: strings.Repeat("€", 81), expectedParts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := dispatch.DivideMessage(tt.text)
			require.Len(t, parts, tt.expectedParts)
			assert.Equal(t, tt.text, strings.Join(parts, ""))
		})
	}
}

func TestDivideMessage_ExtensionCharNotSplit(t *testing.T) {
	text := strings.Repeat("a", 152) + "€" + strings.Repeat("b", 10)

	parts := dispatch.DivideMessage(text)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("a", 152), parts[0])
	assert.True(t, strings.HasPrefix(parts[1], "€"))
}

func TestDivideMessage_UCS2(t *testing.T) {
	single := strings.Repeat("ç", 70)
	assert.Len(t, dispatch.DivideMessage(single), 1)

	multi := strings.Repeat("ç", 71)
	parts := dispatch.DivideMessage(multi)
	require.Len(t, parts, 2)
	assert.Equal(t, 67, len([]rune(parts[0])))
	assert.Equal(t, 4, len([]rune(parts[1])))
}

func TestDivideMessage_SurrogatePairsStayWhole(t *testing.T) {
	text := strings.Repeat("x", 66) + "🙏" + strings.Repeat("y", 10)

	parts := dispatch.DivideMessage(text)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("x", 66), parts[0])
	for _, p := range parts {
		assert.LessOrEqual(t, len(utf16.Encode([]rune(p))), 67)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}
