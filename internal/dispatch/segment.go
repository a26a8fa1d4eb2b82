package dispatch

import "strings"

const (
	gsmSingleLimit  = 160
	gsmPartLimit    = 153
	ucs2SingleLimit = 70
	ucs2PartLimit   = 67
)

// GSM 03.38 default alphabet, escape excluded.
const gsmBasic = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"

// Characters reached through the escape code; each costs two septets.
const gsmExtension = "\f^{}\\[~]|€"

// Encoding is the data coding the modem will use for a text.
type Encoding string

const (
	EncodingGSM7 Encoding = "GSM-7"
	EncodingUCS2 Encoding = "UCS-2"
)

func gsmCost(r rune) int {
	if strings.ContainsRune(gsmBasic, r) {
		return 1
	}
	if strings.ContainsRune(gsmExtension, r) {
		return 2
	}
	return 0
}

// DetectEncoding returns GSM-7 when every character is in the default alphabet or its extension.
func DetectEncoding(text string) Encoding {
	for _, r := range text {
		if gsmCost(r) == 0 {
			return EncodingUCS2
		}
	}
	return EncodingGSM7
}

// DivideMessage splits text into the parts of a concatenated SMS. A text that fits a single
// message comes back as one part; an empty text is one empty part.
func DivideMessage(text string) []string {
	if DetectEncoding(text) == EncodingGSM7 {
		return divide(text, gsmSingleLimit, gsmPartLimit, gsmCost)
	}
	return divide(text, ucs2SingleLimit, ucs2PartLimit, utf16Cost)
}

func utf16Cost(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

func divide(text string, single, part int, cost func(rune) int) []string {
	total := 0
	for _, r := range text {
		total += cost(r)
	}
	if total <= single {
		return []string{text}
	}

	var parts []string
	var b strings.Builder
	used := 0
	for _, r := range text {
		c := cost(r)
		if used+c > part {
			parts = append(parts, b.String())
			b.Reset()
			used = 0
		}
		b.WriteRune(r)
		used += c
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}
