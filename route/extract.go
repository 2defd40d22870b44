package route

import (
	"regexp"
	"strings"
)

var (
	binPrefixPattern = regexp.MustCompile(`(?i)^bin:?\s*`)
	binDigitsPattern = regexp.MustCompile(`\d{3,6}`)
)

// ExtractBin pulls a BIN-looking token out of free text. Accepts "123",
// "BIN: 1234", "bin 123456" and similar; returns "" when no run of 3-6
// digits is present. Longer digit runs yield their first 6 digits and
// are settled by validation afterwards.
func ExtractBin(text string) string {
	text = strings.TrimSpace(text)
	text = binPrefixPattern.ReplaceAllString(text, "")
	return binDigitsPattern.FindString(text)
}
