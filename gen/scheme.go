package gen

import (
	"strconv"
	"strings"

	"git.thinkinpower.net/cardgen/mod"
)

//mastercard扩展号段
const (
	mastercardRangeStart = 222100
	mastercardRangeEnd   = 272099
)

// Classify maps a validated BIN to its scheme and total card number
// length. Branch order is a behavioral contract: the prefix checks run
// before the 2221xx-2720xx numeric fallback and must not be reordered.
func Classify(bin string) (mod.Scheme, int) {
	//短BIN只看首位
	if len(bin) < 6 {
		switch bin[0] {
		case '4':
			return mod.SchemeVisa, mod.CardLengthDefault
		case '3':
			return mod.SchemeAmex, mod.CardLengthAmex
		default:
			return mod.SchemeUnknown, mod.CardLengthDefault
		}
	}

	switch {
	case strings.HasPrefix(bin, "4"):
		return mod.SchemeVisa, mod.CardLengthDefault
	case strings.HasPrefix(bin, "34"), strings.HasPrefix(bin, "37"):
		return mod.SchemeAmex, mod.CardLengthAmex
	case strings.HasPrefix(bin, "51"), strings.HasPrefix(bin, "52"),
		strings.HasPrefix(bin, "53"), strings.HasPrefix(bin, "54"),
		strings.HasPrefix(bin, "55"):
		return mod.SchemeMastercard, mod.CardLengthDefault
	}

	if value, err := strconv.Atoi(bin); err == nil &&
		value >= mastercardRangeStart && value <= mastercardRangeEnd {
		return mod.SchemeMastercard, mod.CardLengthDefault
	}
	return mod.SchemeUnknown, mod.CardLengthDefault
}
