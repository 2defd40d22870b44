package gen

// IsValidBin reports whether s is a usable BIN: all decimal digits and
// exactly 3, 4 or 6 characters long. Anything else, including length 5,
// is rejected.
func IsValidBin(s string) bool {
	switch len(s) {
	case 3, 4, 6:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
