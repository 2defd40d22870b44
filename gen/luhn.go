package gen

// luhnChecksum sums the digits of number right to left, doubling every
// second digit and folding doubled values above 9 back into one digit,
// then reduces the total mod 10.
func luhnChecksum(number string) int {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum % 10
}

// LuhnValid reports whether number passes the Luhn check.
func LuhnValid(number string) bool {
	return luhnChecksum(number) == 0
}

// luhnCheckDigit searches the digit that makes partial+digit Luhn valid.
// Exactly one such digit exists for any digit string; ok is false only
// if that invariant is ever broken.
func luhnCheckDigit(partial string) (byte, bool) {
	for d := byte('0'); d <= '9'; d++ {
		if luhnChecksum(partial+string(d)) == 0 {
			return d, true
		}
	}
	return 0, false
}
