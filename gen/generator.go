package gen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"git.thinkinpower.net/cardgen/mod"
)

//校验位搜索失败后的重试上限, 理论上一次就成功
const maxSynthesisAttempts = 3

//有效期区间, 单位为月
const (
	minMonthsAhead = 6
	maxMonthsAhead = 60
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies
// it; tests inject a fixed-seed source for deterministic output.
type Rand interface {
	Intn(n int) int
}

// Generator synthesizes card records. It holds no state besides its
// random source and clock, so every call is an independent computation.
type Generator struct {
	rnd Rand
	now func() time.Time
}

// NewGenerator returns a time-seeded generator with the wall clock.
func NewGenerator() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// New builds a generator from an explicit random source and clock.
func New(rnd Rand, now func() time.Time) *Generator {
	return &Generator{rnd: rnd, now: now}
}

// GenerateNumber expands bin into a Luhn-valid digit string of exactly
// totalLength digits. The BIN seeds the number up to a scheme-dependent
// cap (4 digits for 15-digit numbers, 6 otherwise); the rest is filled
// with uniform random digits before the check digit is appended.
func (g *Generator) GenerateNumber(bin string, totalLength int) (string, error) {
	prefix := numberPrefix(bin, totalLength)
	digitsBeforeCheck := totalLength - 1

	for attempt := 0; attempt < maxSynthesisAttempts; attempt++ {
		var partial string
		if len(prefix) >= digitsBeforeCheck {
			partial = prefix[:digitsBeforeCheck]
		} else {
			var b strings.Builder
			b.Grow(totalLength)
			b.WriteString(prefix)
			for b.Len() < digitsBeforeCheck {
				b.WriteByte(byte('0' + g.rnd.Intn(10)))
			}
			partial = b.String()
		}

		check, ok := luhnCheckDigit(partial)
		if !ok {
			continue
		}
		number := partial + string(check)
		//最后再校验一遍
		if LuhnValid(number) {
			return number, nil
		}
	}
	return "", errors.Errorf("luhn synthesis did not converge for bin %s after %d attempts", bin, maxSynthesisAttempts)
}

// numberPrefix picks how much of the BIN seeds the number. 15-digit
// (amex shaped) numbers keep at most the first 4 BIN digits, zero padded
// when the BIN is shorter; 16-digit numbers keep up to the first 6.
func numberPrefix(bin string, totalLength int) string {
	if totalLength == mod.CardLengthAmex {
		if len(bin) >= 4 {
			return bin[:4]
		}
		return bin + strings.Repeat("0", 4-len(bin))
	}
	if len(bin) >= 6 {
		return bin[:6]
	}
	if len(bin) >= 4 {
		return bin[:4]
	}
	return bin
}

// GenerateExpiry picks an expiry 6 to 60 calendar months ahead of the
// generator's clock and returns it as (MM, YYYY).
func (g *Generator) GenerateExpiry() (string, string) {
	monthsAhead := minMonthsAhead + g.rnd.Intn(maxMonthsAhead-minMonthsAhead+1)
	expiry := g.now().AddDate(0, monthsAhead, 0)
	return fmt.Sprintf("%02d", int(expiry.Month())), strconv.Itoa(expiry.Year())
}

// GenerateCvv sizes the verification code off the number length: 4
// digits for 15-digit numbers, 3 otherwise.
func (g *Generator) GenerateCvv(number string) string {
	if len(number) == mod.CardLengthAmex {
		return strconv.Itoa(1000 + g.rnd.Intn(9000))
	}
	return strconv.Itoa(100 + g.rnd.Intn(900))
}

// GenerateCard synthesizes one record from a validated BIN.
func (g *Generator) GenerateCard(bin string) (mod.CardRecord, error) {
	_, totalLength := Classify(bin)
	number, err := g.GenerateNumber(bin, totalLength)
	if err != nil {
		return mod.CardRecord{}, err
	}
	month, year := g.GenerateExpiry()
	return mod.CardRecord{
		Number:      number,
		ExpiryMonth: month,
		ExpiryYear:  year,
		Cvv:         g.GenerateCvv(number),
	}, nil
}

// GenerateBatch produces quantity records against one BIN. The batch is
// all or nothing: any synthesis error aborts it with no partial output.
// Quantity is assumed already bounded by the caller.
func (g *Generator) GenerateBatch(bin string, quantity int) ([]mod.CardRecord, error) {
	var records []mod.CardRecord
	for i := 0; i < quantity; i++ {
		record, err := g.GenerateCard(bin)
		if err != nil {
			return nil, errors.Wrapf(err, "batch aborted at record %d", i)
		}
		records = append(records, record)
	}
	return records, nil
}
