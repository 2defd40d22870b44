package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.thinkinpower.net/cardgen/mod"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		bin    string
		scheme mod.Scheme
		length int
	}{
		//短BIN只看首位
		{"4111", mod.SchemeVisa, 16},
		{"411", mod.SchemeVisa, 16},
		{"300", mod.SchemeAmex, 15},
		{"371", mod.SchemeAmex, 15},
		{"510", mod.SchemeUnknown, 16},
		{"2221", mod.SchemeUnknown, 16},
		{"999", mod.SchemeUnknown, 16},
		//6位BIN看号段
		{"400000", mod.SchemeVisa, 16},
		{"411111", mod.SchemeVisa, 16},
		{"340000", mod.SchemeAmex, 15},
		{"370000", mod.SchemeAmex, 15},
		{"360000", mod.SchemeUnknown, 16},
		{"510000", mod.SchemeMastercard, 16},
		{"530000", mod.SchemeMastercard, 16},
		{"550000", mod.SchemeMastercard, 16},
		{"560000", mod.SchemeUnknown, 16},
		{"222100", mod.SchemeMastercard, 16},
		{"250000", mod.SchemeMastercard, 16},
		{"272099", mod.SchemeMastercard, 16},
		{"222099", mod.SchemeUnknown, 16},
		{"272100", mod.SchemeUnknown, 16},
		{"999999", mod.SchemeUnknown, 16},
	}
	for _, tt := range tests {
		scheme, length := Classify(tt.bin)
		assert.Equal(t, tt.scheme, scheme, "bin %s", tt.bin)
		assert.Equal(t, tt.length, length, "bin %s", tt.bin)
	}
}

func TestClassifyPrefixBeatsRange(t *testing.T) {
	//落在2221xx-2720xx的号段判断之前, 34/37前缀必须先命中
	scheme, length := Classify("340000")
	assert.Equal(t, mod.SchemeAmex, scheme)
	assert.Equal(t, 15, length)
}
