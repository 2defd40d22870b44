package export

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"

	"git.thinkinpower.net/cardgen/data"
	"git.thinkinpower.net/cardgen/mod"
)

const fileExt = ".txt"

// Line renders one record in the delivery format: number|MM|YYYY|CVV.
func Line(record mod.CardRecord) string {
	return strings.Join([]string{record.Number, record.ExpiryMonth, record.ExpiryYear, record.Cvv}, "|")
}

// Filename builds cards_<bin>_<quantity>_<timestamp>.txt.
func Filename(bin string, quantity int, now time.Time) string {
	return fmt.Sprintf("cards_%s_%d_%s%s", bin, quantity, now.Format(data.DateTimePatternCompact), fileExt)
}

// Write dumps a batch into dir, one record per line, no header, and
// returns the file path.
func Write(dir, bin string, records []mod.CardRecord) (string, error) {
	if dir == "" {
		return "", errors.New("存储地址未配置")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create export dir %s", dir)
	}

	filepath := path.Join(dir, Filename(bin, len(records), time.Now()))
	f, err := os.OpenFile(filepath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", errors.Wrapf(err, "open export file %s", filepath)
	}
	defer func() {
		f.Close()
	}()

	w := bufio.NewWriter(f)
	for _, record := range records {
		if _, err = w.WriteString(Line(record) + "\n"); err != nil {
			return "", errors.Wrapf(err, "write export file %s", filepath)
		}
	}
	if err = w.Flush(); err != nil {
		return "", errors.Wrapf(err, "flush export file %s", filepath)
	}
	return filepath, nil
}
