package export

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"git.thinkinpower.net/cardgen/mod"
)

var testRecords = []mod.CardRecord{
	{Number: "4111111111111111", ExpiryMonth: "04", ExpiryYear: "2028", Cvv: "123"},
	{Number: "378282246310005", ExpiryMonth: "11", ExpiryYear: "2030", Cvv: "4321"},
}

func TestLine(t *testing.T) {
	assert.Equal(t, "4111111111111111|04|2028|123", Line(testRecords[0]))
	assert.Equal(t, "378282246310005|11|2030|4321", Line(testRecords[1]))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "cards_411111_2_20260310123045.txt", Filename("411111", 2, now))
}

func TestWrite(t *testing.T) {
	dir, err := ioutil.TempDir("", "cardgen-export")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	filepath, err := Write(dir, "411111", testRecords)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path.Base(filepath), "cards_411111_2_"))

	content, err := ioutil.ReadFile(filepath)
	assert.NoError(t, err)
	assert.Equal(t, "4111111111111111|04|2028|123\n378282246310005|11|2030|4321\n", string(content))
}

func TestWriteWithoutDir(t *testing.T) {
	_, err := Write("", "411111", testRecords)
	assert.Error(t, err)
}

func TestCleanerPrune(t *testing.T) {
	dir, err := ioutil.TempDir("", "cardgen-cleaner")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	expired := path.Join(dir, "cards_411111_1_20260310120000.txt")
	fresh := path.Join(dir, "cards_540000_1_20260310125500.txt")
	assert.NoError(t, ioutil.WriteFile(expired, []byte("x\n"), 0644))
	assert.NoError(t, ioutil.WriteFile(fresh, []byte("y\n"), 0644))

	now := time.Now()
	c := NewCleaner(dir, 30*time.Minute)
	c.created[expired] = now.Add(-time.Hour)
	c.created[fresh] = now.Add(-time.Minute)

	c.prune(now)

	_, err = os.Stat(expired)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	assert.NotContains(t, c.created, expired)
	assert.Contains(t, c.created, fresh)
}

func TestCleanerPrepare(t *testing.T) {
	dir, err := ioutil.TempDir("", "cardgen-prepare")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	exportFile := path.Join(dir, "cards_411111_1_20260310120000.txt")
	other := path.Join(dir, "notes.md")
	assert.NoError(t, ioutil.WriteFile(exportFile, []byte("x\n"), 0644))
	assert.NoError(t, ioutil.WriteFile(other, []byte("y\n"), 0644))

	c := NewCleaner(dir, 30*time.Minute)
	c.prepare()

	assert.Contains(t, c.created, exportFile)
	assert.NotContains(t, c.created, other)
}
