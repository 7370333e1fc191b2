package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lsblkFixture = `NAME MODEL            SERIAL      SIZE
sda  QEMU HARDDISK    QM00013     32G
sdb  ST8000NM0055     ZA1D2E3F    7.3T
sdc  WDC WD40EFRX     4T
`

func TestParseDevices(t *testing.T) {
	t.Run("parses rows and hyphenates model spaces", func(t *testing.T) {
		devices := ParseDevices(lsblkFixture)
		require.Len(t, devices, 2)
		assert.Equal(t, Device{Name: "sda", Model: "QEMU-HARDDISK", Serial: "QM00013", Size: "32G"}, devices[0])
		assert.Equal(t, Device{Name: "sdb", Model: "ST8000NM0055", Serial: "ZA1D2E3F", Size: "7.3T"}, devices[1])
	})
	t.Run("drops rows with missing columns", func(t *testing.T) {
		for _, d := range ParseDevices(lsblkFixture) {
			assert.NotEqual(t, "sdc", d.Name)
		}
	})
	t.Run("header only yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseDevices("NAME MODEL SERIAL SIZE\n"))
	})
	t.Run("empty output yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseDevices(""))
	})
}

func TestColumns(t *testing.T) {
	t.Run("remainder stays in the last column", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d e"}, Columns("a b  c   d e", 4))
	})
	t.Run("short row yields fewer columns", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, Columns("  a b ", 4))
	})
	t.Run("blank row yields nothing", func(t *testing.T) {
		assert.Empty(t, Columns("   ", 4))
	})
}
