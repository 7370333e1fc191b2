package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasDirs(t *testing.T) {
	dir := t.TempDir()
	link := func(name, target string) {
		require.NoError(t, os.Symlink(target, filepath.Join(dir, name)))
	}
	link("ata-ModelX_S1", "../../sda")
	link("wwn-0x123", "../../sda")
	link("ata-ModelX_S1-part1", "../../sda1")
	link("wwn-0x456", "../../sdb")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notalink"), []byte("sda"), 0o644))

	a := AliasDirs{Dirs: []string{dir, filepath.Join(dir, "missing")}}

	t.Run("returns every link targeting the device", func(t *testing.T) {
		paths, err := a.Aliases("sda")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "ata-ModelX_S1"),
			filepath.Join(dir, "wwn-0x123"),
		}, paths)
	})
	t.Run("partition links do not match the whole device", func(t *testing.T) {
		paths, err := a.Aliases("sda1")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "ata-ModelX_S1-part1")}, paths)
	})
	t.Run("unknown device has no aliases", func(t *testing.T) {
		paths, err := a.Aliases("sdz")
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}
