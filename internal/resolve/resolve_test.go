package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	wwn := "/dev/disk/by-id/wwn-0x5000c500d006891c"
	ata := "/dev/disk/by-id/ata-ST8000NM0055_ZA1D2E3F"

	t.Run("no aliases means no identifier", func(t *testing.T) {
		_, ok := Pick(nil, DefaultRules)
		assert.False(t, ok)
	})
	t.Run("single alias is taken even without a marker", func(t *testing.T) {
		path, ok := Pick([]string{ata}, DefaultRules)
		assert.True(t, ok)
		assert.Equal(t, ata, path)
	})
	t.Run("wwn wins regardless of enumeration order", func(t *testing.T) {
		for _, aliases := range [][]string{{wwn, ata}, {ata, wwn}} {
			path, ok := Pick(aliases, DefaultRules)
			assert.True(t, ok)
			assert.Equal(t, wwn, path)
		}
	})
	t.Run("first alias when no rule matches", func(t *testing.T) {
		scsi := "/dev/disk/by-id/scsi-35000c500d006891c"
		path, ok := Pick([]string{ata, scsi}, DefaultRules)
		assert.True(t, ok)
		assert.Equal(t, ata, path)
	})
	t.Run("configured markers are ranked in order", func(t *testing.T) {
		eui := "/dev/disk/by-id/nvme-eui.002538b721b12345"
		rules := Rules([]string{"nvme-eui.", "wwn-"})
		path, ok := Pick([]string{wwn, eui}, rules)
		assert.True(t, ok)
		assert.Equal(t, eui, path)
	})
	t.Run("no markers falls back to the wwn preference", func(t *testing.T) {
		path, ok := Pick([]string{ata, wwn}, Rules(nil))
		assert.True(t, ok)
		assert.Equal(t, wwn, path)
	})
}
