package scan

import (
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// ZpoolClaims reports devices held by ZFS pools, via zpool status.
type ZpoolClaims struct{}

// Claimed runs zpool status and collects the device names of all ONLINE pool
// members. A failed command yields an error; callers must treat that as
// "enumeration unavailable" rather than "nothing is claimed".
func (ZpoolClaims) Claimed() (map[string]struct{}, error) {
	out, err := exec.Command("zpool", "status").Output()
	if err != nil {
		log.Error().Err(err).Msg("zpool status query failed")
		return nil, err
	}
	return ParseClaimed(string(out)), nil
}

// ParseClaimed extracts the first token of every line carrying the ONLINE
// marker. Besides member devices this picks up pool and vdev names, which is
// harmless since those never collide with kernel device names.
func ParseClaimed(out string) map[string]struct{} {
	claimed := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "ONLINE") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			claimed[fields[0]] = struct{}{}
		}
	}
	return claimed
}
