// Package eligible computes the subset of host disks that are safe to pass
// through to a VM.
package eligible

import (
	"github.com/arc4d3/diskpassthru/internal/resolve"
	"github.com/arc4d3/diskpassthru/internal/scan"
)

// Disk is a block device cleared for passthrough: not claimed by a storage
// pool, and reachable through a stable identifier path.
type Disk struct {
	scan.Device
	IDPath string `json:"id_path"`
}

// Gather runs the host queries and filters the result. A device or pool query
// that cannot run at all yields an empty set: a missing pool-membership view
// could mark a pool member as eligible, so nothing beats something here.
func Gather(lister scan.Lister, claims scan.Claims, aliases scan.AliasQuery, rules []resolve.Rule) []Disk {
	devices, err := lister.Devices()
	if err != nil {
		return nil
	}
	claimed, err := claims.Claimed()
	if err != nil {
		return nil
	}
	return Filter(devices, claimed, aliases, rules)
}

// Filter computes the passthrough-eligible subset of devices, preserving
// enumeration order. A device is dropped when any of its fields is empty,
// when its name is claimed by a pool, or when no persistent identifier
// resolves for it. A disk whose kernel name may be reassigned on reboot must
// never be attached by that name, so unresolved devices are ineligible rather
// than attached as /dev/<name>.
func Filter(devices []scan.Device, claimed map[string]struct{}, aliases scan.AliasQuery, rules []resolve.Rule) []Disk {
	var disks []Disk
	for _, dev := range devices {
		if dev.Name == "" || dev.Model == "" || dev.Serial == "" || dev.Size == "" {
			continue
		}
		if _, ok := claimed[dev.Name]; ok {
			continue
		}
		paths, err := aliases.Aliases(dev.Name)
		if err != nil {
			continue
		}
		idPath, ok := resolve.Pick(paths, rules)
		if !ok {
			continue
		}
		disks = append(disks, Disk{Device: dev, IDPath: idPath})
	}
	return disks
}

// SelectionValid reports whether every selected disk still matches, field for
// field, an entry of the reference set the operator chose from. Any drift
// between selection time and command generation invalidates the whole
// selection.
func SelectionValid(selected, reference []Disk) bool {
	for _, sel := range selected {
		found := false
		for _, ref := range reference {
			if sel == ref {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
