// Package allocate assigns controller slot indexes to disks pending
// attachment. It is a pure function of the occupied set and the disk order,
// with no I/O.
package allocate

import (
	"github.com/arc4d3/diskpassthru/internal/eligible"
)

// Assignment pairs a disk with the controller slot it should occupy.
type Assignment struct {
	Index int
	Disk  eligible.Disk
}

// Slots assigns each disk the smallest slot index not yet taken, scanning
// upward from zero. occupied is not modified. Every produced index is
// distinct from the occupied set and from the other produced indexes, and
// there is exactly one assignment per disk, in input order. No upper bound is
// enforced here; the hypervisor rejects an over-limit slot at apply time.
func Slots(occupied map[int]struct{}, disks []eligible.Disk) []Assignment {
	taken := make(map[int]struct{}, len(occupied))
	for i := range occupied {
		taken[i] = struct{}{}
	}
	assignments := make([]Assignment, 0, len(disks))
	cursor := 0
	for _, disk := range disks {
		for {
			if _, ok := taken[cursor]; !ok {
				break
			}
			cursor++
		}
		taken[cursor] = struct{}{}
		assignments = append(assignments, Assignment{Index: cursor, Disk: disk})
	}
	return assignments
}
