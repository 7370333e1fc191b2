// Package qm wraps the read-only Proxmox hypervisor queries: VM listing, VM
// configuration, and attach command rendering. All mutating commands are only
// ever rendered as text, never executed.
package qm

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arc4d3/diskpassthru/internal/scan"
)

// VM is a point-in-time row from the hypervisor's VM listing.
type VM struct {
	ID     int    `json:"vmid"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// List enumerates the VMs known to the hypervisor. A failed command yields an
// error; callers treat that as an empty listing.
func List() ([]VM, error) {
	out, err := exec.Command("qm", "list").Output()
	if err != nil {
		log.Error().Err(err).Msg("qm list query failed")
		return nil, err
	}
	return ParseList(string(out)), nil
}

// ParseList parses qm list output: header row dropped, then one VM per row as
// id, name, and the status remainder. Rows without an integer id are dropped
// as malformed.
func ParseList(out string) []VM {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return nil
	}
	var vms []VM
	for _, line := range lines[1:] {
		cols := scan.Columns(line, 3)
		if len(cols) != 3 {
			continue
		}
		id, err := strconv.Atoi(cols[0])
		if err != nil {
			continue
		}
		vms = append(vms, VM{ID: id, Name: cols[1], Status: cols[2]})
	}
	return vms
}

// UsedIndexes returns the controller slot indexes already occupied on a VM.
// A failed query yields an empty set; slot allocation then starts at zero and
// the hypervisor remains the authority that rejects a colliding attach.
func UsedIndexes(vmid int, controller string) map[int]struct{} {
	out, err := exec.Command("qm", "config", strconv.Itoa(vmid)).Output()
	if err != nil {
		log.Error().Err(err).Int("vmid", vmid).Msg("qm config query failed")
		return map[int]struct{}{}
	}
	return ParseUsedIndexes(string(out), controller)
}

// ParseUsedIndexes extracts occupied slot numbers from VM config lines of the
// form <controller><n>: ...
func ParseUsedIndexes(out, controller string) map[int]struct{} {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(controller) + `(\d+):`)
	used := make(map[int]struct{})
	for _, line := range strings.Split(out, "\n") {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			used[n] = struct{}{}
		}
	}
	return used
}

// Known reports whether the selected VM exactly matches an entry of the
// listing snapshot.
func Known(selected VM, vms []VM) bool {
	for _, vm := range vms {
		if vm == selected {
			return true
		}
	}
	return false
}

// AttachCommand renders the literal hypervisor command attaching a disk at a
// controller slot, e.g. "qm set 100 -scsi1 /dev/disk/by-id/wwn-0x123".
func AttachCommand(attach string, vmid int, controller string, index int, idPath string) string {
	return fmt.Sprintf("%s %d -%s%d %s", attach, vmid, controller, index, idPath)
}
