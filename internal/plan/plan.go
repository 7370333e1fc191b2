// Package plan turns validated operator selections into attachment commands.
package plan

import (
	"errors"

	"github.com/arc4d3/diskpassthru/internal/allocate"
	"github.com/arc4d3/diskpassthru/internal/config"
	"github.com/arc4d3/diskpassthru/internal/eligible"
	"github.com/arc4d3/diskpassthru/internal/qm"
)

var (
	// ErrStaleDisks means a selected disk no longer matches the enumerated set.
	ErrStaleDisks = errors.New("selected disks do not match the enumerated disk set")
	// ErrStaleVM means the selected VM no longer matches the listed set.
	ErrStaleVM = errors.New("selected VM does not match the listed VM set")
)

// Request carries the operator's selections together with the snapshots they
// were made against.
type Request struct {
	Disks    []eligible.Disk
	DiskPool []eligible.Disk
	VM       qm.VM
	VMs      []qm.VM
	Occupied map[int]struct{}
}

// Build re-validates both selections against their snapshots and renders one
// attach command per selected disk, in selection order. Either every command
// is produced or none is; a stale selection rejects the whole operation.
func Build(req Request, cfg *config.Config) ([]string, error) {
	if !eligible.SelectionValid(req.Disks, req.DiskPool) {
		return nil, ErrStaleDisks
	}
	if !qm.Known(req.VM, req.VMs) {
		return nil, ErrStaleVM
	}
	commands := make([]string, 0, len(req.Disks))
	for _, a := range allocate.Slots(req.Occupied, req.Disks) {
		commands = append(commands, qm.AttachCommand(cfg.AttachCommand, req.VM.ID, cfg.Controller, a.Index, a.Disk.IDPath))
	}
	return commands, nil
}
