package scan

import (
	"os"
	"path/filepath"
)

// AliasDirs scans /dev/disk/by-* style directories for symlinks that point at
// a kernel device.
type AliasDirs struct {
	Dirs []string
}

// Aliases returns every symlink in the configured directories whose target
// names the given device. An unreadable directory contributes nothing; a
// device with no aliases is a legitimate empty result, not an error.
func (a AliasDirs) Aliases(name string) ([]string, error) {
	var paths []string
	for _, dir := range a.Dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			link := filepath.Join(dir, entry.Name())
			target, err := os.Readlink(link)
			if err != nil {
				continue
			}
			if filepath.Base(target) == name {
				paths = append(paths, link)
			}
		}
	}
	return paths, nil
}
