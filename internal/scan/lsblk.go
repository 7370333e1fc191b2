package scan

import (
	"os/exec"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// LsblkLister enumerates physical disks via lsblk.
type LsblkLister struct{}

// Devices runs lsblk and parses its device table. A failed command yields an
// error; callers treat that as an empty enumeration.
func (LsblkLister) Devices() ([]Device, error) {
	out, err := exec.Command("lsblk", "-d", "-o", "NAME,MODEL,SERIAL,SIZE").Output()
	if err != nil {
		log.Error().Err(err).Msg("lsblk query failed")
		return nil, err
	}
	return ParseDevices(string(out)), nil
}

// modelGap matches a single space between two letters. lsblk leaves such
// spaces inside model strings, which would break column splitting.
var modelGap = regexp.MustCompile(`([a-zA-Z]) ([a-zA-Z])`)

// ParseDevices parses `lsblk -d -o NAME,MODEL,SERIAL,SIZE` output. Spaces
// inside model strings are rewritten to hyphens before splitting, the header
// row is dropped, and rows without four non-empty fields are dropped as
// malformed.
func ParseDevices(out string) []Device {
	out = modelGap.ReplaceAllString(out, "$1-$2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return nil
	}
	var devices []Device
	for _, line := range lines[1:] {
		cols := Columns(line, 4)
		if len(cols) != 4 {
			continue
		}
		devices = append(devices, Device{
			Name:   cols[0],
			Model:  cols[1],
			Serial: cols[2],
			Size:   cols[3],
		})
	}
	return devices
}

// Columns splits a table row on runs of whitespace into at most n columns.
// Text beyond the first n-1 separators stays in the final column.
func Columns(row string, n int) []string {
	var cols []string
	row = strings.TrimSpace(row)
	for len(cols) < n-1 {
		i := strings.IndexFunc(row, unicode.IsSpace)
		if i < 0 {
			break
		}
		cols = append(cols, row[:i])
		row = strings.TrimLeftFunc(row[i:], unicode.IsSpace)
	}
	if row != "" {
		cols = append(cols, row)
	}
	return cols
}
