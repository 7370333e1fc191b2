package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc4d3/diskpassthru/internal/config"
	"github.com/arc4d3/diskpassthru/internal/eligible"
	"github.com/arc4d3/diskpassthru/internal/resolve"
	"github.com/arc4d3/diskpassthru/internal/scan"
)

var disksCmd = &cobra.Command{
	Use:   "disks",
	Short: "List disks eligible for passthrough",
	Long: `List the physical disks that could be passed through to a VM.

A disk is eligible when it is not an ONLINE member of any ZFS pool and has a
persistent identifier path under /dev/disk/by-id. WWN paths are preferred
over bus-position paths when a disk has both.`,
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		disks := eligibleDisks(cfg)
		if jsonOut {
			printJSON(disks)
			return
		}
		if len(disks) == 0 {
			fmt.Println("No physical disks available.")
			return
		}
		printDiskMenu(disks)
	},
}

// eligibleDisks wires the real host queries into the eligibility filter.
func eligibleDisks(cfg *config.Config) []eligible.Disk {
	return eligible.Gather(
		scan.LsblkLister{},
		scan.ZpoolClaims{},
		scan.AliasDirs{Dirs: cfg.AliasDirs},
		resolve.Rules(cfg.PreferredIDs),
	)
}

func printDiskMenu(disks []eligible.Disk) {
	name := color.New(color.FgCyan, color.Bold)
	for i, d := range disks {
		fmt.Printf("[%d] %s  %s  serial=%s  size=%s\n", i+1, name.Sprint(d.Name), d.Model, d.Serial, d.Size)
		fmt.Printf("    %s\n", d.IDPath)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}
