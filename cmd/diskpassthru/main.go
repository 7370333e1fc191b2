package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arc4d3/diskpassthru/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "diskpassthru",
	Short: "Physical disk passthrough planner for Proxmox VMs",
	Long: `diskpassthru enumerates the physical disks on a Proxmox host (excluding
ZFS pool members), lists the VMs, and generates the 'qm set' commands that
attach the chosen disks to the chosen VM by persistent identifier path.

Nothing is ever executed against the host or hypervisor; review the generated
commands and run them yourself.`,
	Run: runPlan,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/diskpassthru/config.yaml)")

	disksCmd.Flags().Bool("json", false, "Output as JSON")
	vmsCmd.Flags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(disksCmd)
	rootCmd.AddCommand(vmsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
