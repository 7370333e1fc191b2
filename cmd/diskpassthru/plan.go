package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arc4d3/diskpassthru/internal/config"
	"github.com/arc4d3/diskpassthru/internal/eligible"
	"github.com/arc4d3/diskpassthru/internal/plan"
	"github.com/arc4d3/diskpassthru/internal/qm"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Interactively plan disk passthrough to a VM",
	Long: `Enumerate eligible physical disks, pick disks and a target VM, and print
the generated attachment commands.

Both selections are re-validated against the enumerated state before any
command is generated; a stale selection rejects the whole operation so that
no partial command list is ever produced.`,
	Run: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "plan needs an interactive terminal; use 'diskpassthru disks' and 'diskpassthru vms' for scripting")
		os.Exit(1)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Enumerating physical disks...")
	disks := eligibleDisks(cfg)
	if len(disks) == 0 {
		fmt.Println("No physical disks available.")
		return
	}
	printDiskMenu(disks)

	in := bufio.NewReader(os.Stdin)
	picks, err := promptIndexes(in, "Select disk indexes (comma-separated): ", len(disks))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid disk selection: %v\n", err)
		os.Exit(1)
	}
	selected := make([]eligible.Disk, 0, len(picks))
	for _, i := range picks {
		selected = append(selected, disks[i-1])
	}

	fmt.Println("\nListing VMs...")
	vms, err := qm.List()
	if err != nil || len(vms) == 0 {
		fmt.Println("No VMs found.")
		return
	}
	printVMMenu(vms)

	pick, err := promptIndex(in, "Select a VM index: ", len(vms))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid VM selection: %v\n", err)
		os.Exit(1)
	}
	vm := vms[pick-1]

	fmt.Println("\nValidating passthrough feasibility...")
	commands, err := plan.Build(plan.Request{
		Disks:    selected,
		DiskPool: disks,
		VM:       vm,
		VMs:      vms,
		Occupied: qm.UsedIndexes(vm.ID, cfg.Controller),
	}, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated commands:")
	for _, c := range commands {
		fmt.Println(c)
	}
}

// promptIndexes reads a comma-separated list of 1-based indexes. Anything
// that is not an integer in [1, max] aborts the run.
func promptIndexes(in *bufio.Reader, prompt string, max int) ([]int, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	var picks []int
	for _, part := range strings.Split(strings.TrimSpace(line), ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an index", part)
		}
		if n < 1 || n > max {
			return nil, fmt.Errorf("index %d out of range", n)
		}
		picks = append(picks, n)
	}
	return picks, nil
}

// promptIndex reads a single 1-based index.
func promptIndex(in *bufio.Reader, prompt string, max int) (int, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not an index", line)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("index %d out of range", n)
	}
	return n, nil
}
