package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc4d3/diskpassthru/internal/qm"
)

var vmsCmd = &cobra.Command{
	Use:   "vms",
	Short: "List VMs on this host",
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		vms, err := qm.List()
		if err != nil || len(vms) == 0 {
			if jsonOut {
				printJSON([]qm.VM{})
				return
			}
			fmt.Println("No VMs found.")
			return
		}
		if jsonOut {
			printJSON(vms)
			return
		}
		printVMMenu(vms)
	},
}

func printVMMenu(vms []qm.VM) {
	id := color.New(color.FgGreen, color.Bold)
	for i, vm := range vms {
		fmt.Printf("[%d] %s  %s  (%s)\n", i+1, id.Sprintf("%d", vm.ID), vm.Name, vm.Status)
	}
}
