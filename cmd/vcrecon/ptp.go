package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/vcrecon/internal/recon"
)

var (
	ptpRead    bool
	ptpEnable  bool
	ptpDisable bool
)

var ptpCmd = &cobra.Command{
	Use:   "ptp",
	Short: "Reconcile the PTP (precision clock) device",
	Long: `Reconcile the presence of a VirtualPrecisionClock device on each VM.

The device can only be attached or removed while a VM is powered off. For
each VM that needs a change, the tool powers the VM off, applies the change,
and powers it back on - but only if the VM was running to begin with. A VM
found already powered off is left powered off.

Examples:
  vcrecon ptp -s vcenter.example.com -u admin@vsphere.local -v vm1,vm2,vm3 --read
  vcrecon ptp -s vcenter.example.com -u admin@vsphere.local -v vm1,vm2,vm3 --enable
  vcrecon ptp -s vcenter.example.com -u admin@vsphere.local -v vm1,vm2 --disable --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		desired := recon.DesiredState{Action: actionFromFlags(ptpRead, ptpEnable)}
		return runReconcile(recon.PTPDeviceFacet{}, desired)
	},
}

func init() {
	f := ptpCmd.Flags()
	f.BoolVar(&ptpRead, "read", false, "read the current PTP device status")
	f.BoolVar(&ptpEnable, "enable", false, "add the PTP device if not present")
	f.BoolVar(&ptpDisable, "disable", false, "remove the PTP device if present")

	ptpCmd.MarkFlagsOneRequired("read", "enable", "disable")
	ptpCmd.MarkFlagsMutuallyExclusive("read", "enable", "disable")
}
