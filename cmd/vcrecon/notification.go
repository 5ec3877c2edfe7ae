package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsforge/vcrecon/internal/recon"
)

var (
	notifRead    bool
	notifEnable  bool
	notifDisable bool
	notifTimeout int64
)

var notificationCmd = &cobra.Command{
	Use:   "notification",
	Short: "Reconcile VM operation notification settings",
	Long: `Reconcile the vmOpNotificationToAppEnabled and vmOpNotificationTimeout
settings on each VM.

Enabling requires --timeout, the number of seconds applications are given to
acknowledge a VM operation notification. Disabling clears both the flag and
any stale timeout. These settings are hot-settable; no power cycling occurs.

Examples:
  vcrecon notification -s vcenter.example.com -u admin@vsphere.local -v vm1,vm2 --read
  vcrecon notification -s vcenter.example.com -u admin@vsphere.local -v vm1,vm2 --enable --timeout 300
  vcrecon notification -s vcenter.example.com -u admin@vsphere.local --fleet-file fleet.yaml --disable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		desired := recon.DesiredState{Action: actionFromFlags(notifRead, notifEnable)}
		if notifEnable {
			if !cmd.Flags().Changed("timeout") {
				return fmt.Errorf("--timeout is required when using --enable")
			}
			if notifTimeout <= 0 {
				return fmt.Errorf("--timeout must be a positive number of seconds")
			}
			desired.Timeout = &notifTimeout
		}
		return runReconcile(recon.NotificationFacet{}, desired)
	},
}

func init() {
	f := notificationCmd.Flags()
	f.BoolVar(&notifRead, "read", false, "read the current notification settings")
	f.BoolVar(&notifEnable, "enable", false, "enable VM operation notifications to applications")
	f.BoolVar(&notifDisable, "disable", false, "disable notifications and clear the timeout")
	f.Int64Var(&notifTimeout, "timeout", 0, "notification timeout in seconds (required with --enable)")

	notificationCmd.MarkFlagsOneRequired("read", "enable", "disable")
	notificationCmd.MarkFlagsMutuallyExclusive("read", "enable", "disable")
}
