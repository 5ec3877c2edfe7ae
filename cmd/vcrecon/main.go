package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// exitCode is set from the batch summary's exit-code mapping:
// 0 all succeeded, 1 everything failed, 2 partial failure.
var exitCode int

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

var rootCmd = &cobra.Command{
	Use:   "vcrecon",
	Short: "vcrecon - vSphere VM facet reconciliation tool",
	Long: `vcrecon reconciles a named fleet of virtual machines against a desired
configuration state on a vCenter or ESXi management plane.

Each subcommand targets one configuration facet. VMs are processed one at a
time in input order; a failure on one VM never aborts the rest of the batch,
and a VM that the tool had to power off is powered back on afterwards.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagServer, "server", "s", "", "vCenter server hostname or IP address (required)")
	pf.StringVarP(&flagUser, "user", "u", "", "vCenter username (required)")
	pf.StringVarP(&flagPassword, "password", "w", "", "vCenter password (falls back to VCENTER_PASSWORD, then a prompt)")
	pf.IntVar(&flagPort, "port", 443, "vCenter server port")
	pf.BoolVar(&flagInsecure, "insecure", false, "skip TLS certificate verification")
	pf.StringVarP(&flagVMs, "vms", "v", "", "comma-separated list of VM names")
	pf.StringVar(&flagFleetFile, "fleet-file", "", "YAML file listing VM names to reconcile")
	pf.BoolVar(&flagDryRun, "dry-run", false, "report which VMs would change without mutating anything")
	pf.BoolVar(&flagNoConfirm, "no-confirm", false, "skip the confirmation prompt before processing VMs")
	pf.DurationVar(&flagTaskTimeout, "task-timeout", 5*time.Minute, "ceiling on each remote task wait")
	pf.StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, or yaml")
	pf.BoolVar(&noHeaders, "no-headers", false, "omit headers in table output")
	pf.BoolVar(&verbose, "verbose", false, "enable debug logging")

	_ = rootCmd.MarkPersistentFlagRequired("server")
	_ = rootCmd.MarkPersistentFlagRequired("user")

	rootCmd.AddCommand(notificationCmd)
	rootCmd.AddCommand(ptpCmd)
}
