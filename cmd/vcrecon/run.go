package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/opsforge/vcrecon/internal/fleet"
	"github.com/opsforge/vcrecon/internal/output"
	"github.com/opsforge/vcrecon/internal/recon"
	"github.com/opsforge/vcrecon/internal/vsphere"
)

// passwordEnvVar supplies the vCenter password when -w is not given.
const passwordEnvVar = "VCENTER_PASSWORD"

var (
	flagServer      string
	flagUser        string
	flagPassword    string
	flagPort        int
	flagInsecure    bool
	flagVMs         string
	flagFleetFile   string
	flagDryRun      bool
	flagNoConfirm   bool
	flagTaskTimeout time.Duration
	outputFormat    string
	noHeaders       bool
	verbose         bool
)

// runReconcile is the shared shell behind both facet subcommands: resolve
// inputs, confirm, connect, reconcile, report, and map the summary onto the
// process exit code.
func runReconcile(facet recon.Facet, desired recon.DesiredState) error {
	if err := output.ValidateFormat(outputFormat); err != nil {
		return err
	}

	names, err := resolveVMNames()
	if err != nil {
		return err
	}

	log := newLogger()

	if desired.Action != recon.ActionRead && !flagDryRun && !flagNoConfirm {
		ok, err := confirmProceed(names)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	password, err := resolvePassword(flagUser)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := vsphere.Connect(ctx, vsphere.Options{
		Server:      flagServer,
		User:        flagUser,
		Password:    password,
		Port:        flagPort,
		Insecure:    flagInsecure,
		TaskTimeout: flagTaskTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if logoutErr := client.Logout(context.Background()); logoutErr != nil {
			log.Warn().Err(logoutErr).Msg("failed to log out")
		}
	}()

	reconciler := recon.New(client.Inventory(), recon.Options{
		DryRun: flagDryRun,
		Logger: log,
	})
	summary := reconciler.Reconcile(ctx, names, facet, desired)

	formatter, err := output.NewFormatter(output.Options{
		Format:    output.Format(outputFormat),
		NoHeaders: noHeaders,
	})
	if err != nil {
		return err
	}
	text, err := formatter.FormatSummary(summary)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(text)

	exitCode = summary.ExitCode()
	return nil
}

// resolveVMNames returns the batch's VM names in caller order, from either
// -v/--vms or --fleet-file.
func resolveVMNames() ([]string, error) {
	switch {
	case flagVMs != "" && flagFleetFile != "":
		return nil, fmt.Errorf("--vms and --fleet-file are mutually exclusive")
	case flagFleetFile != "":
		return fleet.LoadFromFile(flagFleetFile)
	case flagVMs != "":
		var names []string
		for _, raw := range strings.Split(flagVMs, ",") {
			if name := strings.TrimSpace(raw); name != "" {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("--vms lists no VM names")
		}
		return names, nil
	default:
		return nil, fmt.Errorf("one of --vms or --fleet-file is required")
	}
}

// resolvePassword resolves the vCenter password in precedence order:
// -w flag, then the VCENTER_PASSWORD environment variable, then a prompt.
func resolvePassword(user string) (string, error) {
	if flagPassword != "" {
		return flagPassword, nil
	}
	if pw := os.Getenv(passwordEnvVar); pw != "" {
		return pw, nil
	}

	fmt.Fprintf(os.Stderr, "Enter password for %s: ", user)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// confirmProceed asks the operator before a mutating batch starts. This is
// the only cancellation point; once a VM's mutation begins it runs to
// completion or failure.
func confirmProceed(names []string) (bool, error) {
	fmt.Printf("About to reconcile %d VM(s): %s\n", len(names), strings.Join(names, ", "))
	fmt.Print("Continue with processing? (yes/no): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y", nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// actionFromFlags maps the mutually exclusive action flags to an action.
// Cobra guarantees exactly one of them is set.
func actionFromFlags(read, enable bool) recon.Action {
	switch {
	case read:
		return recon.ActionRead
	case enable:
		return recon.ActionEnable
	default:
		return recon.ActionDisable
	}
}
