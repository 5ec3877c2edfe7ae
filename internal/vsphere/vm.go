package vsphere

import (
	"context"
	"fmt"
	"time"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"
)

// machine implements recon.VMHandle over a live vSphere VM. Each handle is
// created fresh per reconciliation by Inventory.FindVM and carries the name
// it was resolved from.
type machine struct {
	vm          *object.VirtualMachine
	name        string
	taskTimeout time.Duration
}

// Name implements recon.VMHandle.
func (m *machine) Name() string {
	return m.name
}

// PowerState implements recon.VMHandle.
func (m *machine) PowerState(ctx context.Context) (types.VirtualMachinePowerState, error) {
	state, err := m.vm.PowerState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read power state: %w", err)
	}
	return state, nil
}

// Config implements recon.VMHandle. A VM whose config has not yet been
// populated yields a nil config, which facets treat as all-defaults.
func (m *machine) Config(ctx context.Context) (*types.VirtualMachineConfigInfo, error) {
	var props mo.VirtualMachine
	if err := m.vm.Properties(ctx, m.vm.Reference(), []string{"config"}, &props); err != nil {
		return nil, fmt.Errorf("failed to retrieve config: %w", err)
	}
	return props.Config, nil
}

// PowerOff implements recon.VMHandle.
func (m *machine) PowerOff(ctx context.Context) error {
	task, err := m.vm.PowerOff(ctx)
	if err != nil {
		return fmt.Errorf("failed to request power off: %w", err)
	}
	return m.wait(ctx, task)
}

// PowerOn implements recon.VMHandle.
func (m *machine) PowerOn(ctx context.Context) error {
	task, err := m.vm.PowerOn(ctx)
	if err != nil {
		return fmt.Errorf("failed to request power on: %w", err)
	}
	return m.wait(ctx, task)
}

// Reconfigure implements recon.VMHandle.
func (m *machine) Reconfigure(ctx context.Context, spec types.VirtualMachineConfigSpec) error {
	task, err := m.vm.Reconfigure(ctx, spec)
	if err != nil {
		return fmt.Errorf("failed to request reconfigure: %w", err)
	}
	return m.wait(ctx, task)
}

// wait blocks until the task completes, bounded by the client's task
// timeout. An exceeded bound surfaces as context.DeadlineExceeded.
func (m *machine) wait(ctx context.Context, task *object.Task) error {
	wctx, cancel := context.WithTimeout(ctx, m.taskTimeout)
	defer cancel()
	return task.Wait(wctx)
}
