package recon

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"
)

// Inventory resolves VM names to handles in the management-plane inventory.
//
// In production, this is satisfied by *vsphere.Inventory.
// In tests, this is satisfied by mock implementations.
type Inventory interface {
	// FindVM resolves a VM name to a handle. The name is case-sensitive and
	// must be unique in the inventory: zero matches fail with ErrNotFound,
	// multiple matches with ErrAmbiguous.
	FindVM(ctx context.Context, name string) (VMHandle, error)
}

// VMHandle is an opaque reference to a single remote VM. A handle is owned
// by one reconciliation at a time and is never shared across concurrent
// operations on the same VM.
//
// The power and reconfigure operations submit a remote task and block until
// it completes; implementations bound the wait so no call blocks forever.
//
// In production, this is satisfied by the vsphere package's VM wrapper.
// In tests, this is satisfied by mock implementations.
type VMHandle interface {
	// Name returns the VM's human-readable inventory name.
	Name() string

	// PowerState returns the VM's current power state.
	PowerState(ctx context.Context) (types.VirtualMachinePowerState, error)

	// Config returns a snapshot of the VM's configuration. A nil config
	// (not yet populated by the management plane) is valid and treated by
	// facets as all-defaults.
	Config(ctx context.Context) (*types.VirtualMachineConfigInfo, error)

	// PowerOff powers the VM off and waits for the task to complete.
	PowerOff(ctx context.Context) error

	// PowerOn powers the VM on and waits for the task to complete.
	PowerOn(ctx context.Context) error

	// Reconfigure applies a config spec and waits for the task to complete.
	Reconfigure(ctx context.Context, spec types.VirtualMachineConfigSpec) error
}
