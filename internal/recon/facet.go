package recon

import (
	"github.com/vmware/govmomi/vim25/types"
)

// Action selects what reconciliation should do with a facet.
type Action int

const (
	// ActionRead reports the current facet state without mutating anything.
	ActionRead Action = iota
	// ActionEnable drives the facet to its enabled/present state.
	ActionEnable
	// ActionDisable drives the facet to its disabled/absent state.
	ActionDisable
)

// String returns the action name as used in CLI flags and log output.
func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionEnable:
		return "enable"
	case ActionDisable:
		return "disable"
	default:
		return "unknown"
	}
}

// DesiredState is the caller's intent for a facet.
type DesiredState struct {
	Action Action

	// Timeout is the notification timeout in seconds. Required (and must be
	// positive) when enabling the notification facet; ignored by the PTP
	// device facet.
	Timeout *int64
}

// CurrentState is an immutable snapshot of one facet as observed on a VM.
// Which fields are meaningful depends on the facet that produced it.
type CurrentState struct {
	// Enabled and Timeout describe the notification facet. A nil Timeout
	// means the setting is unset on the VM.
	Enabled bool
	Timeout *int64

	// Present and DeviceKey describe the PTP device facet. DeviceKey is nil
	// when no device is present.
	Present   bool
	DeviceKey *int32
}

// PendingChange describes the mutation required to converge a facet. A nil
// *PendingChange from Facet.Diff means the VM is already in the desired
// state and no mutation may be issued.
type PendingChange struct {
	// Description is a human-readable summary of what will change,
	// e.g. "enable notifications with timeout 300s" or "add PTP device".
	Description string
}

// Facet is one independently reconcilable configuration aspect of a VM.
// Implementations are a closed set: NotificationFacet and PTPDeviceFacet.
type Facet interface {
	// Name identifies the facet in results and log output.
	Name() string

	// RequiresPowerOff reports whether mutating this facet needs the VM
	// powered off.
	RequiresPowerOff() bool

	// Read extracts the facet's current state from a config snapshot.
	// A nil config is valid and yields the facet's default (disabled/absent).
	Read(cfg *types.VirtualMachineConfigInfo) CurrentState

	// Diff computes the change required to reach the desired state. It
	// returns nil when none is required, and ErrInvalidArgument when the
	// desired state itself is unusable.
	Diff(current CurrentState, desired DesiredState) (*PendingChange, error)

	// Apply populates a config spec with the mutation for the desired
	// state. It is only called with a non-nil diff.
	Apply(spec *types.VirtualMachineConfigSpec, current CurrentState, desired DesiredState) error

	// Describe renders the current state for human consumption.
	Describe(current CurrentState) string
}
