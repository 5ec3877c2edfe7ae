package recon

import (
	"fmt"

	"github.com/vmware/govmomi/vim25/types"
)

// NotificationFacet reconciles the VM operation notification settings:
// vmOpNotificationToAppEnabled and vmOpNotificationTimeout on the VM config.
// These are plain config settings and can be changed while the VM runs.
type NotificationFacet struct{}

// Name implements Facet.
func (NotificationFacet) Name() string { return "notification settings" }

// RequiresPowerOff implements Facet. Notification settings are hot-settable.
func (NotificationFacet) RequiresPowerOff() bool { return false }

// Read implements Facet. An unset flag or timeout is the vSphere default
// (disabled / no timeout), not an error.
func (NotificationFacet) Read(cfg *types.VirtualMachineConfigInfo) CurrentState {
	var state CurrentState
	if cfg == nil {
		return state
	}
	if cfg.VmOpNotificationToAppEnabled != nil {
		state.Enabled = *cfg.VmOpNotificationToAppEnabled
	}
	if cfg.VmOpNotificationTimeout != 0 {
		state.Timeout = types.NewInt64(cfg.VmOpNotificationTimeout)
	}
	return state
}

// Diff implements Facet.
func (f NotificationFacet) Diff(current CurrentState, desired DesiredState) (*PendingChange, error) {
	switch desired.Action {
	case ActionEnable:
		if desired.Timeout == nil || *desired.Timeout <= 0 {
			return nil, fmt.Errorf("%w: notification timeout must be a positive integer", ErrInvalidArgument)
		}
		if current.Enabled && current.Timeout != nil && *current.Timeout == *desired.Timeout {
			return nil, nil
		}
		return &PendingChange{
			Description: fmt.Sprintf("enable notifications with timeout %ds", *desired.Timeout),
		}, nil

	case ActionDisable:
		// Disabling also clears a stale timeout left behind by an earlier
		// enable, so a disabled-but-configured VM still diffs as changed.
		if !current.Enabled && (current.Timeout == nil || *current.Timeout == 0) {
			return nil, nil
		}
		return &PendingChange{Description: "disable notifications and clear timeout"}, nil

	default:
		return nil, nil
	}
}

// Apply implements Facet. Disabling resets both fields to their defaults
// rather than leaving stale values on the VM.
func (f NotificationFacet) Apply(spec *types.VirtualMachineConfigSpec, _ CurrentState, desired DesiredState) error {
	switch desired.Action {
	case ActionEnable:
		if desired.Timeout == nil || *desired.Timeout <= 0 {
			return fmt.Errorf("%w: notification timeout must be a positive integer", ErrInvalidArgument)
		}
		spec.VmOpNotificationToAppEnabled = types.NewBool(true)
		spec.VmOpNotificationTimeout = *desired.Timeout
	case ActionDisable:
		spec.VmOpNotificationToAppEnabled = types.NewBool(false)
		spec.VmOpNotificationTimeout = 0
	default:
		return fmt.Errorf("%w: action %s does not mutate", ErrInvalidArgument, desired.Action)
	}
	return nil
}

// Describe implements Facet.
func (NotificationFacet) Describe(current CurrentState) string {
	if !current.Enabled {
		if current.Timeout != nil && *current.Timeout != 0 {
			return fmt.Sprintf("notifications disabled (stale timeout %ds)", *current.Timeout)
		}
		return "notifications disabled"
	}
	if current.Timeout == nil {
		return "notifications enabled (no timeout set)"
	}
	return fmt.Sprintf("notifications enabled (timeout %ds)", *current.Timeout)
}
