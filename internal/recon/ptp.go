package recon

import (
	"fmt"

	"github.com/vmware/govmomi/vim25/types"
)

// PTPDeviceFacet reconciles the presence of a VirtualPrecisionClock device.
// The device provides high-accuracy guest time sync and can only be added
// or removed while the VM is powered off.
type PTPDeviceFacet struct{}

// Name implements Facet.
func (PTPDeviceFacet) Name() string { return "PTP device" }

// RequiresPowerOff implements Facet.
func (PTPDeviceFacet) RequiresPowerOff() bool { return true }

// Read implements Facet. It scans the VM's device list for a precision
// clock; an absent device is the default, not an error.
func (PTPDeviceFacet) Read(cfg *types.VirtualMachineConfigInfo) CurrentState {
	var state CurrentState
	if cfg == nil {
		return state
	}
	for _, dev := range cfg.Hardware.Device {
		if clock, ok := dev.(*types.VirtualPrecisionClock); ok {
			key := clock.Key
			state.Present = true
			state.DeviceKey = &key
			break
		}
	}
	return state
}

// Diff implements Facet.
func (PTPDeviceFacet) Diff(current CurrentState, desired DesiredState) (*PendingChange, error) {
	switch desired.Action {
	case ActionEnable:
		if current.Present {
			return nil, nil
		}
		return &PendingChange{Description: "add PTP device"}, nil
	case ActionDisable:
		if !current.Present {
			return nil, nil
		}
		return &PendingChange{Description: "remove PTP device"}, nil
	default:
		return nil, nil
	}
}

// Apply implements Facet. Adding uses key -1 so the management plane
// auto-assigns addressing; removal targets the device key discovered by Read.
func (PTPDeviceFacet) Apply(spec *types.VirtualMachineConfigSpec, current CurrentState, desired DesiredState) error {
	switch desired.Action {
	case ActionEnable:
		spec.DeviceChange = append(spec.DeviceChange, &types.VirtualDeviceConfigSpec{
			Operation: types.VirtualDeviceConfigSpecOperationAdd,
			Device: &types.VirtualPrecisionClock{
				VirtualDevice: types.VirtualDevice{
					Key:     -1,
					Backing: &types.VirtualPrecisionClockSystemClockBackingInfo{},
				},
			},
		})
	case ActionDisable:
		if current.DeviceKey == nil {
			return fmt.Errorf("%w: no PTP device key recorded for removal", ErrInvalidArgument)
		}
		spec.DeviceChange = append(spec.DeviceChange, &types.VirtualDeviceConfigSpec{
			Operation: types.VirtualDeviceConfigSpecOperationRemove,
			Device: &types.VirtualPrecisionClock{
				VirtualDevice: types.VirtualDevice{Key: *current.DeviceKey},
			},
		})
	default:
		return fmt.Errorf("%w: action %s does not mutate", ErrInvalidArgument, desired.Action)
	}
	return nil
}

// Describe implements Facet.
func (PTPDeviceFacet) Describe(current CurrentState) string {
	if !current.Present {
		return "PTP device not present"
	}
	if current.DeviceKey != nil {
		return fmt.Sprintf("PTP device present (key %d)", *current.DeviceKey)
	}
	return "PTP device present"
}
