package recon

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/vim25/types"
)

// mockInventory is a mock implementation of the Inventory interface for testing.
type mockInventory struct {
	// Configurable behavior
	findVMFunc func(name string) (VMHandle, error)

	// Call tracking
	findVMCalls []string
}

// newMockInventory creates an inventory serving the given VMs by name.
// Unknown names fail with ErrNotFound.
func newMockInventory(vms map[string]*mockVM) *mockInventory {
	m := &mockInventory{}
	m.findVMFunc = func(name string) (VMHandle, error) {
		vm, ok := vms[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return vm, nil
	}
	return m
}

func (m *mockInventory) FindVM(_ context.Context, name string) (VMHandle, error) {
	m.findVMCalls = append(m.findVMCalls, name)
	return m.findVMFunc(name)
}

// mockVM is a mock implementation of the VMHandle interface. By default it
// behaves like a well-behaved remote VM: power requests flip its state and
// reconfigure requests are applied to its config snapshot, so re-reads
// observe the change.
type mockVM struct {
	name       string
	powerState types.VirtualMachinePowerState
	config     *types.VirtualMachineConfigInfo

	// Configurable behavior; nil means the default described above.
	powerStateFunc  func() (types.VirtualMachinePowerState, error)
	configFunc      func() (*types.VirtualMachineConfigInfo, error)
	powerOffFunc    func() error
	powerOnFunc     func() error
	reconfigureFunc func(spec types.VirtualMachineConfigSpec) error

	// Call tracking
	configCalls      int
	powerOffCalls    int
	powerOnCalls     int
	reconfigureCalls []types.VirtualMachineConfigSpec
}

func newMockVM(name string, state types.VirtualMachinePowerState) *mockVM {
	return &mockVM{
		name:       name,
		powerState: state,
		config:     &types.VirtualMachineConfigInfo{},
	}
}

func (m *mockVM) Name() string { return m.name }

func (m *mockVM) PowerState(_ context.Context) (types.VirtualMachinePowerState, error) {
	if m.powerStateFunc != nil {
		return m.powerStateFunc()
	}
	return m.powerState, nil
}

func (m *mockVM) Config(_ context.Context) (*types.VirtualMachineConfigInfo, error) {
	m.configCalls++
	if m.configFunc != nil {
		return m.configFunc()
	}
	return m.config, nil
}

func (m *mockVM) PowerOff(_ context.Context) error {
	m.powerOffCalls++
	if m.powerOffFunc != nil {
		return m.powerOffFunc()
	}
	m.powerState = types.VirtualMachinePowerStatePoweredOff
	return nil
}

func (m *mockVM) PowerOn(_ context.Context) error {
	m.powerOnCalls++
	if m.powerOnFunc != nil {
		return m.powerOnFunc()
	}
	m.powerState = types.VirtualMachinePowerStatePoweredOn
	return nil
}

func (m *mockVM) Reconfigure(_ context.Context, spec types.VirtualMachineConfigSpec) error {
	m.reconfigureCalls = append(m.reconfigureCalls, spec)
	if m.reconfigureFunc != nil {
		return m.reconfigureFunc(spec)
	}
	m.applySpec(spec)
	return nil
}

// applySpec mimics the management plane applying a reconfigure task.
func (m *mockVM) applySpec(spec types.VirtualMachineConfigSpec) {
	if m.config == nil {
		m.config = &types.VirtualMachineConfigInfo{}
	}
	if spec.VmOpNotificationToAppEnabled != nil {
		m.config.VmOpNotificationToAppEnabled = spec.VmOpNotificationToAppEnabled
	}
	if spec.VmOpNotificationTimeout != 0 {
		m.config.VmOpNotificationTimeout = spec.VmOpNotificationTimeout
	}
	for _, change := range spec.DeviceChange {
		dspec := change.GetVirtualDeviceConfigSpec()
		device := dspec.Device.GetVirtualDevice()
		switch dspec.Operation {
		case types.VirtualDeviceConfigSpecOperationAdd:
			if device.Key <= 0 {
				device.Key = 4000 // the remote side assigns real keys
			}
			m.config.Hardware.Device = append(m.config.Hardware.Device, dspec.Device)
		case types.VirtualDeviceConfigSpecOperationRemove:
			var kept []types.BaseVirtualDevice
			for _, existing := range m.config.Hardware.Device {
				if existing.GetVirtualDevice().Key != device.Key {
					kept = append(kept, existing)
				}
			}
			m.config.Hardware.Device = kept
		}
	}
}

// withPTPDevice seeds the mock's config with a precision clock device.
func (m *mockVM) withPTPDevice(key int32) *mockVM {
	m.config.Hardware.Device = append(m.config.Hardware.Device, &types.VirtualPrecisionClock{
		VirtualDevice: types.VirtualDevice{
			Key:     key,
			Backing: &types.VirtualPrecisionClockSystemClockBackingInfo{},
		},
	})
	return m
}

// withNotification seeds the mock's config with notification settings.
func (m *mockVM) withNotification(enabled bool, timeout int64) *mockVM {
	m.config.VmOpNotificationToAppEnabled = types.NewBool(enabled)
	m.config.VmOpNotificationTimeout = timeout
	return m
}
