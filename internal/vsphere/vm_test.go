package vsphere

import (
	"context"
	"testing"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/opsforge/vcrecon/internal/recon"
)

func findSimVM(t *testing.T, client *Client) recon.VMHandle {
	t.Helper()

	vm, err := client.Inventory().FindVM(context.Background(), "DC0_H0_VM0")
	if err != nil {
		t.Fatalf("FindVM() error = %v", err)
	}
	return vm
}

func TestMachine_PowerCycle(t *testing.T) {
	client := connectSim(t)
	ctx := context.Background()
	vm := findSimVM(t, client)

	state, err := vm.PowerState(ctx)
	if err != nil {
		t.Fatalf("PowerState() error = %v", err)
	}
	if state != types.VirtualMachinePowerStatePoweredOn {
		t.Fatalf("initial power state = %q, want poweredOn", state)
	}

	if err := vm.PowerOff(ctx); err != nil {
		t.Fatalf("PowerOff() error = %v", err)
	}
	state, err = vm.PowerState(ctx)
	if err != nil {
		t.Fatalf("PowerState() error = %v", err)
	}
	if state != types.VirtualMachinePowerStatePoweredOff {
		t.Fatalf("power state after off = %q, want poweredOff", state)
	}

	if err := vm.PowerOn(ctx); err != nil {
		t.Fatalf("PowerOn() error = %v", err)
	}
	state, err = vm.PowerState(ctx)
	if err != nil {
		t.Fatalf("PowerState() error = %v", err)
	}
	if state != types.VirtualMachinePowerStatePoweredOn {
		t.Fatalf("power state after on = %q, want poweredOn", state)
	}
}

// TestMachine_DeviceRoundTrip adds a precision clock device, re-reads the
// config to discover its key, then removes it by that key.
func TestMachine_DeviceRoundTrip(t *testing.T) {
	client := connectSim(t)
	ctx := context.Background()
	vm := findSimVM(t, client)
	facet := recon.PTPDeviceFacet{}

	if err := vm.PowerOff(ctx); err != nil {
		t.Fatalf("PowerOff() error = %v", err)
	}

	cfg, err := vm.Config(ctx)
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	before := facet.Read(cfg)
	if before.Present {
		t.Fatal("fresh VM already has a precision clock device")
	}

	add := types.VirtualMachineConfigSpec{}
	desired := recon.DesiredState{Action: recon.ActionEnable}
	if err := facet.Apply(&add, before, desired); err != nil {
		t.Fatalf("Apply(enable) error = %v", err)
	}
	if err := vm.Reconfigure(ctx, add); err != nil {
		t.Fatalf("Reconfigure(add) error = %v", err)
	}

	cfg, err = vm.Config(ctx)
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	after := facet.Read(cfg)
	if !after.Present {
		t.Fatal("precision clock device not present after add")
	}
	if after.DeviceKey == nil {
		t.Fatal("precision clock device has no key after add")
	}

	remove := types.VirtualMachineConfigSpec{}
	if err := facet.Apply(&remove, after, recon.DesiredState{Action: recon.ActionDisable}); err != nil {
		t.Fatalf("Apply(disable) error = %v", err)
	}
	if err := vm.Reconfigure(ctx, remove); err != nil {
		t.Fatalf("Reconfigure(remove) error = %v", err)
	}

	cfg, err = vm.Config(ctx)
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	if facet.Read(cfg).Present {
		t.Fatal("precision clock device still present after remove")
	}
}
