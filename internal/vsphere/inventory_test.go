package vsphere

import (
	"context"
	"errors"
	"testing"

	"github.com/opsforge/vcrecon/internal/recon"
)

func TestInventory_FindVM(t *testing.T) {
	client := connectSim(t)
	ctx := context.Background()

	vm, err := client.Inventory().FindVM(ctx, "DC0_H0_VM0")
	if err != nil {
		t.Fatalf("FindVM() error = %v", err)
	}
	if vm.Name() != "DC0_H0_VM0" {
		t.Errorf("Name() = %q, want %q", vm.Name(), "DC0_H0_VM0")
	}
}

func TestInventory_FindVM_NotFound(t *testing.T) {
	client := connectSim(t)
	ctx := context.Background()

	_, err := client.Inventory().FindVM(ctx, "no-such-vm")
	if !errors.Is(err, recon.ErrNotFound) {
		t.Errorf("FindVM() error = %v, want ErrNotFound", err)
	}
}
