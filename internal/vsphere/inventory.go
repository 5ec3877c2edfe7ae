package vsphere

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/view"
	"github.com/vmware/govmomi/vim25/mo"

	"github.com/opsforge/vcrecon/internal/recon"
)

// Inventory resolves VM names against the entire inventory tree, rooted at
// the service root folder so every datacenter and folder is searched.
type Inventory struct {
	client *Client
}

// FindVM implements recon.Inventory. Name matching is exact and
// case-sensitive. Zero matches fail with recon.ErrNotFound, more than one
// with recon.ErrAmbiguous; everything else is a transport failure.
func (i *Inventory) FindVM(ctx context.Context, name string) (recon.VMHandle, error) {
	vc := i.client.vc.Client

	m := view.NewManager(vc)
	v, err := m.CreateContainerView(ctx, vc.ServiceContent.RootFolder, []string{"VirtualMachine"}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory view: %w", err)
	}
	defer func() {
		_ = v.Destroy(ctx)
	}()

	var vms []mo.VirtualMachine
	if err := v.Retrieve(ctx, []string{"VirtualMachine"}, []string{"name"}, &vms); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	var matches []mo.VirtualMachine
	for _, vm := range vms {
		if vm.Name == name {
			matches = append(matches, vm)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", recon.ErrNotFound, name)
	case 1:
		return &machine{
			vm:          object.NewVirtualMachine(vc, matches[0].Self),
			name:        name,
			taskTimeout: i.client.taskTimeout,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d machines", recon.ErrAmbiguous, name, len(matches))
	}
}
