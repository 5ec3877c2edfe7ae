package recon

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vmware/govmomi/vim25/types"
)

// Mutator applies facet mutations as reconfigure tasks. It never decides
// whether a change is needed; the reconciler only calls it with a non-empty
// diff, which is what makes re-runs idempotent.
type Mutator struct {
	log zerolog.Logger
}

// NewMutator creates a mutator that logs reconfigurations to log.
func NewMutator(log zerolog.Logger) *Mutator {
	return &Mutator{log: log}
}

// Apply builds the reconfigure spec for the desired state and submits it,
// blocking until the remote task completes. Once submitted, the task runs to
// completion or failure; there is no mid-flight cancellation because a
// partially applied device change cannot be safely aborted.
func (m *Mutator) Apply(ctx context.Context, vm VMHandle, facet Facet, current CurrentState, desired DesiredState) error {
	var spec types.VirtualMachineConfigSpec
	if err := facet.Apply(&spec, current, desired); err != nil {
		return err
	}

	m.log.Info().
		Str("vm", vm.Name()).
		Str("facet", facet.Name()).
		Str("action", desired.Action.String()).
		Msg("reconfiguring")

	if err := vm.Reconfigure(ctx, spec); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: reconfigure of %s: %v", ErrTimeout, vm.Name(), err)
		}
		return fmt.Errorf("%w: %v", ErrMutation, err)
	}
	return nil
}
