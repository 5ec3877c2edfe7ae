package recon

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vmware/govmomi/vim25/types"
)

// powerPhase is the controller's view of where a VM sits in a transition.
// The two transient phases only exist while a remote task is in flight.
type powerPhase string

const (
	phasePoweredOn   powerPhase = "PoweredOn"
	phasePoweringOff powerPhase = "PoweringOff"
	phasePoweredOff  powerPhase = "PoweredOff"
	phasePoweringOn  powerPhase = "PoweringOn"
)

// TransitionRecord tracks whether the controller itself changed a VM's power
// state, so restore only touches what the controller touched. A VM the
// operator had already powered off is never powered on afterwards.
type TransitionRecord struct {
	// Original is the power state observed before any transition.
	Original types.VirtualMachinePowerState

	// Transitioned is true only when the controller issued a power-off.
	Transitioned bool
}

// PowerController safely transitions VM power states, waiting for the remote
// task behind each transition to complete.
type PowerController struct {
	log zerolog.Logger
}

// NewPowerController creates a power controller that logs transitions to log.
func NewPowerController(log zerolog.Logger) *PowerController {
	return &PowerController{log: log}
}

// EnsurePoweredOff drives a VM to the powered-off state. If the VM is
// already off, it returns a record with Transitioned=false and performs no
// remote calls. Failure here is fatal for the VM's reconciliation: nothing
// was mutated, so no restore is needed.
func (p *PowerController) EnsurePoweredOff(ctx context.Context, vm VMHandle) (TransitionRecord, error) {
	state, err := vm.PowerState(ctx)
	if err != nil {
		return TransitionRecord{}, fmt.Errorf("%w: reading power state of %s: %v", ErrPowerTransition, vm.Name(), err)
	}

	rec := TransitionRecord{Original: state}
	if state == types.VirtualMachinePowerStatePoweredOff {
		p.log.Debug().Str("vm", vm.Name()).Msg("already powered off")
		return rec, nil
	}

	p.logPhase(vm, phasePoweringOff)
	if err := vm.PowerOff(ctx); err != nil {
		return rec, p.transitionErr("power off", vm, err)
	}
	p.logPhase(vm, phasePoweredOff)

	rec.Transitioned = true
	return rec, nil
}

// Restore returns a VM to its pre-reconciliation power state. It is a no-op
// unless EnsurePoweredOff actually transitioned the VM. Callers invoke it on
// every exit path after a transition, including mutation failure; its error
// is reported but never retroactively fails an applied mutation.
func (p *PowerController) Restore(ctx context.Context, vm VMHandle, rec TransitionRecord) error {
	if !rec.Transitioned {
		return nil
	}

	p.logPhase(vm, phasePoweringOn)
	if err := vm.PowerOn(ctx); err != nil {
		return p.transitionErr("power on", vm, err)
	}
	p.logPhase(vm, phasePoweredOn)
	return nil
}

func (p *PowerController) logPhase(vm VMHandle, phase powerPhase) {
	p.log.Info().Str("vm", vm.Name()).Str("phase", string(phase)).Msg("power transition")
}

func (p *PowerController) transitionErr(op string, vm VMHandle, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s of %s: %v", ErrTimeout, op, vm.Name(), err)
	}
	return fmt.Errorf("%w: %s of %s: %v", ErrPowerTransition, op, vm.Name(), err)
}
