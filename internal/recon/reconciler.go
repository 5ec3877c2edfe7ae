package recon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Reconciler drives a batch of VMs to a desired facet state. VMs are
// processed strictly in input order, one at a time; each VM's failure is
// recorded and the batch continues.
type Reconciler struct {
	inventory Inventory
	power     *PowerController
	mutator   *Mutator
	dryRun    bool
	log       zerolog.Logger
}

// Options configures a Reconciler.
type Options struct {
	// DryRun suppresses every remote mutation, including power transitions.
	// VMs that would change are recorded as Skipped.
	DryRun bool

	// Logger receives per-step progress. The zero value discards output.
	Logger zerolog.Logger
}

// New creates a Reconciler over the given inventory.
func New(inventory Inventory, opts Options) *Reconciler {
	return &Reconciler{
		inventory: inventory,
		power:     NewPowerController(opts.Logger),
		mutator:   NewMutator(opts.Logger),
		dryRun:    opts.DryRun,
		log:       opts.Logger,
	}
}

// Reconcile processes every named VM against the desired facet state and
// returns the batch summary in input order. Only the caller's context can
// fail the batch as a whole; per-VM errors are absorbed into results.
func (r *Reconciler) Reconcile(ctx context.Context, names []string, facet Facet, desired DesiredState) *BatchSummary {
	summary := NewBatchSummary()
	r.log.Info().
		Str("run", summary.RunID).
		Str("facet", facet.Name()).
		Str("action", desired.Action.String()).
		Int("vms", len(names)).
		Bool("dry_run", r.dryRun).
		Msg("starting reconciliation")

	for _, name := range names {
		result := r.reconcileOne(ctx, name, facet, desired)
		r.log.Info().
			Str("vm", name).
			Str("status", string(result.Status)).
			Str("detail", result.Detail).
			Msg("reconciled")
		summary.Record(result)
	}
	return summary
}

// reconcileOne runs the per-VM state machine:
// locate -> read -> diff -> (power off) -> mutate -> (restore) -> verify.
func (r *Reconciler) reconcileOne(ctx context.Context, name string, facet Facet, desired DesiredState) OperationResult {
	failed := func(err error) OperationResult {
		return OperationResult{Name: name, Status: StatusFailed, Detail: err.Error()}
	}

	// Step 1: locate.
	vm, err := r.inventory.FindVM(ctx, name)
	if err != nil {
		return failed(err)
	}

	// Step 2: read the facet.
	current, err := r.readFacet(ctx, vm, facet)
	if err != nil {
		return failed(err)
	}

	// Step 3: read-only action stops here.
	if desired.Action == ActionRead {
		return OperationResult{Name: name, Status: StatusSuccess, Detail: facet.Describe(current)}
	}

	// Step 4: idempotent short-circuit on an empty diff.
	change, err := facet.Diff(current, desired)
	if err != nil {
		return failed(err)
	}
	if change == nil {
		return OperationResult{Name: name, Status: StatusSuccess, Detail: "already in desired state"}
	}

	// Step 5: dry-run issues nothing remote, not even power transitions.
	if r.dryRun {
		return OperationResult{Name: name, Status: StatusSkipped, Detail: "would change: " + change.Description}
	}

	// Step 6: power off when the facet demands it. Failure here is fatal
	// for this VM; nothing was changed, so there is nothing to restore.
	var rec TransitionRecord
	if facet.RequiresPowerOff() {
		rec, err = r.power.EnsurePoweredOff(ctx, vm)
		if err != nil {
			return failed(err)
		}
	}

	// Steps 7/8: mutate, then restore power unconditionally. Restore is
	// best-effort on both the success and failure paths.
	mutationErr := r.mutator.Apply(ctx, vm, facet, current, desired)
	restoreErr := r.power.Restore(ctx, vm, rec)

	if mutationErr != nil {
		result := failed(mutationErr)
		if restoreErr != nil {
			result.Warning = fmt.Sprintf("additionally, VM could not be restored to power-on: %v", restoreErr)
		}
		return result
	}

	result := OperationResult{
		Name:   name,
		Status: StatusSuccess,
		Detail: "changed: " + change.Description,
	}
	if restoreErr != nil {
		result.Warning = fmt.Sprintf("mutation applied but VM could not be restored to power-on: %v", restoreErr)
	}

	// Step 9: verify convergence. The reconfigure task already succeeded,
	// so a divergent or failed re-read is a warning, never a failure: the
	// remote system is authoritative and benign races are possible.
	r.verify(ctx, vm, facet, desired, &result)
	return result
}

func (r *Reconciler) readFacet(ctx context.Context, vm VMHandle, facet Facet) (CurrentState, error) {
	cfg, err := vm.Config(ctx)
	if err != nil {
		return CurrentState{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return facet.Read(cfg), nil
}

func (r *Reconciler) verify(ctx context.Context, vm VMHandle, facet Facet, desired DesiredState, result *OperationResult) {
	observed, err := r.readFacet(ctx, vm, facet)
	if err != nil {
		r.appendWarning(result, fmt.Sprintf("applied, but verification re-read failed: %v", err))
		return
	}
	remaining, err := facet.Diff(observed, desired)
	if err != nil || remaining == nil {
		result.Detail = fmt.Sprintf("%s; now %s", result.Detail, facet.Describe(observed))
		return
	}
	r.appendWarning(result, "applied, but re-read does not yet match: "+facet.Describe(observed))
}

func (r *Reconciler) appendWarning(result *OperationResult, msg string) {
	if result.Warning == "" {
		result.Warning = msg
		return
	}
	result.Warning += "; " + msg
}
