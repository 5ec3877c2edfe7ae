package recon

import "errors"

// Error taxonomy for reconciliation. Per-VM failures wrap one of these
// sentinels so callers can classify outcomes with errors.Is.
var (
	// ErrNotFound indicates no VM with the given name exists in inventory.
	ErrNotFound = errors.New("virtual machine not found")

	// ErrAmbiguous indicates more than one VM matched the given name.
	ErrAmbiguous = errors.New("virtual machine name is ambiguous")

	// ErrRead indicates a transport or permission failure while reading VM
	// state. An unset facet is never a read error.
	ErrRead = errors.New("failed to read virtual machine state")

	// ErrInvalidArgument indicates a caller-supplied value was rejected,
	// e.g. a non-positive notification timeout.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPowerTransition indicates a power-off or power-on request was
	// rejected or did not complete.
	ErrPowerTransition = errors.New("power transition failed")

	// ErrMutation indicates a reconfigure task was rejected by the
	// management plane.
	ErrMutation = errors.New("reconfiguration failed")

	// ErrTimeout indicates a bounded wait on a remote task elapsed.
	ErrTimeout = errors.New("timed out waiting for task")
)
