// Package recon implements per-VM reconciliation of configuration facets
// against a vSphere management plane.
//
// A facet is one independently reconcilable aspect of a VM's configuration.
// Two facets exist:
//   - Notification settings (vmOpNotificationToAppEnabled + timeout)
//   - PTP device (VirtualPrecisionClock presence)
//
// The Reconciler drives each VM through locate -> read -> diff -> mutate ->
// verify, powering the VM off first when the facet requires it and restoring
// the original power state afterwards. Each VM in a batch is fully isolated:
// a failure on one VM never aborts the others, and results are reported in
// input order.
//
// Idempotence:
//
// A mutation is only issued when the observed state differs from the desired
// state. Re-running the same desired state against an already-conforming VM
// performs zero remote mutations.
//
// Power Restoration:
//
// If the reconciler powered a VM off, it powers it back on regardless of
// whether the mutation succeeded. A failed restore after a successful
// mutation is reported as a warning on an otherwise successful result,
// because leaving a fleet member powered off is operationally significant
// but does not undo an applied change.
//
// Consumer-Side Interfaces:
//
// The package defines the Inventory and VMHandle interfaces for the
// management-plane operations it needs. In production these are satisfied by
// internal/vsphere; in tests by mock implementations.
package recon
