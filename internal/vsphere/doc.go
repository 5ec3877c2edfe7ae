// Package vsphere provides a client wrapper for interacting with a vCenter
// or ESXi management plane.
//
// This package wraps github.com/vmware/govmomi to provide:
//   - Session management (connect, logout)
//   - Whole-inventory VM lookup by name
//   - A VM handle exposing power, config-read, and reconfigure operations
//     with bounded task waits
//
// The Client type holds the authenticated session. The session is shared
// read-only across all VM operations in a batch; govmomi's SOAP client is
// safe for concurrent use.
//
// Connection Management:
//
//	client, err := vsphere.Connect(ctx, vsphere.Options{
//	    Server:   "vcenter.example.com",
//	    User:     "admin@vsphere.local",
//	    Password: password,
//	    Insecure: true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Logout(context.Background())
//
// Task Waits:
//
// Power and reconfigure operations submit asynchronous vCenter tasks. The VM
// handle waits for each task with a per-client ceiling (Options.TaskTimeout,
// default 5 minutes) so no operation blocks indefinitely; an exceeded wait
// surfaces as context.DeadlineExceeded to the caller.
//
// The recon package's Inventory and VMHandle interfaces are satisfied by
// *Inventory and the VM wrapper in this package.
package vsphere
