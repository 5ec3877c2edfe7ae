package vsphere

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/vim25/soap"
)

const (
	// defaultPort is the standard vCenter HTTPS port.
	defaultPort = 443

	// defaultTaskTimeout bounds every power and reconfigure task wait.
	defaultTaskTimeout = 5 * time.Minute
)

// Options configures a management-plane connection.
type Options struct {
	// Server is the vCenter hostname or IP address.
	Server string

	// User is the vCenter username.
	User string

	// Password is the vCenter password.
	Password string

	// Port is the vCenter port; defaults to 443.
	Port int

	// Insecure disables TLS certificate verification.
	Insecure bool

	// TaskTimeout bounds each remote task wait; defaults to 5 minutes.
	TaskTimeout time.Duration
}

// Client holds an authenticated vCenter session. It must be released with
// Logout when no longer needed.
type Client struct {
	vc          *govmomi.Client
	taskTimeout time.Duration
}

// Connect establishes an authenticated session with the management plane.
func Connect(ctx context.Context, opts Options) (*Client, error) {
	if opts.Server == "" {
		return nil, fmt.Errorf("server must not be empty")
	}
	if opts.Port == 0 {
		opts.Port = defaultPort
	}
	if opts.TaskTimeout == 0 {
		opts.TaskTimeout = defaultTaskTimeout
	}

	u, err := soap.ParseURL(fmt.Sprintf("https://%s:%d/sdk", opts.Server, opts.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint URL: %w", err)
	}
	u.User = url.UserPassword(opts.User, opts.Password)

	vc, err := govmomi.NewClient(ctx, u, opts.Insecure)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", opts.Server, err)
	}

	return &Client{vc: vc, taskTimeout: opts.TaskTimeout}, nil
}

// Logout terminates the session. It is safe to call on a client whose
// session already expired; the resulting error can be logged and ignored.
func (c *Client) Logout(ctx context.Context) error {
	if c.vc == nil {
		return nil
	}
	if err := c.vc.Logout(ctx); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

// Inventory returns a VM locator over this session.
func (c *Client) Inventory() *Inventory {
	return &Inventory{client: c}
}

// Govmomi returns the underlying govmomi client for direct API access.
// This should be used sparingly; prefer the higher-level types.
func (c *Client) Govmomi() *govmomi.Client {
	return c.vc
}
