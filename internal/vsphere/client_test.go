package vsphere

import (
	"context"
	"crypto/tls"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/vmware/govmomi/simulator"
)

// startSim boots an in-process vCenter (vcsim) with the default VPX
// inventory and returns connection options for it.
func startSim(t *testing.T) Options {
	t.Helper()

	model := simulator.VPX()
	if err := model.Create(); err != nil {
		t.Fatalf("failed to create simulator model: %v", err)
	}
	model.Service.TLS = new(tls.Config)
	server := model.Service.NewServer()

	t.Cleanup(func() {
		server.Close()
		model.Remove()
	})

	host, portStr, err := net.SplitHostPort(server.URL.Host)
	if err != nil {
		t.Fatalf("failed to split simulator host: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("failed to parse simulator port: %v", err)
	}
	password, _ := server.URL.User.Password()

	return Options{
		Server:      host,
		User:        server.URL.User.Username(),
		Password:    password,
		Port:        port,
		Insecure:    true,
		TaskTimeout: time.Minute,
	}
}

// connectSim connects to a fresh simulator and registers logout cleanup.
func connectSim(t *testing.T) *Client {
	t.Helper()

	client, err := Connect(context.Background(), startSim(t))
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() {
		_ = client.Logout(context.Background())
	})
	return client
}

func TestConnect(t *testing.T) {
	opts := startSim(t)

	client, err := Connect(context.Background(), opts)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := client.Logout(context.Background()); err != nil {
		t.Errorf("Logout() error = %v", err)
	}
}

func TestConnect_BadCredentials(t *testing.T) {
	opts := startSim(t)
	opts.Password = "wrong"

	if _, err := Connect(context.Background(), opts); err == nil {
		t.Error("Connect() succeeded with bad credentials")
	}
}

func TestConnect_EmptyServer(t *testing.T) {
	if _, err := Connect(context.Background(), Options{User: "u", Password: "p"}); err == nil {
		t.Error("Connect() succeeded with empty server")
	}
}
