package tui

import (
	"bufio"
	"errors"
	"io"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

func TestSSHServerShutdownStopsServerThenStore(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		IdleTimeout: time.Minute,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if srv.store == nil {
		t.Fatal("store should be open")
	}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	served := make(chan error, 1)
	go func() { served <- srv.server.Serve(l) }()

	// The version banner shows the server is accepting.
	conn, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	banner, err := bufio.NewReader(conn).ReadString('\n')
	conn.Close()
	if err != nil || !strings.HasPrefix(banner, "SSH-2.0") {
		t.Fatalf("banner = %q, err = %v", banner, err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-served:
		if !errors.Is(err, ssh.ErrServerClosed) {
			t.Errorf("Serve returned %v, want ErrServerClosed", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server still serving after Shutdown")
	}

	if _, err := srv.store.BestScore("bestScore"); err == nil {
		t.Error("store should be closed after Shutdown")
	}
}
