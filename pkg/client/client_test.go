package client

import (
	"net"
	"testing"
	"time"

	"github.com/iamNilotpal/ignitedb/internal/engine"
	"github.com/iamNilotpal/ignitedb/internal/server"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"github.com/stretchr/testify/require"
)

// startTestServer opens an engine over a fresh temp directory and runs a
// server on an ephemeral port in the background, returning its address.
func startTestServer(t *testing.T) string {
	t.Helper()

	opts := options.NewDefaultOptions()
	opts.DataDir = t.TempDir()
	opts.LogOptions.Directory = ""

	log := logger.NewDevelopment("client-test")
	eng, err := engine.Open(&engine.Config{Options: &opts, Logger: log})
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	srv := server.New(addr, eng, log)
	go srv.Run()

	// Give the listener a moment to bind before the first dial.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	return addr
}

// S8 — end-to-end over TCP.
func TestEndToEnd(t *testing.T) {
	addr := startTestServer(t)
	c := New(addr)

	require.NoError(t, c.Set("k", "v"))

	v, ok, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)

	require.NoError(t, c.Remove("k"))

	_, ok, err = c.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	err = c.Remove("k")
	require.Error(t, err)
}
