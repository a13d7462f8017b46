package main

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_StartsAndShutsDown(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ADDR", "127.0.0.1:0")
	t.Setenv("DATA_PATH", filepath.Join(t.TempDir(), "loadup.db"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := Run(ctx)
	assert.NoError(t, err)
}

func TestMain_GracefulExit(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ADDR", "127.0.0.1:0")
	t.Setenv("DATA_PATH", filepath.Join(t.TempDir(), "loadup.db"))

	// Run main in a goroutine (this will block waiting for signal)
	go func() {
		main()
	}()

	// Give time for main to start
	time.Sleep(500 * time.Millisecond)

	// Send SIGINT to simulate Ctrl+C
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("unable to find process: %v", err)
	}
	_ = p.Signal(syscall.SIGINT)

	// Wait for graceful shutdown
	time.Sleep(1 * time.Second)
}
