package shutdown_test

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"notehub/pkg/shutdown"
)

func TestWaitExecutesHooks(t *testing.T) {
	hook1Called := make(chan struct{})
	hook2Called := make(chan struct{})

	hook1 := func(ctx context.Context) error {
		close(hook1Called)
		return nil
	}
	hook2 := func(ctx context.Context) error {
		close(hook2Called)
		return nil
	}

	go func() {
		shutdown.Wait(context.Background(), time.Second, hook1, hook2)
	}()

	time.Sleep(100 * time.Millisecond)

	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("Failed to find process: %v", err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("Failed to send signal: %v", err)
	}

	select {
	case <-hook1Called:
	case <-time.After(2 * time.Second):
		t.Error("Hook 1 was not called")
	}

	select {
	case <-hook2Called:
	case <-time.After(2 * time.Second):
		t.Error("Hook 2 was not called")
	}
}

func TestWaitRespectsTimeout(t *testing.T) {
	slowHook := func(ctx context.Context) error {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
		}
		return nil
	}

	waitDone := make(chan struct{})
	go func() {
		shutdown.Wait(context.Background(), 200*time.Millisecond, slowHook)
		close(waitDone)
	}()

	time.Sleep(100 * time.Millisecond)

	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("Failed to find process: %v", err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("Failed to send signal: %v", err)
	}

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Error("Wait did not return after hook timeout")
	}
}

func TestWaitReturnsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	waitDone := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, time.Second)
		close(waitDone)
	}()

	cancel()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Error("Wait did not return after context cancellation")
	}
}
