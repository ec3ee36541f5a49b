package dirlock

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"
)

// TestSignalCleanup verifies that a process holding a lock removes the lock
// directory when it receives SIGTERM and still dies from the signal.
//
// The test re-executes the test binary as a child process (see
// TestHelperHoldLock), waits until the child reports that it holds the
// lock, delivers SIGTERM and checks both the filesystem state and the
// child's exit status.
func TestSignalCleanup(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signal re-delivery is not supported on windows")
	}

	lockDir := filepath.Join(t.TempDir(), ".lock")

	child := exec.Command(os.Args[0], "-test.run=TestHelperHoldLock")
	child.Env = append(os.Environ(),
		"DIRLOCK_TEST_HOLD=1",
		"DIRLOCK_TEST_PATH="+lockDir,
	)

	stdout, err := child.StdoutPipe()
	if err != nil {
		t.Fatalf("failed to open stdout pipe: %v", err)
	}
	if err := child.Start(); err != nil {
		t.Fatalf("failed to start helper process: %v", err)
	}

	// Wait for the child to report that it holds the lock
	line, err := bufio.NewReader(stdout).ReadString('\n')
	if err != nil || !strings.HasPrefix(line, "held") {
		_ = child.Process.Kill()
		_ = child.Wait()
		t.Fatalf("helper process did not acquire the lock: %q, %v", line, err)
	}

	if _, err := os.Stat(lockDir); err != nil {
		t.Fatalf("lock directory missing while the helper holds it: %v", err)
	}

	if err := child.Process.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("failed to signal helper process: %v", err)
	}
	err = child.Wait()

	// The helper must have died from SIGTERM, not exited normally
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected the helper to die from the signal, got %v", err)
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() || status.Signal() != syscall.SIGTERM {
		t.Errorf("expected a SIGTERM-indicated exit status, got %v", exitErr)
	}

	if _, err := os.Stat(lockDir); !os.IsNotExist(err) {
		t.Errorf("lock directory still exists after SIGTERM cleanup")
	}
}

// TestHelperHoldLock is not a real test. It is the helper process body for
// TestSignalCleanup: it installs the cleanup hooks, acquires the lock named
// by the environment, reports readiness on stdout and then blocks until it
// is killed.
func TestHelperHoldLock(t *testing.T) {
	if os.Getenv("DIRLOCK_TEST_HOLD") != "1" {
		return
	}

	InstallCleanupHooks()

	lock := New(os.Getenv("DIRLOCK_TEST_PATH"))
	if err := lock.Acquire(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("held")

	// Block until the parent kills us
	time.Sleep(30 * time.Second)
	os.Exit(1)
}
