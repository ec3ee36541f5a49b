package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/z3rone-org/dirlock/lib/dirlock"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [path] -- command [args...]",
	Short: "Run a command while holding a lock",
	Long: WrapString("Acquire the lock at the given path, run the command and release the lock again. " +
		"The lock is released on every exit path: normal exit of the child, a failing child, and SIGINT/SIGTERM " +
		"delivered to this process. The exit code of the child is passed through."),
	Args: cobra.MinimumNArgs(2),
	RunE: runRun,
}

func init() {
	setupLockFlags(runCmd)
}

// runRun handles the run command
func runRun(cmd *cobra.Command, args []string) error {
	// Bind command flags to viper
	if err := BindCommandFlags(cmd); err != nil {
		return err
	}

	// Make sure the lock is released even if we die from a signal while
	// the child is running
	dirlock.InstallCleanupHooks()

	lock := lockFromFlags(args[0])

	err := lock.Do(func() error {
		child := exec.Command(args[1], args[2:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		return child.Run()
	})

	// Pass the child's exit code through. The lock was already released
	// by Do, so exiting here does not leak it.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}

	if err != nil {
		return fmt.Errorf("failed to run command under lock: %v", err)
	}

	return nil
}
