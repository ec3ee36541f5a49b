package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/z3rone-org/dirlock/lib/dirlock"
)

// acquireCmd represents the acquire command
var acquireCmd = &cobra.Command{
	Use:   "acquire [path]",
	Short: "Acquire a lock directory",
	Long: WrapString("Acquire the lock by creating the directory at the given path. " +
		"The command blocks, polling, until the directory could be created or the timeout expired. " +
		"On success the directory is left in place so a later release - possibly from another process - can remove it."),
	Args: cobra.ExactArgs(1),
	RunE: runAcquire,
}

func init() {
	setupLockFlags(acquireCmd)
}

// runAcquire handles the acquire command
func runAcquire(cmd *cobra.Command, args []string) error {
	// Bind command flags to viper
	if err := BindCommandFlags(cmd); err != nil {
		return err
	}

	lock := lockFromFlags(args[0])

	// Attempt to acquire the lock
	if err := lock.Acquire(); err != nil {
		if errors.Is(err, dirlock.ErrTimeout) {
			fmt.Printf("acquired=false\n")
		}
		return fmt.Errorf("failed to acquire lock: %v", err)
	}

	fmt.Printf("acquired=true\n")

	return nil
}
