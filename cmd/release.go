package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/z3rone-org/dirlock/lib/dirlock"
)

// releaseCmd represents the release command
var releaseCmd = &cobra.Command{
	Use:   "release [path]",
	Short: "Release a previously acquired lock",
	Long: WrapString("Release the lock by removing the directory at the given path. " +
		"The directory is removed no matter which process created it. " +
		"Releasing a lock that does not exist is not an error."),
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

// runRelease handles the release command
func runRelease(_ *cobra.Command, args []string) error {
	// Break removes the directory regardless of the holder - the CLI has
	// no way of being the handle that originally created it
	if err := dirlock.New(args[0]).Break(); err != nil {
		return fmt.Errorf("failed to release lock: %v", err)
	}

	fmt.Printf("released=true\n")

	return nil
}
