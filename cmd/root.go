package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/z3rone-org/dirlock/lib/logging"
)

const (
	Version = "1.0.2"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dirlock",
		Short: "directory based filesystem lock",
		Long: fmt.Sprintf(`dirlock (v%s)

A cooperative mutual-exclusion lock built on the atomicity of directory
creation, for coordinating processes that share a filesystem - including
network and cluster filesystems where file based locking primitives are
not atomic.`, Version),
		PersistentPreRunE: setupLogging,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dirlock",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dirlock v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(initConfig)

	// Add Commands
	RootCmd.AddCommand(acquireCmd)
	RootCmd.AddCommand(releaseCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(perfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// setupLogging configures the loggers from the persistent flags
func setupLogging(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	logging.InitLoggers(viper.GetString("log-level"))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
