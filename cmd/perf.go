package cmd

import (
	"fmt"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// perfCmd represents the perf command
var perfCmd = &cobra.Command{
	Use:   "perf [path]",
	Short: "Measure acquire/release round-trip latency",
	Long: WrapString("Repeatedly acquire and release an uncontended lock at the given path and report " +
		"latency statistics. Useful to judge how expensive the lock is on a particular (network) filesystem."),
	Args: cobra.ExactArgs(1),
	RunE: runPerf,
}

func init() {
	setupLockFlags(perfCmd)

	key := "ops"
	perfCmd.Flags().Int(key, 1000, WrapString("Number of acquire/release round trips to perform"))
}

// runPerf handles the perf command
func runPerf(cmd *cobra.Command, args []string) error {
	// Bind command flags to viper
	if err := BindCommandFlags(cmd); err != nil {
		return err
	}

	ops := viper.GetInt("ops")
	lock := lockFromFlags(args[0])

	timer := gometrics.NewTimer()

	for i := 0; i < ops; i++ {
		start := time.Now()

		if err := lock.Acquire(); err != nil {
			return fmt.Errorf("failed to acquire lock on round trip %d: %v", i, err)
		}
		if err := lock.Release(); err != nil {
			return fmt.Errorf("failed to release lock on round trip %d: %v", i, err)
		}

		timer.UpdateSince(start)
	}

	// Print the report
	ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("ops:    %d\n", timer.Count())
	fmt.Printf("mean:   %v\n", time.Duration(int64(timer.Mean())))
	fmt.Printf("median: %v\n", time.Duration(int64(ps[0])))
	fmt.Printf("p95:    %v\n", time.Duration(int64(ps[1])))
	fmt.Printf("p99:    %v\n", time.Duration(int64(ps[2])))
	fmt.Printf("max:    %v\n", time.Duration(timer.Max()))

	return nil
}
