//go:build !windows

package dirlock

import (
	"os"
	"syscall"
)

// redeliver sends sig back to this process so the now-restored default
// disposition runs and the exit status reflects the signal.
func redeliver(sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		os.Exit(1)
	}
	_ = syscall.Kill(os.Getpid(), s)
}
