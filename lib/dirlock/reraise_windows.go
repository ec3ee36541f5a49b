//go:build windows

package dirlock

import "os"

// redeliver cannot re-send a signal to the own process on Windows, so
// termination degrades to a plain non-zero exit after cleanup has run.
func redeliver(_ os.Signal) {
	os.Exit(1)
}
