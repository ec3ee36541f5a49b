package dirlock

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// --------------------------------------------------------------------------
// Termination hooks
//
// The contract is a two-step chain: run the emergency cleanup, then hand
// the signal to a TerminationHandler that decides the fate of the process.
// The default handler restores the OS default disposition and re-delivers
// the signal, so the process terminates exactly as it would have without
// the lock system installed (signal-indicated exit status included).
// --------------------------------------------------------------------------

// TerminationHandler decides what happens to the process after emergency
// cleanup has run for a termination signal.
type TerminationHandler interface {
	HandleTermination(sig os.Signal)
}

// TerminationHandlerFunc adapts a plain function to the TerminationHandler
// interface.
type TerminationHandlerFunc func(sig os.Signal)

func (f TerminationHandlerFunc) HandleTermination(sig os.Signal) {
	f(sig)
}

// defaultTermination re-delivers the signal with the default disposition
// restored, typically killing the process.
type defaultTermination struct{}

func (defaultTermination) HandleTermination(sig os.Signal) {
	signal.Reset(sig)
	redeliver(sig)
}

// DefaultTermination returns the default handler: restore the OS default
// disposition for the signal and re-deliver it to this process.
func DefaultTermination() TerminationHandler {
	return defaultTermination{}
}

// chainedTermination hands the signal to a previously installed custom
// handler instead of the default disposition. The prior handler decides
// whether the process terminates.
type chainedTermination struct {
	prev TerminationHandler
}

func (c chainedTermination) HandleTermination(sig os.Signal) {
	c.prev.HandleTermination(sig)
}

// ChainTermination returns a handler that invokes prev after cleanup,
// preserving whatever signal-handling contract the host process had before
// the lock system was installed.
func ChainTermination(prev TerminationHandler) TerminationHandler {
	return chainedTermination{prev: prev}
}

// --------------------------------------------------------------------------
// Hook installation
// --------------------------------------------------------------------------

// HookOption configures InstallCleanupHooks.
type HookOption func(*hookOptions)

type hookOptions struct {
	handler TerminationHandler
}

// WithTerminationHandler sets the handler invoked after cleanup. Use
// ChainTermination to keep a pre-existing custom handler in the loop.
// Default: DefaultTermination.
func WithTerminationHandler(h TerminationHandler) HookOption {
	return func(o *hookOptions) {
		if h != nil {
			o.handler = h
		}
	}
}

var installHooksOnce sync.Once

// InstallCleanupHooks installs the SIGINT and SIGTERM emergency-cleanup
// handlers for the lifetime of the process. On the first of those signals
// it calls CleanupAll, stops intercepting and hands the signal to the
// configured TerminationHandler.
//
// Installation happens at most once per process - repeat calls (e.g. from
// multiple packages initializing the lock system) are no-ops. It is an
// explicit call rather than a load-time side effect so hosts control when
// the process-wide signal contract changes.
func InstallCleanupHooks(opts ...HookOption) {
	options := &hookOptions{
		handler: DefaultTermination(),
	}
	for _, opt := range opts {
		opt(options)
	}

	installHooksOnce.Do(func() {
		ch := make(chan os.Signal, 2)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			sig := <-ch

			Logger.Infof("received %v, releasing %d held lock(s)", sig, ActiveLocks())
			CleanupAll()

			// Stop intercepting before handing the signal on, so the
			// process's prior signal behavior is back in place.
			signal.Stop(ch)
			options.handler.HandleTermination(sig)
		}()

		Logger.Debugf("installed termination cleanup hooks")
	})
}
