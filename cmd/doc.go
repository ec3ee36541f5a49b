// Package cmd implements the command-line interface for dirlock. It
// provides operations for acquiring, releasing and breaking directory
// based locks, plus a wrapper mode that holds a lock around an arbitrary
// child process.
//
// The commands:
//
//   - acquire: acquire a lock directory (left in place on exit)
//   - release: remove a lock directory, no matter who created it
//   - run: acquire, run a command, release on all exit paths
//   - perf: measure acquire/release round-trip latency
//
// See dirlock -help for a list of all commands.
package cmd
