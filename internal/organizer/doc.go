// Package organizer runs one reorganization pass over a source tree.
//
// A run checks readiness, takes an exclusive lock on the destination (apply
// mode only), scans the source, and then handles one file at a time: resolve
// its date, plan its destination, hand the operation to an Executor. A file
// that fails is recorded in the Report and the run moves on. Cancellation is
// honoured between files, never in the middle of one.
package organizer
