// Package sync implements the destructive source-to-home synchronization
// that is the heart of dotskills: validate the source, wipe and recreate the
// destination skills tree, copy the instructions file, copy every skill
// directory, and report what was installed.
//
// The run is a single linear pass with no rollback. The first failing
// filesystem operation aborts the run and may leave the destination
// partially updated; re-running always converges on the current source.
package sync
