// Package filesystem defines the filesystem interface the synchronizer
// operates against, with a real OS-backed implementation and an afero-backed
// one for tests.
package filesystem
