// Package filesystem provides read access to the input files of a check.
//
// Both loaders go through the FS interface so tests can run against an
// in-memory afero filesystem instead of real files.
package filesystem
