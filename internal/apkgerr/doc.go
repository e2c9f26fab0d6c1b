// Package apkgerr defines the error kinds surfaced by package builds.
//
// Every internal failure is tagged with exactly one sentinel (path format,
// io, database, archive, encoding) before it reaches the public API. The
// library never retries, logs, or swallows an error; it returns the tagged
// chain and lets the caller decide.
package apkgerr
