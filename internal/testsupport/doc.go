// Package testsupport carries shared helpers for tests: media fixtures,
// archive member extraction, and snapshot reopening.
package testsupport
