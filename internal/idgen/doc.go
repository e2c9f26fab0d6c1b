// Package idgen produces the timestamp-seeded, strictly increasing integer
// identifiers used as primary keys across all rows of one package build.
package idgen
