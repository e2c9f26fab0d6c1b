// Package main hosts the ankigen CLI.
//
// The Cobra command tree wraps the ankigen library for terminal use: `build`
// assembles a package from a TOML manifest, `inspect` lists a finished
// package's members and media manifest, and `init` scaffolds a starter
// manifest. Keep this package thin; build behavior belongs in the library and
// its internal packages.
package main
