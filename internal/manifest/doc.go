// Package manifest loads the TOML build manifests consumed by the CLI and
// turns them into packages. Validation happens at load time so build failures
// point at the manifest, not at the write pipeline.
package manifest
