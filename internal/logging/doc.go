// Package logging builds the slog logger used by the CLI. The library itself
// never logs; every failure is returned as a typed error instead.
package logging
