// Package dispatch is the top-level entry point of the CLI: it resolves the
// raw arguments, routes to help or to parse, validate and execute, and maps
// the outcome to a process exit code.
package dispatch
