// Package completion generates shell completion scripts from the command
// registry. Generators only see command definitions; they never execute
// commands.
package completion
