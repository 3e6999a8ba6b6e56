// Package command is the dispatch core: it defines commands and their option
// schemas, holds them in a Registry that resolves multi-word names by longest
// prefix, and parses and validates the options of a resolved command.
package command
