// Package cli is the process surface of td. A single Cobra root command
// receives the raw arguments and hands them to the dispatcher, which owns
// command resolution, option parsing and help.
package cli
