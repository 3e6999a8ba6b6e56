// Package help renders the generic command listing and per-command help.
// Per-command pages come from Markdown files when one exists for the command;
// otherwise usage is generated from the command's option schema.
package help
