// Package manifest parses and validates command manifests: YAML files that
// declare each command's name, aliases, option schema and the key of the Go
// action implementing it. Manifests are checked against an embedded JSON
// Schema and against the CLI version they were written for.
package manifest
