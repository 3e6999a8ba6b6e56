package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when registering a command without a canonical name.
var ErrEmptyName = errors.New("command name must not be empty")

// DuplicateCommandError reports a name or alias that is already registered.
type DuplicateCommandError struct {
	Name     string // colliding word sequence, space-joined
	Existing string // canonical name of the command that already owns it
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command '%s' conflicts with already registered command '%s'", e.Name, e.Existing)
}

// DuplicateOptionError reports two options of one command sharing a form.
type DuplicateOptionError struct {
	Command string
	Option  string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("command '%s' declares option '%s' more than once", e.Command, e.Option)
}

// CommandNotFoundError reports input that matches no registered command.
type CommandNotFoundError struct {
	Tokens []string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("Command '%s' was not found", strings.Join(e.Tokens, " "))
}

// UnknownOptionError reports an option the command does not declare.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("Invalid option: '%s'", e.Option)
}

// MissingRequiredOptionError reports the first required option that was not supplied.
type MissingRequiredOptionError struct {
	Option string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("Required option %s not specified", e.Option)
}

// MissingOptionValueError reports a value-taking option at the end of input.
type MissingOptionValueError struct {
	Option string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("Option '%s' requires a value", e.Option)
}

// CustomValidationError carries the message returned by a command's validator.
type CustomValidationError struct {
	Message string
}

func (e *CustomValidationError) Error() string {
	return e.Message
}
