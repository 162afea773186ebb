package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command or subcommand that does not
	// exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when flags or arguments are missing or malformed.
	ErrUsage = errors.New("invalid usage")
)
