package config

import "errors"

// Validation errors. Each one groups the failures of one configuration
// section, the details are wrapped after it.
var (
	// ErrInvalidClientConfigs reports a client configuration without a
	// server URL, a session file or a positive request timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidStorageConfigs reports a missing DSN or an incomplete image
	// bucket section.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs reports token or bcrypt settings that cannot work.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs reports an unusable listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
