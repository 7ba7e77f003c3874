package config

import "errors"

// Sentinel error kinds for configuration. Loader errors wrap one of these so
// callers can use errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
