package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a config value cannot be retrieved after loading
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingConfigFile is returned when a configuration file cannot be read
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrParsingConfigFile is returned when a configuration file cannot be decoded
	ErrParsingConfigFile = errors.New("failed to parse config file")
)
