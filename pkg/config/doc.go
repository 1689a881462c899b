// Package config loads typed configuration from the environment or from YAML
// documents.
//
// Environment loading is built on caarlos0/env struct tags, with .env files
// picked up via godotenv. Each configuration type is parsed once per process
// and cached, so repeated Load calls for the same type are cheap and always
// observe the same values.
//
// # Usage
//
//	type CheckerConfig struct {
//	    AllowedTags []string `env:"HTML_ALLOWED_TAGS" envSeparator:","`
//	}
//
//	var cfg CheckerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// File-based configuration uses plain yaml struct tags:
//
//	var cfg CheckerConfig
//	err := config.LoadYAML("whitelist.yaml", &cfg)
//
// YAML loading is not cached; every call reads the file.
package config
