package htmlcheck

import "github.com/murcoder/helperkit/pkg/config"

// Config binds the allowed-tag whitelist to external configuration, for
// deployments where the set is operated rather than hard-coded.
//
// Environment example:
//
//	HTML_ALLOWED_TAGS=p,a,em,strong,ul,ol,li
//
// YAML example (loaded with config.LoadYAML):
//
//	allowed_tags:
//	  - p
//	  - a
//	  - em
type Config struct {
	AllowedTags []string `env:"HTML_ALLOWED_TAGS" envSeparator:"," yaml:"allowed_tags"`
}

// LoadAllowedTags returns the whitelist from the environment (including any
// .env file the config loader picks up). The returned slice is in whatever
// case the environment supplies; see the package documentation for the
// case-sensitivity contract.
func LoadAllowedTags() ([]string, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return cfg.AllowedTags, nil
}
