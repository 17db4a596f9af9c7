package jar

import "strings"

// Config provides environment-based configuration for the jar manager.
type Config struct {
	// Secrets is a comma-separated list of signing/encryption secrets,
	// newest first for key rotation.
	Secrets string `env:"COOKIEJAR_SECRETS" envDefault:""`
	Domain  string `env:"COOKIEJAR_DOMAIN" envDefault:""`
	Path    string `env:"COOKIEJAR_PATH" envDefault:""`
	Secure  bool   `env:"COOKIEJAR_SECURE" envDefault:"false"`
	MaxSize int    `env:"COOKIEJAR_MAX_SIZE" envDefault:"4096"`
}

// DefaultConfig returns a Config matching the zero-attribute defaults: plain
// writes emit bare name=value lines until attributes are set explicitly.
func DefaultConfig() Config {
	return Config{
		MaxSize: MaxCookieSize,
	}
}

// parseSecrets splits comma-separated secrets for key rotation support.
// Empty strings are filtered out to prevent cryptographic vulnerabilities.
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// NewFromConfig creates a Manager from configuration. Explicit manager
// options override config values.
func NewFromConfig(cfg Config, opts ...ManagerOption) (*Manager, error) {
	defaults := make([]Option, 0, 3)
	if cfg.Domain != "" {
		defaults = append(defaults, WithDomain(cfg.Domain))
	}
	if cfg.Path != "" {
		defaults = append(defaults, WithPath(cfg.Path))
	}
	if cfg.Secure {
		defaults = append(defaults, WithSecure(cfg.Secure))
	}

	managerOpts := make([]ManagerOption, 0, len(opts)+2)
	if len(defaults) > 0 {
		managerOpts = append(managerOpts, WithDefaults(defaults...))
	}
	if cfg.MaxSize > 0 {
		managerOpts = append(managerOpts, WithMaxSize(cfg.MaxSize))
	}
	managerOpts = append(managerOpts, opts...)

	return New(cfg.parseSecrets(), managerOpts...)
}
