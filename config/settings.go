package config

import (
	"github.com/kbukum/fetchkit/logger"
	"github.com/kbukum/fetchkit/transport"
	"github.com/kbukum/fetchkit/validation"
)

// FetcherSettings configures the fetcher layer.
type FetcherSettings struct {
	// BaseURL, when set, makes the application construct a path-based
	// fetcher; absent, targets must be absolute URLs.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"omitempty,url"`

	// Headers is the initial header layer, re-merged on every dispatch.
	Headers map[string]string `yaml:"headers" mapstructure:"headers" json:"headers"`
}

// Settings is the top-level fetchkit configuration.
type Settings struct {
	Fetcher   FetcherSettings  `yaml:"fetcher" mapstructure:"fetcher" json:"fetcher"`
	Transport transport.Config `yaml:"transport" mapstructure:"transport" json:"transport"`
	Logging   logger.Config    `yaml:"logging" mapstructure:"logging" json:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (s *Settings) ApplyDefaults() {
	s.Transport.ApplyDefaults()
	s.Logging.ApplyDefaults()
}

// Validate checks the whole settings tree.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	if err := s.Transport.Validate(); err != nil {
		return err
	}
	return s.Logging.Validate()
}

// BuildTransport constructs the default transport client from the settings.
func (s *Settings) BuildTransport() (*transport.Client, error) {
	return transport.NewClient(s.Transport)
}

// BuildLogger constructs a logger from the settings.
func (s *Settings) BuildLogger(serviceName string) *logger.Logger {
	cfg := s.Logging
	cfg.ApplyDefaults()
	return logger.New(&cfg, serviceName)
}
