// Package config defines all configuration structures for the Pharmyrus
// patent discovery service.  No I/O or parsing logic lives here — only plain
// data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

// Version is the service version reported by the info and health endpoints.
const Version = "6.0.0"

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CredentialsConfig holds the search API credential pool the rotator cycles
// through.  At least one key is required for the pipeline to run.
type CredentialsConfig struct {
	SearchAPIKeys []string `mapstructure:"search_api_keys"`
}

// SynonymSourceConfig holds the chemical synonym database endpoint (PubChem
// compatible REST layout).
type SynonymSourceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PatentSearchConfig holds the patent/web search API endpoint (SerpApi
// compatible).  DetailTimeout applies to the final resolution-chain hop,
// whose payloads are much larger than search responses.
type PatentSearchConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	DetailTimeout time.Duration `mapstructure:"detail_timeout"`
}

// RegistryCrawlerConfig holds the national patent-office crawler endpoint.
// The crawler is slow; its timeout is deliberately generous.
type RegistryCrawlerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SourcesConfig groups the three external collaborators.
type SourcesConfig struct {
	Synonyms SynonymSourceConfig   `mapstructure:"synonyms"`
	Patents  PatentSearchConfig    `mapstructure:"patents"`
	Registry RegistryCrawlerConfig `mapstructure:"registry"`
}

// PipelineConfig holds pacing and retry tunables for the discovery pipeline.
// The pacing delays are rate-limit contracts with the upstream sources, not
// performance knobs; lowering them risks upstream throttling.
type PipelineConfig struct {
	MaxAttempts   int           `mapstructure:"max_attempts"`
	QueryDelay    time.Duration `mapstructure:"query_delay"`
	HopDelay      time.Duration `mapstructure:"hop_delay"`
	FilingDelay   time.Duration `mapstructure:"filing_delay"`
	RegistryDelay time.Duration `mapstructure:"registry_delay"`
}

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration object.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         logging.Config    `mapstructure:"log"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Sources     SourcesConfig     `mapstructure:"sources"`
	Pipeline    PipelineConfig    `mapstructure:"pipeline"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// Validate checks cross-field consistency after defaults have been applied.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if len(c.Credentials.SearchAPIKeys) == 0 {
		return fmt.Errorf("credentials.search_api_keys must contain at least one key")
	}
	if c.Sources.Synonyms.BaseURL == "" {
		return fmt.Errorf("sources.synonyms.base_url is required")
	}
	if c.Sources.Patents.BaseURL == "" {
		return fmt.Errorf("sources.patents.base_url is required")
	}
	if c.Sources.Registry.BaseURL == "" {
		return fmt.Errorf("sources.registry.base_url is required")
	}
	if c.Pipeline.MaxAttempts < 1 {
		return fmt.Errorf("pipeline.max_attempts must be >= 1, got %d", c.Pipeline.MaxAttempts)
	}
	return nil
}
