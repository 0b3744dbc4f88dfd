package config

import "time"

// Default values applied to zero-value configuration fields.
const (
	DefaultServerPort      = 8000
	DefaultServerMode      = "release"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Minute // pipeline responses are synchronous and slow
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSynonymBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	DefaultSynonymTimeout = 30 * time.Second

	DefaultPatentSearchBaseURL = "https://serpapi.com/search.json"
	DefaultPatentTimeout       = 30 * time.Second
	DefaultDetailTimeout       = 45 * time.Second

	DefaultRegistryTimeout = 60 * time.Second

	DefaultMaxAttempts   = 3
	DefaultQueryDelay    = 400 * time.Millisecond
	DefaultHopDelay      = 800 * time.Millisecond
	DefaultFilingDelay   = 1500 * time.Millisecond
	DefaultRegistryDelay = 2 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "pharmyrus"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields already set by the caller are left unchanged so explicit
// configuration always wins.  Call after unmarshalling and before Validate.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Sources.Synonyms.BaseURL == "" {
		cfg.Sources.Synonyms.BaseURL = DefaultSynonymBaseURL
	}
	if cfg.Sources.Synonyms.Timeout == 0 {
		cfg.Sources.Synonyms.Timeout = DefaultSynonymTimeout
	}
	if cfg.Sources.Patents.BaseURL == "" {
		cfg.Sources.Patents.BaseURL = DefaultPatentSearchBaseURL
	}
	if cfg.Sources.Patents.Timeout == 0 {
		cfg.Sources.Patents.Timeout = DefaultPatentTimeout
	}
	if cfg.Sources.Patents.DetailTimeout == 0 {
		cfg.Sources.Patents.DetailTimeout = DefaultDetailTimeout
	}
	if cfg.Sources.Registry.Timeout == 0 {
		cfg.Sources.Registry.Timeout = DefaultRegistryTimeout
	}

	if cfg.Pipeline.MaxAttempts == 0 {
		cfg.Pipeline.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Pipeline.QueryDelay == 0 {
		cfg.Pipeline.QueryDelay = DefaultQueryDelay
	}
	if cfg.Pipeline.HopDelay == 0 {
		cfg.Pipeline.HopDelay = DefaultHopDelay
	}
	if cfg.Pipeline.FilingDelay == 0 {
		cfg.Pipeline.FilingDelay = DefaultFilingDelay
	}
	if cfg.Pipeline.RegistryDelay == 0 {
		cfg.Pipeline.RegistryDelay = DefaultRegistryDelay
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// NewDefaultConfig returns a Config populated entirely from defaults.  Note
// that the result does not pass Validate until a credential pool and a
// registry crawler URL are supplied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
