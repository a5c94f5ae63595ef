package model

import "time"

// Config holds the runtime configuration for tripod.
//
// Lexicons and domain vocabulary are deliberately NOT configurable here:
// they are fixed literal data injected into the extractor at construction.
type Config struct {
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// ConcurrencyConfig controls parallelism.
type ConcurrencyConfig struct {
	// Workers is the number of documents processed in parallel in batch mode.
	Workers int `yaml:"workers" json:"workers"`

	// Sentences is the number of sentences of one document tagged in
	// parallel. 1 means strictly sequential; any value keeps output
	// deterministic because results are merged back in sentence order.
	Sentences int `yaml:"sentences" json:"sentences"`
}

// CacheConfig controls report and tagging caches.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"` // Disk cache directory
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig controls the optional summary provider.
// An empty Provider disables the LLM entirely.
type LLMConfig struct {
	Provider   string `yaml:"provider" json:"provider"` // "openai", "ollama" or ""
	Model      string `yaml:"model" json:"model"`
	APIKey     string `yaml:"-" json:"-"` // From environment only, never persisted
	BaseURL    string `yaml:"base_url" json:"base_url"`
	Timeout    int    `yaml:"timeout" json:"timeout"` // Seconds
	MaxTokens  int    `yaml:"max_tokens" json:"max_tokens"`
	HTTPProxy  string `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" json:"https_proxy"`
}

// DefaultConfig returns the configuration used when no file, environment
// variable or flag overrides a value.
func DefaultConfig() *Config {
	return &Config{
		Concurrency: ConcurrencyConfig{
			Workers:   4,
			Sentences: 1,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.tripod/cache at startup
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
