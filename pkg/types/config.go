package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with every request (e.g. "arxiv-mcp/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetchConfig holds settings for the arXiv feed fetcher.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the arXiv query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// RateDelay is the minimum time between two requests issued by the same
	// fetcher (default 3s). Zero disables throttling.
	RateDelay time.Duration `json:"rate_delay" yaml:"rate_delay" mapstructure:"rate_delay"`

	// ContactEmail is appended to the User-Agent when set, as arXiv asks of
	// automated clients.
	ContactEmail string `json:"contact_email,omitempty" yaml:"contact_email,omitempty" mapstructure:"contact_email"`
}

// Transport selects how the MCP server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// ServerConfig holds settings for the MCP server.
type ServerConfig struct {
	Transport Transport `json:"transport" yaml:"transport" mapstructure:"transport"`

	// Addr is the listen address for the HTTP transport (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// HistoryConfig holds settings for the tool-call journal.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables the journal.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Config groups all settings of the arxiv-mcp binary.
type Config struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}

// Defaults for Config.
const (
	DefaultBaseURL   = "https://export.arxiv.org/api/query"
	DefaultTimeout   = 30 * time.Second
	DefaultRateDelay = 3 * time.Second
	DefaultUserAgent = "arxiv-mcp/0.1"
	DefaultAddr      = ":8080"
)

// DefaultConfig returns the configuration used when no file, flag or
// environment variable overrides a value.
func DefaultConfig() Config {
	return Config{
		Fetch: FetchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			BaseURL:   DefaultBaseURL,
			RateDelay: DefaultRateDelay,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Addr:      DefaultAddr,
		},
		Log: LogConfig{Level: "info"},
	}
}
