// Package config defines generator configuration and its loading hooks.
//
// Conventions:
//   - Defaults reproduce the historical generator exactly, so a run with no
//     file and no environment emits the same layout as before.
//   - Loader errors wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Public Emojitracker API endpoints.
const (
	// EmojitrackerRankingsURL is the legacy rankings endpoint and the default source.
	EmojitrackerRankingsURL = "http://emojitracker.com/api/rankings"
	// EmojitrackerV1APIRankingsURL is the versioned API endpoint.
	EmojitrackerV1APIRankingsURL = "https://api.emojitracker.com/v1/rankings"
)

// Defaults.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultPackage      = "main"
	DefaultTypeName     = "emojiRanking"
	DefaultVarName      = "emojiRankings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SourceURL is the rankings endpoint to GET.
	SourceURL string `koanf:"source_url"`

	// FetchTimeoutMS bounds the whole HTTP exchange.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// Package, TypeName and VarName shape the generated declaration:
	//   package <Package>
	//   var <VarName> = []<TypeName>{...}
	Package  string `koanf:"package"`
	TypeName string `koanf:"type_name"`
	VarName  string `koanf:"var_name"`

	// Accessor, when set, adds `func <Accessor>() []<TypeName>` returning the data.
	Accessor string `koanf:"accessor"`

	// ExportedFields switches field keys from char/id/name/score to Char/ID/Name/Score.
	ExportedFields bool `koanf:"exported_fields"`

	// ASCIIOnly escapes every non-ASCII rune in string literals.
	ASCIIOnly bool `koanf:"ascii_only"`

	// MetricsTextfile, when set, receives run metrics in Prometheus text format.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		SourceURL:      EmojitrackerRankingsURL,
		FetchTimeoutMS: int(DefaultFetchTimeout / time.Millisecond),
		Package:        DefaultPackage,
		TypeName:       DefaultTypeName,
		VarName:        DefaultVarName,
	}
}

// FetchTimeout returns the configured timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// Validate checks the values the loader cannot type-check on its own.
// Identifier validity is checked by the emitter, which owns that grammar.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return fmt.Errorf("%w: source_url must not be empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.SourceURL)
	if err != nil {
		return fmt.Errorf("%w: source_url: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: source_url must be http or https, got %q", ErrInvalidConfig, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: source_url has no host", ErrInvalidConfig)
	}
	if c.FetchTimeoutMS <= 0 {
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.Package == "" || c.TypeName == "" || c.VarName == "" {
		return fmt.Errorf("%w: package, type_name and var_name must not be empty", ErrInvalidConfig)
	}
	return nil
}
