// Package file loads giraffe settings from the TOML config file,
// overlaid with environment variables. Every setting has a working
// default, so a missing config file is not an error.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the settings file looked up inside the config directory.
const ConfigFileName = "config.toml"

// Settings holds every tunable of the resolution pipeline.
type Settings struct {
	Resolver ResolverSettings `toml:"resolver"`
	Graph    GraphSettings    `toml:"graph"`
	Sequence SequenceSettings `toml:"sequence"`
	HTTP     HTTPSettings     `toml:"http"`
}

// ResolverSettings configure the name-resolution service.
type ResolverSettings struct {
	// URL is the lookup endpoint.
	URL string `toml:"url" envconfig:"GIRAFFE_RESOLVER_URL"`

	// Namespace is the ontology namespace qualifying matches must carry.
	Namespace string `toml:"namespace" envconfig:"GIRAFFE_RESOLVER_NAMESPACE"`
}

// GraphSettings configure the knowledge-graph query service.
type GraphSettings struct {
	// URL is the cypher endpoint.
	URL string `toml:"url" envconfig:"GIRAFFE_GRAPH_URL"`
}

// SequenceSettings configure sequence retrieval.
type SequenceSettings struct {
	// URL is the sequence service root.
	URL string `toml:"url" envconfig:"GIRAFFE_SEQUENCE_URL"`

	// Padding is the default symmetric flanking margin in bases.
	Padding int `toml:"padding" envconfig:"GIRAFFE_SEQUENCE_PADDING"`
}

// HTTPSettings configure the shared HTTP behaviour.
type HTTPSettings struct {
	// TimeoutSeconds bounds each request; there are no retries.
	TimeoutSeconds int `toml:"timeout_seconds" envconfig:"GIRAFFE_HTTP_TIMEOUT_SECONDS"`
}

// Defaults returns the settings used when no config file or environment
// overrides are present: the public service endpoints.
func Defaults() Settings {
	return Settings{
		Resolver: ResolverSettings{
			URL:       "https://name-resolution-sri.renci.org/lookup",
			Namespace: "MONDO",
		},
		Graph: GraphSettings{
			URL: "https://automat.renci.org/gwas-catalog/cypher",
		},
		Sequence: SequenceSettings{
			URL:     "https://togows.org",
			Padding: 100,
		},
		HTTP: HTTPSettings{
			TimeoutSeconds: 10,
		},
	}
}

// Load reads settings from configDir/config.toml (default config dir
// ~/.giraffe), then applies environment variable overrides. A missing
// file yields the defaults; a malformed file is an error.
func Load(configDir string) (Settings, error) {
	s := Defaults()

	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return s, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".giraffe")
	}

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file yet - run on defaults.
	default:
		return s, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := envconfig.Process("", &s); err != nil {
		return s, fmt.Errorf("applying environment overrides: %w", err)
	}

	return s, nil
}

// Timeout returns the HTTP timeout as a duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.HTTP.TimeoutSeconds) * time.Second
}
