package fetch

import (
	"net/url"

	"github.com/yildizm/molview/internal/molerr"
)

// Default endpoints
const (
	DefaultFilesURL         = "https://files.rcsb.org/download"
	DefaultSearchURL        = "https://search.rcsb.org/rcsbsearch/v2/query"
	DefaultAlphaFoldURL     = "https://alphafold.ebi.ac.uk/files"
	DefaultAlphaFoldVersion = 4
	DefaultMaxResults       = 10
)

// Config holds the fetch endpoints
type Config struct {
	// FilesURL serves {ID}.pdb and {ID}.cif
	FilesURL string `yaml:"files_url" json:"files_url"`

	// SearchURL is the RCSB full-text search endpoint
	SearchURL string `yaml:"search_url" json:"search_url"`

	// AlphaFoldURL serves AF-{ID}-F1-model_v{N}.cif
	AlphaFoldURL string `yaml:"alphafold_url" json:"alphafold_url"`

	// AlphaFoldVersion is used when a caller passes version 0
	AlphaFoldVersion int `yaml:"alphafold_version" json:"alphafold_version"`

	// MaxResults is the search size used by the CLI when none is given
	MaxResults int `yaml:"max_results" json:"max_results"`
}

// DefaultConfig returns the public RCSB and AlphaFold DB endpoints
func DefaultConfig() *Config {
	return &Config{
		FilesURL:         DefaultFilesURL,
		SearchURL:        DefaultSearchURL,
		AlphaFoldURL:     DefaultAlphaFoldURL,
		AlphaFoldVersion: DefaultAlphaFoldVersion,
		MaxResults:       DefaultMaxResults,
	}
}

// Validate checks that every endpoint is an absolute URL
func (c *Config) Validate() error {
	endpoints := []struct {
		field string
		value string
	}{
		{"files_url", c.FilesURL},
		{"search_url", c.SearchURL},
		{"alphafold_url", c.AlphaFoldURL},
	}
	for _, e := range endpoints {
		if e.value == "" {
			return molerr.New(molerr.ErrTypeInvalidArgument, e.field, "endpoint is required")
		}
		u, err := url.Parse(e.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return molerr.Wrap(molerr.ErrTypeInvalidArgument, e.field, "endpoint must be an absolute URL", err)
		}
	}

	if c.AlphaFoldVersion < 1 {
		return molerr.New(molerr.ErrTypeInvalidArgument, "alphafold_version", "version must be at least 1")
	}
	if c.MaxResults < 0 {
		return molerr.New(molerr.ErrTypeInvalidArgument, "max_results", "max results cannot be negative")
	}
	return nil
}
