// Package fetch downloads structures from RCSB PDB and AlphaFold DB and runs
// RCSB full-text searches. Requests are made once: there is no retry and no
// cache, and the only deadline is the one carried by the caller's context.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/structure"
)

// Client talks to the structure databases
type Client struct {
	config *Config
	http   *http.Client
	log    *logger.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the request logger
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client; a nil config means the public endpoints
func New(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: config,
		// no client timeout: deadlines belong to the caller's context
		http: &http.Client{},
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the client's endpoints
func (c *Client) Config() *Config {
	return c.config
}

// FetchPDB downloads an entry in pdb or mmcif format. The ID is trimmed and
// upper-cased; "cif" is accepted for mmcif.
func (c *Client) FetchPDB(ctx context.Context, pdbID string, format structure.Format) (string, error) {
	id := normalizeID(pdbID)
	if id == "" {
		return "", molerr.New(molerr.ErrTypeInvalidArgument, pdbID, "PDB ID is required")
	}

	ext, err := fileExtension(format)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s.%s", strings.TrimRight(c.config.FilesURL, "/"), id, ext)
	data, err := c.get(ctx, url)
	if err != nil {
		if molerr.IsType(err, molerr.ErrTypeNotFound) {
			return "", molerr.Newf(molerr.ErrTypeNotFound, id, "PDB ID %s not found in RCSB PDB", id)
		}
		return "", err
	}
	return data, nil
}

// Query is FetchPDB under its py3Dmol name
func (c *Client) Query(ctx context.Context, pdbID string, format structure.Format) (string, error) {
	return c.FetchPDB(ctx, pdbID, format)
}

// FetchAlphaFold downloads a predicted model in mmCIF format. Version 0
// selects the configured database version.
func (c *Client) FetchAlphaFold(ctx context.Context, uniprotID string, version int) (string, error) {
	id := normalizeID(uniprotID)
	if id == "" {
		return "", molerr.New(molerr.ErrTypeInvalidArgument, uniprotID, "UniProt ID is required")
	}
	if version == 0 {
		version = c.config.AlphaFoldVersion
	}
	if version < 1 {
		return "", molerr.Newf(molerr.ErrTypeInvalidArgument, id, "AlphaFold DB version must be at least 1, got %d", version)
	}

	url := fmt.Sprintf("%s/AF-%s-F1-model_v%d.cif", strings.TrimRight(c.config.AlphaFoldURL, "/"), id, version)
	data, err := c.get(ctx, url)
	if err != nil {
		if molerr.IsType(err, molerr.ErrTypeNotFound) {
			return "", molerr.Newf(molerr.ErrTypeNotFound, id,
				"UniProt ID %s not found in AlphaFold DB (version %d)", id, version)
		}
		return "", err
	}
	return data, nil
}

// SearchPDB returns up to maxResults entry IDs in relevance order. No match
// is an empty slice, not an error.
func (c *Client) SearchPDB(ctx context.Context, text string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		return []string{}, nil
	}

	body, err := json.Marshal(newSearchRequest(text, maxResults))
	if err != nil {
		return nil, molerr.Wrap(molerr.ErrTypeInvalidArgument, text, "failed to encode search request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.SearchURL, bytes.NewReader(body))
	if err != nil {
		return nil, molerr.Wrap(molerr.ErrTypeNetwork, c.config.SearchURL, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, molerr.Wrap(molerr.ErrTypeNetwork, c.config.SearchURL, "search request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("search", logger.F("query", text), logger.F("status", resp.StatusCode), logger.Duration(time.Since(start)))

	// RCSB answers 204 when nothing matches
	if resp.StatusCode == http.StatusNoContent {
		return []string{}, nil
	}
	if err := checkStatus(resp, c.config.SearchURL); err != nil {
		return nil, err
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if err == io.EOF {
			return []string{}, nil
		}
		return nil, molerr.Wrap(molerr.ErrTypeNetwork, c.config.SearchURL, "failed to decode search response", err)
	}

	ids := make([]string, 0, len(result.ResultSet))
	for _, r := range result.ResultSet {
		ids = append(ids, r.Identifier)
		if len(ids) == maxResults {
			break
		}
	}
	return ids, nil
}

// get performs one GET and returns the body as text
func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", molerr.Wrap(molerr.ErrTypeNetwork, url, "failed to create request", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", molerr.Wrap(molerr.ErrTypeNetwork, url, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("fetch", logger.F("url", url), logger.F("status", resp.StatusCode), logger.Duration(time.Since(start)))

	if err := checkStatus(resp, url); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", molerr.Wrap(molerr.ErrTypeNetwork, url, "failed to read response body", err)
	}
	return string(data), nil
}

// checkStatus maps 404 to NotFound and every other non-2xx to NetworkError
func checkStatus(resp *http.Response, url string) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return molerr.HTTPStatus(molerr.ErrTypeNotFound, url, resp.StatusCode, "not found")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return molerr.HTTPStatus(molerr.ErrTypeNetwork, url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return nil
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// fileExtension maps a download format to the RCSB file suffix
func fileExtension(format structure.Format) (string, error) {
	switch strings.ToLower(strings.TrimSpace(string(format))) {
	case "", string(structure.FormatPDB):
		return "pdb", nil
	case string(structure.FormatMMCIF), "cif":
		return "cif", nil
	default:
		return "", molerr.Newf(molerr.ErrTypeInvalidFormat, string(format),
			"format must be pdb or mmcif, got %q", string(format))
	}
}
