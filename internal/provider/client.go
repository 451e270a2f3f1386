package provider // import "github.com/Xunop/e-verse/internal/provider"

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Xunop/e-verse/internal/config"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	catalogPath    = "/static/bolls/app/views/languages.json"
	userAgent      = "e-verse"
	SearchPageSize = 50
)

// LanguageGroup is one language section of the remote translation catalog.
type LanguageGroup struct {
	Language     string               `json:"language"`
	Translations []model.CatalogEntry `json:"translations"`
}

// RawVerse is a verse exactly as the provider returns it, markup included.
type RawVerse struct {
	PK      int    `json:"pk"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

type RawSearchHit struct {
	PK          int    `json:"pk"`
	Translation string `json:"translation"`
	Book        int    `json:"book"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
}

type RawSearchResponse struct {
	Results      []RawSearchHit `json:"results"`
	Total        int            `json:"total"`
	ExactMatches int            `json:"exact_matches"`
}

// Client talks to the remote text provider.
type Client struct {
	BaseURL     string
	ProxyPrefix string
	HTTP        *http.Client
}

func NewClient(opts *config.Options) *Client {
	base := strings.TrimRight(opts.APIBase, "/")
	if !util.HasPrefixes(base, "http://", "https://") {
		base = "https://" + base
	}
	return &Client{
		BaseURL:     base,
		ProxyPrefix: opts.ProxyPrefix,
		HTTP:        &http.Client{Timeout: opts.Timeout()},
	}
}

// FetchCatalog returns every language group of the translation catalog.
func (c *Client) FetchCatalog(ctx context.Context) ([]LanguageGroup, error) {
	var groups []LanguageGroup
	if err := c.getJSON(ctx, catalogPath, &groups); err != nil {
		return nil, errors.Wrap(err, "failed to fetch translation catalog")
	}
	return groups, nil
}

// FetchChapter returns the raw verses of one chapter. providerBookID is the
// provider's 1-based book number.
func (c *Client) FetchChapter(ctx context.Context, translationID string, providerBookID, chapter int) ([]RawVerse, error) {
	path := fmt.Sprintf("/get-text/%s/%d/%d/", url.PathEscape(translationID), providerBookID, chapter)
	var verses []RawVerse
	if err := c.getJSON(ctx, path, &verses); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s %d:%d", translationID, providerBookID, chapter)
	}
	return verses, nil
}

func (c *Client) Search(ctx context.Context, translationID, query string, page int) (*RawSearchResponse, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("match_case", "false")
	params.Set("match_whole", "false")
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(SearchPageSize))
	path := fmt.Sprintf("/v2/find/%s?%s", url.PathEscape(translationID), params.Encode())

	var res RawSearchResponse
	if err := c.getJSON(ctx, path, &res); err != nil {
		return nil, errors.Wrapf(err, "failed to search %s", translationID)
	}
	return &res, nil
}

func (c *Client) Define(ctx context.Context, dictionaryID, term string) ([]model.Definition, error) {
	path := fmt.Sprintf("/dictionary-definition/%s/%s/", url.PathEscape(dictionaryID), url.PathEscape(term))
	var defs []model.Definition
	if err := c.getJSON(ctx, path, &defs); err != nil {
		return nil, errors.Wrapf(err, "failed to look up %q", term)
	}
	return defs, nil
}

// Ping reports whether the provider answers at all.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.endpoint("/"), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// endpoint builds the outbound URL, routing it through the proxy prefix when set.
func (c *Client) endpoint(path string) string {
	target := c.BaseURL + path
	if c.ProxyPrefix == "" {
		return target
	}
	return c.ProxyPrefix + url.QueryEscape(target)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	target := c.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Debug("Provider request",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, URL: target, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
