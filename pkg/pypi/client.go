package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/matzehuels/pypiscope/pkg/errors"
)

const (
	defaultBaseURL    = "https://pypi.org/pypi"
	defaultProfileURL = "https://pypi.org/user"
	defaultTimeout    = 10 * time.Second
	defaultUserAgent  = "pypiscope (+https://github.com/matzehuels/pypiscope)"
)

// Strategy selects how the profile listing is fetched.
type Strategy string

const (
	// StrategyHTTP scrapes the profile page with a plain HTTP GET.
	StrategyHTTP Strategy = "http"

	// StrategyBrowser drives a headless browser to render the profile page
	// before scraping it, for environments that block plain HTTP clients.
	StrategyBrowser Strategy = "browser"
)

// Config holds the client configuration. The zero value is usable after
// applying defaults; only Username has no default and must be set before
// listing or aggregation.
type Config struct {
	Username   string        // PyPI username whose packages are fetched
	Timeout    time.Duration // Per-request timeout (default 10s)
	UserAgent  string        // User-Agent header for all requests
	Strategy   Strategy      // Listing strategy (default StrategyHTTP)
	BaseURL    string        // Registry JSON API base (default https://pypi.org/pypi)
	ProfileURL string        // Profile page base (default https://pypi.org/user)
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Strategy == "" {
		c.Strategy = StrategyHTTP
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.ProfileURL == "" {
		c.ProfileURL = defaultProfileURL
	}
	return c
}

// Client fetches a PyPI user's packages and their metadata.
//
// Every network call is a single attempt bounded by the configured timeout;
// there is no retry, no caching, and no parallelism. A Client is safe for
// concurrent reads, but SetUsername must not race with in-flight calls.
type Client struct {
	http   *http.Client
	cfg    Config
	lister Lister
}

// NewClient creates a Client from cfg, applying defaults for every field
// except Username. The listing strategy chooses between plain HTTP scraping
// and headless-browser automation; both feed the same markup parser.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
	switch cfg.Strategy {
	case StrategyBrowser:
		c.lister = &BrowserLister{UserAgent: cfg.UserAgent, Timeout: cfg.Timeout}
	default:
		c.lister = &HTMLLister{Client: c.http, UserAgent: cfg.UserAgent}
	}
	return c
}

// SetUsername sets the PyPI username for subsequent listing and aggregation
// calls. It fails with a CONFIGURATION_ERROR when the username is empty and
// with INVALID_INPUT when it cannot form a safe profile URL.
func (c *Client) SetUsername(username string) error {
	if err := apperrors.ValidateUsername(username); err != nil {
		return err
	}
	c.cfg.Username = username
	return nil
}

// Username returns the configured PyPI username, or "" if unset.
func (c *Client) Username() string { return c.cfg.Username }

// ListPackages fetches the configured user's profile listing and returns
// the packages in listing order. An empty slice is a valid result (the user
// exists but has published nothing).
//
// Fails with CONFIGURATION_ERROR when no username is set, FETCH_ERROR on
// transport or HTTP failure, and PARSE_ERROR when the profile markup lacks
// the expected structure.
func (c *Client) ListPackages(ctx context.Context) ([]PackageSummary, error) {
	if c.cfg.Username == "" {
		return nil, apperrors.New(apperrors.ErrCodeConfiguration, "username must be set before fetching packages")
	}
	return c.lister.List(ctx, fmt.Sprintf("%s/%s/", c.cfg.ProfileURL, c.cfg.Username))
}

// FetchPackage retrieves the registry JSON record for name and reshapes it
// into a PackageDetail.
//
// Fails with FETCH_ERROR on transport or HTTP failure and DECODE_ERROR on
// malformed JSON. A missing digests.sha256 in any artifact yields a nil
// checksum rather than a failure.
func (c *Client) FetchPackage(ctx context.Context, name string) (*PackageDetail, error) {
	if err := apperrors.ValidatePackageName(name); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/%s/json", c.cfg.BaseURL, name), "fetching package details")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "reading package details for %q", name)
	}

	var resp apiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDecode, err, "decoding JSON response for %q", name)
	}

	detail := buildDetail(&resp)
	return &detail, nil
}

// FetchAll retrieves the detail record for every package the configured
// user has published, in listing order.
//
// It fails with CONFIGURATION_ERROR when no username is set and with
// EMPTY_RESULT when the listing returns zero packages. Detail fetches run
// strictly one at a time; the first failure aborts the whole aggregation,
// re-wrapped with the failing package's name, and partial results are
// discarded.
func (c *Client) FetchAll(ctx context.Context) ([]PackageDetail, error) {
	if c.cfg.Username == "" {
		return nil, apperrors.New(apperrors.ErrCodeConfiguration, "username must be set before fetching package details")
	}

	packages, err := c.ListPackages(ctx)
	if err != nil {
		return nil, apperrors.Rewrap(err, apperrors.ErrCodeFetch, "failed to get user packages")
	}
	if len(packages) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeEmptyResult, "no packages found for user %q", c.cfg.Username)
	}

	details := make([]PackageDetail, 0, len(packages))
	for _, pkg := range packages {
		detail, err := c.FetchPackage(ctx, pkg.Name)
		if err != nil {
			return nil, apperrors.Rewrap(err, apperrors.ErrCodeFetch, "failed to get details for package %q", pkg.Name)
		}
		details = append(details, *detail)
	}
	return details, nil
}

// get performs a single-attempt GET and returns the response body on a 200.
// Any other outcome is a FETCH_ERROR; the caller's action string keeps the
// error messages aligned across listing and detail fetches.
func (c *Client) get(ctx context.Context, url, action string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "%s", action)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "%s", action)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, apperrors.New(apperrors.ErrCodeFetch, "%s: unexpected status %d", action, resp.StatusCode)
	}
	return resp.Body, nil
}
