package pypi

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	apperrors "github.com/matzehuels/pypiscope/pkg/errors"
)

// Lister fetches a user's profile listing. Both implementations feed the
// same markup parser; only the transport differs, so the Client and the
// aggregator never care which strategy is active.
type Lister interface {
	// List retrieves the profile page at profileURL and returns the
	// packages it lists, in page order.
	List(ctx context.Context, profileURL string) ([]PackageSummary, error)
}

// HTMLLister scrapes the profile page with a plain HTTP GET.
type HTMLLister struct {
	Client    *http.Client
	UserAgent string
}

// List implements Lister.
func (l *HTMLLister) List(ctx context.Context, profileURL string) ([]PackageSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "fetching user profile")
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "fetching user profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.ErrCodeFetch, "fetching user profile: unexpected status %d", resp.StatusCode)
	}

	return parseProfile(resp.Body)
}

// parseProfile extracts package snippets from profile page markup.
//
// Each listed package is an <a class="package-snippet"> containing an
// <h3 class="package-snippet__title"> and a
// <p class="package-snippet__description">. A snippet missing either child
// is a PARSE_ERROR; a page with no snippets at all is a valid empty
// listing.
func parseProfile(r io.Reader) ([]PackageSummary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "parsing user profile")
	}

	packages := []PackageSummary{}
	var parseErr error
	doc.Find("a.package-snippet").EachWithBreak(func(_ int, snippet *goquery.Selection) bool {
		title := snippet.Find("h3.package-snippet__title")
		desc := snippet.Find("p.package-snippet__description")
		if title.Length() == 0 || desc.Length() == 0 {
			parseErr = apperrors.New(apperrors.ErrCodeParse, "parsing package details: snippet missing title or description")
			return false
		}
		packages = append(packages, PackageSummary{
			Name:    strings.TrimSpace(title.Text()),
			Summary: strings.TrimSpace(desc.Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return packages, nil
}
