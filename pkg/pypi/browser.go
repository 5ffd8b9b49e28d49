package pypi

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	apperrors "github.com/matzehuels/pypiscope/pkg/errors"
)

// BrowserLister renders the profile page in a headless browser before
// scraping it. Some deployments sit behind scraping protection that serves
// plain HTTP clients a challenge page; a real browser gets the actual
// listing.
//
// The browser is launched, used for the single page load, and torn down
// again inside List; nothing survives the call on either success or
// failure.
type BrowserLister struct {
	UserAgent string
	Timeout   time.Duration
}

// List implements Lister.
func (l *BrowserLister) List(ctx context.Context, profileURL string) ([]PackageSummary, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(l.UserAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx := browserCtx
	if l.Timeout > 0 {
		var cancelRun context.CancelFunc
		runCtx, cancelRun = context.WithTimeout(browserCtx, l.Timeout)
		defer cancelRun()
	}

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(profileURL),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "fetching user profile via browser")
	}

	return parseProfile(strings.NewReader(html))
}
