// Package pypi retrieves a PyPI user's published packages and enriches
// each with metadata from the registry's JSON API.
//
// # Overview
//
// Two data sources are combined:
//
//   - The user's profile page (https://pypi.org/user/<name>/), scraped for
//     the list of published packages.
//   - The registry JSON API (https://pypi.org/pypi/<pkg>/json), reshaped
//     into a normalized [PackageDetail] per package.
//
// # Usage
//
//	client := pypi.NewClient(pypi.Config{Username: "wolfsoftware"})
//
//	packages, err := client.ListPackages(ctx)   // names + summaries
//	detail, err := client.FetchPackage(ctx, "requests")
//	details, err := client.FetchAll(ctx)        // one detail per listed package
//
// # Listing strategies
//
// The profile page is public HTML, but some deployments front it with
// scraping protection. [Config.Strategy] selects between [StrategyHTTP]
// (plain GET, the default) and [StrategyBrowser] (headless Chrome via
// chromedp). Both strategies produce identical results through the same
// markup parser; the [Lister] interface keeps the aggregator independent
// of the choice.
//
// # Errors
//
// Failures carry codes from [github.com/matzehuels/pypiscope/pkg/errors]:
// CONFIGURATION_ERROR (no username), FETCH_ERROR (transport/HTTP),
// PARSE_ERROR (unexpected markup), DECODE_ERROR (malformed JSON), and
// EMPTY_RESULT (user has no packages). [Client.FetchAll] aborts on the
// first failure and re-wraps it with the failing package's name; it never
// returns partial results.
//
// # Resource model
//
// Everything is synchronous and single-attempt: one logical thread of
// control, a fixed timeout per request, no retries, no caching, no
// persistence. Fetched records live only as long as the call that
// produced them.
package pypi
