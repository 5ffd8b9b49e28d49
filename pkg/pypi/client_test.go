package pypi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/pypiscope/pkg/errors"
)

const profileHTML = `<html><body>
<a class="package-snippet" href="/project/Package1/">
  <h3 class="package-snippet__title">Package1</h3>
  <p class="package-snippet__description">Description1</p>
</a>
<a class="package-snippet" href="/project/Package2/">
  <h3 class="package-snippet__title">Package2</h3>
  <p class="package-snippet__description">Description2</p>
</a>
</body></html>`

const emptyProfileHTML = `<html><body><div class="left-layout__main"></div></body></html>`

func detailJSON(name, version string) string {
	return fmt.Sprintf(`{
		"info": {
			"name": %q,
			"version": %q,
			"summary": "A test package",
			"author": "Test Author",
			"author_email": "author@example.com",
			"license": "MIT",
			"home_page": "https://example.com",
			"keywords": "testing",
			"classifiers": ["Programming Language :: Python :: 3"],
			"requires_python": ">=3.8",
			"requires_dist": ["requests>=2.0", "pytest; extra == 'test'"]
		},
		"releases": {
			"0.9.0": [{
				"upload_time": "2023-01-01T00:00:00",
				"upload_time_iso_8601": "2023-01-01T00:00:00.000000Z",
				"python_version": "py3",
				"url": "https://example.com/old.whl",
				"filename": "old.whl",
				"packagetype": "bdist_wheel",
				"md5_digest": "aaa",
				"digests": {"sha256": "bbb"},
				"size": 1024
			}],
			%q: [{
				"upload_time": "2024-01-01T00:00:00",
				"upload_time_iso_8601": "2024-01-01T00:00:00.000000Z",
				"python_version": "py3",
				"url": "https://example.com/current.whl",
				"filename": "current.whl",
				"packagetype": "bdist_wheel",
				"md5_digest": "ccc",
				"digests": {"sha256": "ddd"},
				"size": 2048
			}]
		},
		"urls": [{
			"upload_time": "2024-01-01T00:00:00",
			"upload_time_iso_8601": "2024-01-01T00:00:00.000000Z",
			"python_version": "py3",
			"url": "https://example.com/current.whl",
			"filename": "current.whl",
			"packagetype": "bdist_wheel",
			"md5_digest": "ccc",
			"digests": {"sha256": "ddd"},
			"size": 2048
		}]
	}`, name, version, version)
}

// testServer serves a profile page for "testuser" and detail JSON for
// Package1 and Package2.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user/testuser/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, profileHTML)
	})
	mux.HandleFunc("/pypi/Package1/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailJSON("Package1", "1.0.0"))
	})
	mux.HandleFunc("/pypi/Package2/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailJSON("Package2", "2.0.0"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testClient(serverURL, username string) *Client {
	return NewClient(Config{
		Username:   username,
		BaseURL:    serverURL + "/pypi",
		ProfileURL: serverURL + "/user",
	})
}

func TestClient_SetUsername(t *testing.T) {
	c := NewClient(Config{})

	if err := c.SetUsername("testuser"); err != nil {
		t.Fatalf("SetUsername failed: %v", err)
	}
	if c.Username() != "testuser" {
		t.Errorf("expected username testuser, got %s", c.Username())
	}
}

func TestClient_SetUsername_Empty(t *testing.T) {
	c := NewClient(Config{})

	err := c.SetUsername("")
	if err == nil {
		t.Fatal("expected error for empty username")
	}
	if !apperrors.Is(err, apperrors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestClient_ListPackages(t *testing.T) {
	server := testServer(t)
	c := testClient(server.URL, "testuser")

	packages, err := c.ListPackages(context.Background())
	if err != nil {
		t.Fatalf("ListPackages failed: %v", err)
	}

	if len(packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(packages))
	}
	if packages[0].Name != "Package1" || packages[0].Summary != "Description1" {
		t.Errorf("unexpected first package: %+v", packages[0])
	}
	if packages[1].Name != "Package2" || packages[1].Summary != "Description2" {
		t.Errorf("unexpected second package: %+v", packages[1])
	}
}

func TestClient_ListPackages_NoUsername(t *testing.T) {
	c := NewClient(Config{})

	_, err := c.ListPackages(context.Background())
	if !apperrors.Is(err, apperrors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestClient_ListPackages_EmptyProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyProfileHTML)
	}))
	defer server.Close()

	c := testClient(server.URL, "testuser")

	packages, err := c.ListPackages(context.Background())
	if err != nil {
		t.Fatalf("ListPackages failed: %v", err)
	}
	if len(packages) != 0 {
		t.Errorf("expected empty listing, got %d packages", len(packages))
	}
}

func TestClient_ListPackages_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := testClient(server.URL, "testuser")

	_, err := c.ListPackages(context.Background())
	if !apperrors.Is(err, apperrors.ErrCodeFetch) {
		t.Errorf("expected FETCH_ERROR, got %v", err)
	}
}

func TestClient_FetchPackage(t *testing.T) {
	server := testServer(t)
	c := testClient(server.URL, "testuser")

	detail, err := c.FetchPackage(context.Background(), "Package1")
	if err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}

	if detail.Name != "Package1" {
		t.Errorf("expected name Package1, got %s", detail.Name)
	}
	if detail.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", detail.Version)
	}
	if detail.Author != "Test Author" || detail.AuthorEmail != "author@example.com" {
		t.Errorf("unexpected author fields: %s <%s>", detail.Author, detail.AuthorEmail)
	}
	if len(detail.Dependencies) != 2 {
		t.Errorf("expected 2 raw dependencies, got %d", len(detail.Dependencies))
	}
	if len(detail.Downloads) != 1 {
		t.Fatalf("expected 1 download artifact, got %d", len(detail.Downloads))
	}
	if detail.Downloads[0].SHA256Digest == nil || *detail.Downloads[0].SHA256Digest != "ddd" {
		t.Errorf("unexpected sha256 digest: %v", detail.Downloads[0].SHA256Digest)
	}
}

func TestClient_FetchPackage_ExcludesCurrentVersion(t *testing.T) {
	server := testServer(t)
	c := testClient(server.URL, "testuser")

	detail, err := c.FetchPackage(context.Background(), "Package1")
	if err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}

	if len(detail.OlderVersions) != 1 {
		t.Fatalf("expected 1 older version, got %d", len(detail.OlderVersions))
	}
	if detail.OlderVersions[0].Version != "0.9.0" {
		t.Errorf("expected older version 0.9.0, got %s", detail.OlderVersions[0].Version)
	}
	for _, ov := range detail.OlderVersions {
		if ov.Version == detail.Version {
			t.Errorf("older versions must not contain current version %s", detail.Version)
		}
	}
}

func TestClient_FetchPackage_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	defer server.Close()

	c := testClient(server.URL, "testuser")

	_, err := c.FetchPackage(context.Background(), "broken")
	if !apperrors.Is(err, apperrors.ErrCodeDecode) {
		t.Errorf("expected DECODE_ERROR, got %v", err)
	}
}

func TestClient_FetchPackage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(server.URL, "testuser")

	_, err := c.FetchPackage(context.Background(), "missing-pkg")
	if !apperrors.Is(err, apperrors.ErrCodeFetch) {
		t.Errorf("expected FETCH_ERROR, got %v", err)
	}
}

func TestClient_FetchAll(t *testing.T) {
	server := testServer(t)
	c := testClient(server.URL, "testuser")

	details, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].Name != "Package1" {
		t.Errorf("expected first detail Package1, got %s", details[0].Name)
	}
	if details[1].Name != "Package2" {
		t.Errorf("expected second detail Package2, got %s", details[1].Name)
	}
}

func TestClient_FetchAll_NoUsername(t *testing.T) {
	c := NewClient(Config{})

	_, err := c.FetchAll(context.Background())
	if !apperrors.Is(err, apperrors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestClient_FetchAll_EmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyProfileHTML)
	}))
	defer server.Close()

	c := testClient(server.URL, "testuser")

	_, err := c.FetchAll(context.Background())
	if !apperrors.Is(err, apperrors.ErrCodeEmptyResult) {
		t.Fatalf("expected EMPTY_RESULT, got %v", err)
	}
	if !strings.Contains(err.Error(), "testuser") {
		t.Errorf("error should name the configured username: %v", err)
	}
}

func TestClient_FetchAll_ListingTransportError(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close() // connection refused from here on

	c := testClient(server.URL, "testuser")

	_, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable listing")
	}
	if !apperrors.Is(err, apperrors.ErrCodeFetch) {
		t.Errorf("expected FETCH_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error should contain the underlying transport error, got: %v", err)
	}
}

func TestClient_FetchAll_DetailFailureNamesPackage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/testuser/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, profileHTML)
	})
	mux.HandleFunc("/pypi/Package1/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailJSON("Package1", "1.0.0"))
	})
	// Package2 is listed but its detail endpoint fails.
	mux.HandleFunc("/pypi/Package2/json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := testClient(server.URL, "testuser")

	details, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error when a detail fetch fails")
	}
	if details != nil {
		t.Error("partial results must be discarded on failure")
	}
	if !strings.Contains(err.Error(), "Package2") {
		t.Errorf("error should name the failing package: %v", err)
	}
	if !apperrors.Is(err, apperrors.ErrCodeFetch) {
		t.Errorf("wrapped error should keep the FETCH_ERROR code, got %v", err)
	}
}
