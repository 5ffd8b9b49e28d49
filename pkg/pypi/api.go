package pypi

import "sort"

// apiResponse mirrors the subset of the PyPI JSON API payload we consume.
// See https://docs.pypi.org/api/json/ for the full schema.
type apiResponse struct {
	Info     apiInfo                  `json:"info"`
	Releases map[string][]apiArtifact `json:"releases"`
	URLs     []apiArtifact            `json:"urls"`
}

type apiInfo struct {
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Summary        string   `json:"summary"`
	Author         string   `json:"author"`
	AuthorEmail    string   `json:"author_email"`
	License        string   `json:"license"`
	HomePage       string   `json:"home_page"`
	Keywords       string   `json:"keywords"`
	Classifiers    []string `json:"classifiers"`
	RequiresPython string   `json:"requires_python"`
	RequiresDist   []string `json:"requires_dist"`
}

type apiArtifact struct {
	UploadTime        string            `json:"upload_time"`
	UploadTimeISO8601 string            `json:"upload_time_iso_8601"`
	PythonVersion     string            `json:"python_version"`
	URL               string            `json:"url"`
	Filename          string            `json:"filename"`
	PackageType       string            `json:"packagetype"`
	MD5Digest         string            `json:"md5_digest"`
	Digests           map[string]string `json:"digests"`
	Size              int64             `json:"size"`
}

// buildDetail reshapes a registry payload into the normalized record.
// All info fields are passthrough reads with no validation.
func buildDetail(data *apiResponse) PackageDetail {
	return PackageDetail{
		Name:           data.Info.Name,
		Version:        data.Info.Version,
		Summary:        data.Info.Summary,
		Author:         data.Info.Author,
		AuthorEmail:    data.Info.AuthorEmail,
		License:        data.Info.License,
		HomePage:       data.Info.HomePage,
		Keywords:       data.Info.Keywords,
		Classifiers:    data.Info.Classifiers,
		RequiresPython: data.Info.RequiresPython,
		Dependencies:   data.Info.RequiresDist,
		Downloads:      convertArtifacts(data.URLs),
		OlderVersions:  buildOlderVersions(data.Releases, data.Info.Version),
	}
}

// buildOlderVersions summarizes every release version except the current
// one. The releases mapping is unordered JSON, so versions are sorted to
// keep output deterministic. A version with an empty artifact list yields
// an entry with only Version set.
func buildOlderVersions(releases map[string][]apiArtifact, current string) []OlderVersion {
	versions := make([]string, 0, len(releases))
	for v := range releases {
		if v != current {
			versions = append(versions, v)
		}
	}
	sort.Strings(versions)

	older := make([]OlderVersion, 0, len(versions))
	for _, v := range versions {
		entry := OlderVersion{Version: v}
		if files := releases[v]; len(files) > 0 {
			first := files[0]
			entry.UploadTime = &first.UploadTime
			entry.UploadTimeISO8601 = &first.UploadTimeISO8601
			entry.PythonVersion = &first.PythonVersion
			entry.URL = &first.URL
			entry.Filename = &first.Filename
			entry.PackageType = &first.PackageType
			entry.MD5Digest = &first.MD5Digest
			entry.SHA256Digest = sha256Digest(first.Digests)
			entry.Size = &first.Size
		}
		older = append(older, entry)
	}
	return older
}

func convertArtifacts(files []apiArtifact) []ReleaseArtifact {
	artifacts := make([]ReleaseArtifact, 0, len(files))
	for _, f := range files {
		artifacts = append(artifacts, ReleaseArtifact{
			UploadTime:        f.UploadTime,
			UploadTimeISO8601: f.UploadTimeISO8601,
			PythonVersion:     f.PythonVersion,
			URL:               f.URL,
			Filename:          f.Filename,
			PackageType:       f.PackageType,
			MD5Digest:         f.MD5Digest,
			SHA256Digest:      sha256Digest(f.Digests),
			Size:              f.Size,
		})
	}
	return artifacts
}

// sha256Digest returns the sha256 entry of a digests map, or nil when the
// registry record carries none.
func sha256Digest(digests map[string]string) *string {
	if d, ok := digests["sha256"]; ok {
		return &d
	}
	return nil
}
