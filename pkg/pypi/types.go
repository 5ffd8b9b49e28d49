package pypi

// PackageSummary identifies one package on a user's profile page.
// It carries only what the profile listing exposes: the package name and
// its one-line description.
type PackageSummary struct {
	Name    string `json:"name"`    // Package name as listed (e.g., "Flask")
	Summary string `json:"summary"` // One-line description from the profile page
}

// ReleaseArtifact describes one distributable file uploaded for a version.
//
// Fields are passthrough reads of the registry JSON with no validation.
// SHA256Digest is nil when the registry record has no digests entry.
type ReleaseArtifact struct {
	UploadTime        string  `json:"upload_time"`          // Naive timestamp (e.g., "2024-01-15T10:30:00")
	UploadTimeISO8601 string  `json:"upload_time_iso_8601"` // Same instant in ISO 8601 with zone
	PythonVersion     string  `json:"python_version"`       // Target runtime tag (e.g., "py3", "source")
	URL               string  `json:"url"`                  // Download URL
	Filename          string  `json:"filename"`             // Uploaded filename
	PackageType       string  `json:"packagetype"`          // "sdist" or "bdist_wheel"
	MD5Digest         string  `json:"md5_digest"`           // MD5 checksum (may be empty)
	SHA256Digest      *string `json:"sha256_digest"`        // SHA-256 checksum, nil if absent
	Size              int64   `json:"size"`                 // File size in bytes
}

// OlderVersion summarizes one non-current version of a package using the
// first artifact of that version's release list. When a version has no
// artifacts, every field except Version is nil. A version with multiple
// artifacts surfaces only the first; this is a one-to-one but not
// exhaustive representation.
type OlderVersion struct {
	Version           string  `json:"version"`
	UploadTime        *string `json:"upload_time"`
	UploadTimeISO8601 *string `json:"upload_time_iso_8601"`
	PythonVersion     *string `json:"python_version"`
	URL               *string `json:"url"`
	Filename          *string `json:"filename"`
	PackageType       *string `json:"packagetype"`
	MD5Digest         *string `json:"md5_digest"`
	SHA256Digest      *string `json:"sha256_digest"`
	Size              *int64  `json:"size"`
}

// PackageDetail is the normalized record for one package, combining the
// current-version metadata with download artifacts and a summary of every
// older version.
//
// OlderVersions excludes exactly the version equal to Version; all other
// registry versions appear exactly once, sorted for deterministic output.
type PackageDetail struct {
	Name           string            `json:"name"`
	Version        string            `json:"version"` // Current version
	Summary        string            `json:"summary"`
	Author         string            `json:"author"`
	AuthorEmail    string            `json:"author_email"`
	License        string            `json:"license"`
	HomePage       string            `json:"home_page"`
	Keywords       string            `json:"keywords"`
	Classifiers    []string          `json:"classifiers"`
	RequiresPython string            `json:"requires_python"`
	Dependencies   []string          `json:"dependencies"` // requires_dist passthrough, unfiltered
	Downloads      []ReleaseArtifact `json:"downloads"`    // Current-version artifacts
	OlderVersions  []OlderVersion    `json:"older_versions"`
}
