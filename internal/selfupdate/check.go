// Package selfupdate checks GitHub releases for a newer version. It only
// reports; it never replaces the running binary.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner   = "adasgupta"
	defaultRepo    = "skillbridge"
	defaultAPIBase = "https://api.github.com"

	// DefaultTimeout bounds the release lookup.
	DefaultTimeout = 10 * time.Second
)

// ErrDevBuild means the running binary has no release version to compare.
var ErrDevBuild = errors.New("cannot check a development build")

// Checker queries the GitHub releases API.
type Checker struct {
	owner   string
	repo    string
	apiBase string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithAPIBase overrides the GitHub API base URL, for tests.
func WithAPIBase(base string) Option {
	return func(c *Checker) { c.apiBase = strings.TrimRight(base, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

// NewChecker creates a Checker for the project's release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:   defaultOwner,
		repo:    defaultRepo,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the outcome of a version check.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check compares the running version against the latest release tag.
// Versions compare by semver; a tag that does not parse compares as
// not-newer rather than failing the check.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	if current == "" || current == "(devel)" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBase, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release response has no tag")
	}

	return &Result{
		CurrentVersion:  current,
		LatestVersion:   release.TagName,
		UpdateAvailable: newer(release.TagName, current),
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// newer reports whether tag a is a strictly newer semver than b.
func newer(a, b string) bool {
	av, bv := canonical(a), canonical(b)
	if !semver.IsValid(av) || !semver.IsValid(bv) {
		return false
	}
	return semver.Compare(av, bv) > 0
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
