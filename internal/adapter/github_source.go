package adapter

import (
	"fmt"
	"io"
	"net/http"
	"time"

	m "github.com/zmk-tools/zmk2vial/internal/model"
)

const rawGitHubBase = "https://raw.githubusercontent.com"

// GitHubKeymapSource fetches a keymap from a GitHub repository's raw
// content. A single request is made per run; any failure is terminal, there
// is no retry.
type GitHubKeymapSource struct {
	Repo   string // owner/name
	Branch string
	Path   string // path of the keymap file within the repository

	// BaseURL overrides the raw content host, for tests.
	BaseURL string

	// Client is the HTTP client used for the fetch. The default carries a
	// bounded timeout so a dead host cannot hang the run.
	Client *http.Client
}

// NewGitHubKeymapSource constructs a source fetching repo/branch/path from
// GitHub's raw content host.
func NewGitHubKeymapSource(repo, branch, path string) *GitHubKeymapSource {
	return &GitHubKeymapSource{
		Repo:    repo,
		Branch:  branch,
		Path:    path,
		BaseURL: rawGitHubBase,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// URL returns the raw content URL the source fetches.
func (s *GitHubKeymapSource) URL() string {
	return fmt.Sprintf("%s/%s/%s/%s", s.BaseURL, s.Repo, s.Branch, s.Path)
}

// Fetch performs the single GET request.
func (s *GitHubKeymapSource) Fetch() ([]byte, error) {
	resp, err := s.Client.Get(s.URL())
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", m.ErrRetrieval, s.URL(), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch %s: unexpected status %s", m.ErrRetrieval, s.URL(), resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response from %s: %v", m.ErrRetrieval, s.URL(), err)
	}
	return data, nil
}

// Location returns the keymap path within the repository.
func (s *GitHubKeymapSource) Location() string {
	return s.Path
}
