package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrMissingToken is returned when a pull request comment is requested without a token.
var ErrMissingToken = errors.New("github token is not configured")

// PullRequestRef identifies a pull request.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

func (ref PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", ref.Owner, ref.Repo, ref.Number)
}

// GitHubAdapter posts lint reports to pull requests.
type GitHubAdapter interface {
	CommentOnPullRequest(ctx context.Context, ref PullRequestRef, body string) error
}

// RemoteGitHubAdapter is the GitHub REST API implementation of GitHubAdapter.
type RemoteGitHubAdapter struct {
	client *github.Client
}

// NewRemoteGitHubAdapter builds an adapter authenticated with token.
func NewRemoteGitHubAdapter(token string) (*RemoteGitHubAdapter, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	return &RemoteGitHubAdapter{client: github.NewClient(nil).WithAuthToken(token)}, nil
}

// WithBaseURL points the adapter at another API endpoint (GitHub Enterprise or tests).
func (a *RemoteGitHubAdapter) WithBaseURL(baseURL string) (*RemoteGitHubAdapter, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse github base url: %w", err)
	}

	a.client.BaseURL = parsed

	return a, nil
}

// CommentOnPullRequest implements GitHubAdapter. Pull request comments are issue comments.
func (a *RemoteGitHubAdapter) CommentOnPullRequest(ctx context.Context, ref PullRequestRef, body string) error {
	if ref.Owner == "" || ref.Repo == "" || ref.Number <= 0 {
		return fmt.Errorf("invalid pull request reference %q", ref.String())
	}

	_, _, err := a.client.Issues.CreateComment(ctx, ref.Owner, ref.Repo, ref.Number, &github.IssueComment{Body: &body})
	if err != nil {
		return fmt.Errorf("create comment on %s: %w", ref, err)
	}

	return nil
}

// ParseRepository splits an "owner/repo" string.
func ParseRepository(repository string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(repository), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", repository)
	}

	return owner, repo, nil
}

// pullRequestEvent is the part of a GitHub Actions event payload we read.
type pullRequestEvent struct {
	Number      int `json:"number"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

// PullRequestNumberFromEvent reads the pull request number from the event
// payload file that GitHub Actions exposes through GITHUB_EVENT_PATH.
func PullRequestNumberFromEvent(eventPath string) (int, error) {
	// #nosec G304 - event path is provided by the CI runner
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return 0, fmt.Errorf("read event payload: %w", err)
	}

	var event pullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("decode event payload: %w", err)
	}

	if event.PullRequest != nil && event.PullRequest.Number > 0 {
		return event.PullRequest.Number, nil
	}

	if event.Number > 0 {
		return event.Number, nil
	}

	return 0, fmt.Errorf("event payload %s is not a pull request event", eventPath)
}
