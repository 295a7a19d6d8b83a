// Package source collects raw commit messages to lint.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v68/github"
	"github.com/samber/lo"
)

const (
	EventPush        = "push"
	EventPullRequest = "pull_request"

	commitsPerPage = 100
)

// ErrUnsupportedEvent is returned for trigger events other than push and pull_request.
var ErrUnsupportedEvent = errors.New("this action does not support the event")

// NewClient returns an API client for baseURL, or for github.com when baseURL is empty.
// token is sent as a bearer token when not empty.
func NewClient(httpClient *http.Client, token, baseURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse api url %s: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return client, nil
}

// GitHub reads commit messages out of a workflow trigger event.
type GitHub struct {
	Client *github.Client
	Log    *slog.Logger
}

// EventMessages returns the messages of the commits the event carries, oldest first.
// A push event lists them in its payload; a pull_request event is resolved through the API.
func (g GitHub) EventMessages(ctx context.Context, eventName string, payload io.Reader) ([]string, error) {
	g.logger().Debug("trigger event", "name", eventName)

	switch eventName {
	case EventPush:
		var ev github.PushEvent
		if err := json.NewDecoder(payload).Decode(&ev); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", eventName, err)
		}
		return lo.Map(ev.Commits, func(c *github.HeadCommit, _ int) string {
			return c.GetMessage()
		}), nil

	case EventPullRequest:
		var ev github.PullRequestEvent
		if err := json.NewDecoder(payload).Decode(&ev); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", eventName, err)
		}
		owner, repo := ev.GetRepo().GetOwner().GetLogin(), ev.GetRepo().GetName()
		number := ev.GetPullRequest().GetNumber()
		if owner == "" || repo == "" || number == 0 {
			return nil, fmt.Errorf("%s event has no repository or pull request number", eventName)
		}
		return g.PullRequestMessages(ctx, owner, repo, number, ev.GetPullRequest().GetCommitsURL())

	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupportedEvent, eventName)
	}
}

// PullRequestMessages lists the commits of a pull request, all pages.
// commitsURL only names the list in errors.
func (g GitHub) PullRequestMessages(ctx context.Context, owner, repo string, number int, commitsURL string) ([]string, error) {
	if g.Client == nil {
		return nil, errors.New("no api client")
	}
	if commitsURL == "" {
		commitsURL = fmt.Sprintf("%s/%s#%d", owner, repo, number)
	}

	var messages []string

	opts := &github.ListOptions{PerPage: commitsPerPage}
	for {
		g.logger().Debug("fetch commits", "url", commitsURL, "page", opts.Page)

		commits, resp, err := g.Client.PullRequests.ListCommits(ctx, owner, repo, number, opts)
		if err != nil {
			var errResp *github.ErrorResponse
			if errors.As(err, &errResp) && errResp.Response != nil {
				return nil, fmt.Errorf("failed to fetch commits from %s, status: %d", commitsURL, errResp.Response.StatusCode)
			}
			return nil, fmt.Errorf("failed to fetch commits from %s: %w", commitsURL, err)
		}

		messages = append(messages, lo.Map(commits, func(c *github.RepositoryCommit, _ int) string {
			return c.GetCommit().GetMessage()
		})...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return messages, nil
}

func (g GitHub) logger() *slog.Logger {
	if g.Log != nil {
		return g.Log
	}
	return slog.New(slog.DiscardHandler)
}
