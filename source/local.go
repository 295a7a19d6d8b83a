package source

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// LogOptions selects a range of the local history.
type LogOptions struct {
	// Commits reachable from From are excluded, like git log From..To.
	// Empty walks down to the root commit.
	From string
	// To defaults to HEAD.
	To string
	// Count limits the number of commits. Zero means no limit.
	Count int
}

// Repository reads commit messages out of a local git repository.
type Repository struct {
	repo *git.Repository
}

// OpenRepository opens the repository containing path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return NewRepository(repo), nil
}

func NewRepository(repo *git.Repository) *Repository {
	return &Repository{repo: repo}
}

// Messages returns the messages in the range, oldest first.
func (r *Repository) Messages(ctx context.Context, opts LogOptions) ([]string, error) {
	to, err := r.resolve(opts.To, "HEAD")
	if err != nil {
		return nil, err
	}

	excluded := map[plumbing.Hash]struct{}{}
	if opts.From != "" {
		from, err := r.resolve(opts.From, "")
		if err != nil {
			return nil, err
		}
		if err := r.walk(ctx, from, func(c *object.Commit) error {
			excluded[c.Hash] = struct{}{}
			return nil
		}); err != nil {
			return nil, err
		}
	}

	var messages []string
	err = r.walk(ctx, to, func(c *object.Commit) error {
		if _, ok := excluded[c.Hash]; ok {
			return nil
		}
		if opts.Count > 0 && len(messages) >= opts.Count {
			return storer.ErrStop
		}
		messages = append(messages, strings.TrimRight(c.Message, "\n"))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Reverse(messages)
	return messages, nil
}

// walk visits every commit reachable from h, newest first.
func (r *Repository) walk(ctx context.Context, h plumbing.Hash, fn func(*object.Commit) error) error {
	iter, err := r.repo.Log(&git.LogOptions{From: h, Order: git.LogOrderCommitterTime})
	if err != nil {
		return fmt.Errorf("log %s: %w", h, err)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(c)
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return fmt.Errorf("walk history: %w", err)
	}
	return nil
}

func (r *Repository) resolve(rev, fallback string) (plumbing.Hash, error) {
	if rev == "" {
		rev = fallback
	}
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve %s: %w", rev, err)
	}
	return *h, nil
}
