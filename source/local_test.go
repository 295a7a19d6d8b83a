package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepository struct {
	t    *testing.T
	repo *git.Repository
	fs   billy.Filesystem
	wt   *git.Worktree
	base time.Time
	n    int
}

func initTestRepository(t *testing.T) *testRepository {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	return &testRepository{
		t:    t,
		repo: repo,
		fs:   fs,
		wt:   wt,
		base: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// commit records msg one minute after the previous commit.
// Without parents, the commit goes on top of HEAD.
func (r *testRepository) commit(msg string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()

	f, err := r.fs.Create("file.txt")
	require.NoError(r.t, err)
	_, err = f.Write([]byte(msg))
	require.NoError(r.t, err)
	require.NoError(r.t, f.Close())

	_, err = r.wt.Add("file.txt")
	require.NoError(r.t, err)

	sig := &object.Signature{Name: "Test User", Email: "test@example.com", When: r.base.Add(time.Duration(r.n) * time.Minute)}
	r.n++

	h, err := r.wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig, Parents: parents})
	require.NoError(r.t, err)
	return h
}

func newTestRepository(t *testing.T, messages ...string) (*git.Repository, []plumbing.Hash) {
	t.Helper()

	r := initTestRepository(t)
	hashes := make([]plumbing.Hash, 0, len(messages))
	for _, msg := range messages {
		hashes = append(hashes, r.commit(msg))
	}
	return r.repo, hashes
}

func TestRepositoryMessages(t *testing.T) {
	repo, hashes := newTestRepository(t,
		"feat: first\n",
		"fix: second\n\nBody paragraph\n",
		"docs: third\n",
		"chore: fourth\n",
	)
	r := NewRepository(repo)
	ctx := context.Background()

	tests := []struct {
		name     string
		opts     LogOptions
		expected []string
	}{
		{
			name:     "whole history oldest first",
			opts:     LogOptions{},
			expected: []string{"feat: first", "fix: second\n\nBody paragraph", "docs: third", "chore: fourth"},
		},
		{
			name:     "count",
			opts:     LogOptions{Count: 2},
			expected: []string{"docs: third", "chore: fourth"},
		},
		{
			name:     "from is excluded",
			opts:     LogOptions{From: hashes[1].String()},
			expected: []string{"docs: third", "chore: fourth"},
		},
		{
			name:     "to",
			opts:     LogOptions{To: hashes[1].String()},
			expected: []string{"feat: first", "fix: second\n\nBody paragraph"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Messages(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRepositoryMessagesMergedHistory(t *testing.T) {
	r := initTestRepository(t)
	root := r.commit("chore: root\n")
	feat := r.commit("feat: on feature\n", root)
	onMain := r.commit("docs: on main\n", root)
	merge := r.commit("chore: merge main into feature\n", feat, onMain)

	got, err := NewRepository(r.repo).Messages(context.Background(), LogOptions{
		From: onMain.String(),
		To:   merge.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"feat: on feature", "chore: merge main into feature"}, got)

	got, err = NewRepository(r.repo).Messages(context.Background(), LogOptions{
		From:  onMain.String(),
		To:    merge.String(),
		Count: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"chore: merge main into feature"}, got)
}

func TestRepositoryMessagesUnknownRevision(t *testing.T) {
	repo, _ := newTestRepository(t, "feat: first\n")

	_, err := NewRepository(repo).Messages(context.Background(), LogOptions{From: "no-such-branch"})
	assert.Error(t, err)
}

func TestRepositoryMessagesCanceled(t *testing.T) {
	repo, _ := newTestRepository(t, "feat: first\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRepository(repo).Messages(ctx, LogOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))
	_, err = wt.Add("file.txt")
	require.NoError(t, err)
	sig := &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()}
	_, err = wt.Commit("feat: on disk\n", &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	r, err := OpenRepository(sub)
	require.NoError(t, err)
	got, err := r.Messages(context.Background(), LogOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"feat: on disk"}, got)

	_, err = OpenRepository(t.TempDir())
	assert.Error(t, err)
}
