package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"folio/internal/middleware"
	"folio/internal/repository"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// gitClient is the slice of git operations the syncer needs; narrowed so tests
// can substitute a fake.
type gitClient interface {
	// Pull brings the local mirror up to date with the remote.
	Pull(ctx context.Context) error
	// CommitAndPush stages the given paths (relative to the mirror root),
	// commits, and pushes. It must be a no-op error-free call on empty paths.
	CommitAndPush(ctx context.Context, paths []string) error
}

// Syncer keeps a local mirror directory synchronized with a remote git
// repository using two background tasks: a fixed-interval pull and a push that
// drains the durable queue after uploads. One mutex serializes the two so
// cycles never overlap. All failures are logged and counted, never surfaced to
// request handling, and never stop the ticker.
type Syncer struct {
	git      gitClient
	queue    repository.SyncQueueRepository
	interval time.Duration

	mu   sync.Mutex
	wake chan struct{}

	startOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewSyncer creates a Syncer for the mirror at dir pushing to remoteURL. token
// may be empty for unauthenticated remotes.
func NewSyncer(dir, remoteURL, token string, queue repository.SyncQueueRepository, interval time.Duration) *Syncer {
	return &Syncer{
		git:      &goGit{dir: dir, remoteURL: remoteURL, token: token},
		queue:    queue,
		interval: interval,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// newSyncerWithClient is the test seam.
func newSyncerWithClient(client gitClient, queue repository.SyncQueueRepository, interval time.Duration) *Syncer {
	return &Syncer{
		git:      client,
		queue:    queue,
		interval: interval,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start launches the pull and push tasks. They run until ctx is cancelled.
func (s *Syncer) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.wg.Add(2)
		go s.pullLoop(ctx)
		go s.pushLoop(ctx)
		go func() {
			s.wg.Wait()
			close(s.done)
		}()
	})
}

// Notify wakes the push task. Non-blocking; coalesces bursts of uploads.
func (s *Syncer) Notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Shutdown waits for both tasks to stop after their context is cancelled.
func (s *Syncer) Shutdown(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Syncer) pullLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pull(ctx)
		}
	}
}

func (s *Syncer) pushLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
			s.push(ctx)
		}
	}
}

func (s *Syncer) pull(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.git.Pull(ctx); err != nil {
		middleware.MirrorSyncRuns.WithLabelValues("pull", "failure").Inc()
		middleware.Logger.ErrorContext(ctx, "mirror pull failed", slog.String("error", err.Error()))
		return
	}
	middleware.MirrorSyncRuns.WithLabelValues("pull", "success").Inc()
	middleware.Logger.InfoContext(ctx, "mirror pull completed")
}

// push drains the queue in one batch. Entries are removed only after the push
// succeeds, so failed batches are retried on the next wake.
func (s *Syncer) push(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.queue.Pending(ctx)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "mirror push: reading queue failed", slog.String("error", err.Error()))
		return
	}
	if len(entries) == 0 {
		return
	}

	paths := make([]string, len(entries))
	ids := make([]uint, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
		ids[i] = e.ID
	}

	if err := s.git.CommitAndPush(ctx, paths); err != nil {
		middleware.MirrorSyncRuns.WithLabelValues("push", "failure").Inc()
		middleware.Logger.ErrorContext(ctx, "mirror push failed",
			slog.Int("files", len(paths)), slog.String("error", err.Error()))
		return
	}

	if err := s.queue.Remove(ctx, ids); err != nil {
		// The files were pushed; a re-push of the same content is harmless.
		middleware.Logger.ErrorContext(ctx, "mirror push: dequeue failed", slog.String("error", err.Error()))
	}

	middleware.MirrorSyncRuns.WithLabelValues("push", "success").Inc()
	middleware.Logger.InfoContext(ctx, "mirror push completed", slog.Int("files", len(paths)))
}

// goGit is the production gitClient backed by go-git.
type goGit struct {
	dir       string
	remoteURL string
	token     string
}

func (g *goGit) auth() *githttp.BasicAuth {
	if g.token == "" {
		return nil
	}
	// Token-as-password auth, accepted by GitHub/GitLab HTTPS remotes.
	return &githttp.BasicAuth{Username: "folio-sync", Password: g.token}
}

// open returns the repository at dir, cloning it first if necessary.
func (g *goGit) open(ctx context.Context) (*git.Repository, error) {
	repo, err := git.PlainOpen(g.dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("open mirror repo: %w", err)
	}

	repo, err = git.PlainCloneContext(ctx, g.dir, false, &git.CloneOptions{
		URL:  g.remoteURL,
		Auth: g.auth(),
	})
	if err != nil {
		return nil, fmt.Errorf("clone mirror repo: %w", err)
	}
	return repo, nil
}

func (g *goGit) Pull(ctx context.Context) error {
	repo, err := g.open(ctx)
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("mirror worktree: %w", err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName: "origin",
		Auth:       g.auth(),
		// Local uploads win for their own files (they are queued and re-pushed);
		// the remote wins elsewhere.
		Force: true,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

func (g *goGit) CommitAndPush(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	repo, err := g.open(ctx)
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("mirror worktree: %w", err)
	}

	for _, p := range paths {
		if _, err := wt.Add(p); err != nil {
			return fmt.Errorf("stage %s: %w", p, err)
		}
	}

	msg := fmt.Sprintf("Add %d uploaded file(s)", len(paths))
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "folio-sync",
			Email: "sync@folio.local",
			When:  time.Now(),
		},
	})
	if err != nil && !errors.Is(err, git.ErrEmptyCommit) {
		return fmt.Errorf("commit: %w", err)
	}

	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "origin",
		Auth:       g.auth(),
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}
