// Package publisher commits and pushes produced artifacts to the git remote.
package publisher

import (
	"context"
	"fmt"

	"github.com/mwcockerill/sermon-scribe/internal/logger"
	"github.com/mwcockerill/sermon-scribe/pkg/executor"
)

// Publisher runs git inside the repository holding the output directory.
type Publisher struct {
	repoDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Publisher running git inside repoDir.
func New(repoDir string, exec executor.Executor, log logger.Logger) *Publisher {
	return &Publisher{
		repoDir:  repoDir,
		executor: exec,
		logger:   log,
	}
}

// Publish stages the given files, commits, and pushes. An empty staging
// diff is not an error.
func (p *Publisher) Publish(ctx context.Context, files []string, message string) error {
	if len(files) == 0 {
		p.logger.Info(ctx, "Nothing to publish")
		return nil
	}

	addArgs := append([]string{"add"}, files...)
	if _, err := p.executor.ExecuteInDir(ctx, p.repoDir, "git", addArgs...); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	// Exit 0 means the staged tree is unchanged.
	if _, err := p.executor.ExecuteInDir(ctx, p.repoDir, "git", "diff", "--staged", "--quiet"); err == nil {
		p.logger.Info(ctx, "No changes to commit")
		return nil
	}

	if _, err := p.executor.ExecuteInDir(ctx, p.repoDir, "git", "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}

	if _, err := p.executor.ExecuteInDir(ctx, p.repoDir, "git", "push"); err != nil {
		return fmt.Errorf("git push: %w", err)
	}

	p.logger.Info(ctx, "Pushed %d file(s)", len(files))
	return nil
}

// CommitMessage builds the standard message for a batch of transcripts.
func CommitMessage(n int) string {
	return fmt.Sprintf("Add %d sermon transcript(s)", n)
}
