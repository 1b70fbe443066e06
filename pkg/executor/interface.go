package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs a command and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteInDir runs a command with the given working directory.
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
