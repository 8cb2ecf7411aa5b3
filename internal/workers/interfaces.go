// Package workers runs independent units of work concurrently with a bound
// on how many run at once.
package workers

import "context"

// Worker is a single unit of work. Run should return promptly once ctx is
// canceled.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
