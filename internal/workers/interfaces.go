// Package workers provides the background workers of the vault server and
// a Workers aggregate that starts them together.
package workers

import "context"

// Worker is a background job. Run starts it and returns at once; the job
// stops when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
