// Package join runs independent tasks to completion and keeps every result, whether it succeeded or not.
package join

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of one task.
type Result[T any] struct {
	Value T
	Err   error
}

func (x *Result[T]) OK() bool {
	return x.Err == nil
}

// Task is a unit of work passed to All. Build one with Bind.
type Task func(ctx context.Context) error

// Bind returns a Task that stores the outcome of fn into r. A panic in fn is recovered as an error.
func Bind[T any](r *Result[T], fn func(ctx context.Context) (T, error)) Task {
	return func(ctx context.Context) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = goerr.New("task panicked", goerr.V("panic", rec))
				r.Err = err
			}
		}()

		r.Value, r.Err = fn(ctx)
		return r.Err
	}
}

// All starts every task and waits for all of them. A failing task does not cancel the others.
// The returned slice has the error of each task at the same index.
func All(ctx context.Context, tasks ...Task) []error {
	errs := make([]error, len(tasks))

	var eg errgroup.Group
	for i, task := range tasks {
		eg.Go(func() error {
			errs[i] = task(ctx)
			return nil
		})
	}
	_ = eg.Wait()

	return errs
}
