// Package worker renders the swatches of a palette in parallel.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
)

// Renderer writes one swatch and returns where it ended up.
type Renderer interface {
	Render(ctx context.Context, task Task) (path string, err error)
}

// Task is a single swatch to render.
type Task struct {
	Palette  string
	Path     string
	Position int
	Color    colormath.RGB
}

// Result is the outcome of a task.
type Result struct {
	Err     error
	Path    string
	Task    Task
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Renderer   Renderer
	OnProgress ProgressFunc
	Workers    int
}

// Pool runs tasks on a fixed number of goroutines.
type Pool struct {
	renderer   Renderer
	onProgress ProgressFunc
	workers    int
}

// New creates a pool. Fewer than one worker means one.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:    workers,
		renderer:   cfg.Renderer,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and blocks until they finish or ctx is cancelled.
// Results come back in task order; tasks skipped by cancellation carry ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	results := make([]Result, len(tasks))
	indexCh := make(chan int)

	var (
		completed int
		failed    int
		mu        sync.Mutex
	)
	report := func(err error) {
		mu.Lock()
		completed++
		if err != nil {
			failed++
		}
		c, f := completed, failed
		if p.onProgress != nil {
			p.onProgress(c, len(tasks), f)
		}
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				results[idx] = p.run(ctx, tasks[idx])
				report(results[idx].Err)
			}
		}()
	}

	next := 0
feed:
	for ; next < len(tasks); next++ {
		select {
		case indexCh <- next:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexCh)
	wg.Wait()

	for ; next < len(tasks); next++ {
		results[next] = Result{Task: tasks[next], Err: ctx.Err()}
		report(results[next].Err)
	}
	return results
}

func (p *Pool) run(ctx context.Context, task Task) Result {
	if err := ctx.Err(); err != nil {
		return Result{Task: task, Err: err}
	}

	start := time.Now()
	path, err := p.renderer.Render(ctx, task)
	return Result{
		Task:    task,
		Path:    path,
		Err:     err,
		Elapsed: time.Since(start),
	}
}
