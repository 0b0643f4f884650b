package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

// Worker runs a Task on a fixed interval until stopped.
type Worker struct {
	name     string
	task     Task
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewWorker(name string, interval time.Duration, task Task, logger zerolog.Logger) *Worker {
	return &Worker{
		name:     name,
		task:     task,
		interval: interval,
		logger:   logger.With().Str("worker", name).Logger(),
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *Worker) Name() string {
	return w.name
}

func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("running task")
				if err := w.task(ctx); err != nil {
					w.logger.Error().Err(err).Msg("task failed")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("worker stopping (context done)")
				return
			}
		}
	}()
}

// Stop waits for an in-flight run to finish. Safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}

// Group starts and stops a set of workers together.
type Group struct {
	workers []*Worker
}

func NewGroup(workers ...*Worker) *Group {
	return &Group{workers: workers}
}

func (g *Group) Add(w *Worker) {
	g.workers = append(g.workers, w)
}

func (g *Group) Start(ctx context.Context) {
	for _, w := range g.workers {
		w.Start(ctx)
	}
}

func (g *Group) Stop() {
	for _, w := range g.workers {
		w.Stop()
	}
}
