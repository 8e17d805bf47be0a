package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timewindow"
	"github.com/hoyle1974/timewindow/document"
	"github.com/hoyle1974/timewindow/storage"
	"github.com/hoyle1974/timewindow/telemetry"
)

// Result is the outcome of merging one document.
type Result struct {
	Key     string
	Windows []timewindow.Window
	Err     error
}

// Evaluator merges every document under a prefix, a bounded number at a time.
type Evaluator struct {
	store   storage.System
	loader  *document.Loader
	workers int
	logger  telemetry.Logger
	metrics telemetry.Metrics
}

type Option func(*Evaluator)

func WithLogger(logger telemetry.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

func WithMetrics(metrics telemetry.Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = metrics
	}
}

// WithWorkers bounds how many documents are evaluated at once. Values below one mean one.
func WithWorkers(workers int) Option {
	return func(e *Evaluator) {
		e.workers = max(workers, 1)
	}
}

func NewEvaluator(store storage.System, loader *document.Loader, opts ...Option) *Evaluator {
	e := &Evaluator{
		store:   store,
		loader:  loader,
		workers: 4,
		logger:  telemetry.NOPLogger{},
		metrics: telemetry.NOPMetrics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run merges every document whose key starts with prefix. Results are ordered by key.
// A document that fails to load or merge is reported in its Result; only a failure to
// list the keys or a cancelled context fails the whole run.
func (e *Evaluator) Run(ctx context.Context, prefix string) ([]Result, error) {
	started := time.Now()

	keys, err := e.store.GetKeysWithPrefix(ctx, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %q", prefix)
	}
	e.logger.Debug(fmt.Sprintf("evaluating %d documents under %q", len(keys), prefix))

	results := make([]Result, len(keys))

	pool := pond.NewPool(e.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for idx, key := range keys {
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			windows, err := e.loader.Windows(ctx, key)
			results[idx] = Result{Key: key, Windows: windows, Err: err}
			if err != nil {
				e.logger.Error("could not merge "+key, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch interrupted")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch interrupted")
	}

	var windows, failures int64
	for _, r := range results {
		if r.Err != nil {
			failures++
			continue
		}
		windows += int64(len(r.Windows))
	}
	e.metrics.SetCount("batch.documents", int64(len(results)))
	e.metrics.SetCount("batch.windows", windows)
	e.metrics.SetCount("batch.failures", failures)
	e.metrics.SetGauge("batch.seconds", time.Since(started).Seconds())

	e.logger.Info(fmt.Sprintf("merged %d documents into %d windows, %d failed", len(results), windows, failures))

	return results, nil
}
