package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vendorflow/internal/metrics"
)

type Func func(ctx context.Context) (any, error)

// Runner executes jobs on a context detached from the caller, so a request
// that stops waiting never cancels the work it started.
type Runner struct {
	store Store
	now   func() time.Time
	wg    sync.WaitGroup
}

func NewRunner(store Store) *Runner {
	return &Runner{store: store, now: func() time.Time { return time.Now().UTC() }}
}

type Handle struct {
	ID string

	done chan struct{}
	job  Job
	err  error
}

// Wait blocks until the job finishes, the timeout elapses or ctx is done.
// ok is false when the job is still running.
func (h *Handle) Wait(ctx context.Context, timeout time.Duration) (j Job, ok bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-h.done:
		return h.job, true
	case <-t.C:
		return Job{}, false
	case <-ctx.Done():
		return Job{}, false
	}
}

// Err is the job's error once Wait reported it finished.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

func (r *Runner) Start(ctx context.Context, name string, fn Func) (*Handle, error) {
	job := Job{ID: uuid.NewString(), Name: name, Status: StatusPending, CreatedAt: r.now()}
	if err := r.store.Put(ctx, job); err != nil {
		return nil, fmt.Errorf("register job: %w", err)
	}

	h := &Handle{ID: job.ID, done: make(chan struct{})}
	runCtx := context.WithoutCancel(ctx)

	r.wg.Add(1)
	metrics.JobsInFlightGauge.Inc()
	go func() {
		defer r.wg.Done()
		defer metrics.JobsInFlightGauge.Dec()

		res, err := run(runCtx, fn)
		job = r.finish(job, res, err)
		if perr := r.store.Put(runCtx, job); perr != nil {
			logrus.WithError(perr).WithField("job", job.ID).Error("store job result")
		}
		metrics.JobCounter.WithLabelValues(name, string(job.Status)).Inc()

		h.job, h.err = job, err
		if h.err == nil && job.Status == StatusFailed {
			h.err = fmt.Errorf("%s", job.Error)
		}
		close(h.done)
	}()
	return h, nil
}

func run(ctx context.Context, fn Func) (res any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("job panicked: %v", p)
		}
	}()
	return fn(ctx)
}

func (r *Runner) finish(job Job, res any, err error) Job {
	now := r.now()
	job.FinishedAt = &now
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
		logrus.WithError(err).WithFields(logrus.Fields{"job": job.ID, "name": job.Name}).Error("job failed")
		return job
	}
	b, merr := json.Marshal(res)
	if merr != nil {
		job.Status = StatusFailed
		job.Error = "encode result: " + merr.Error()
		return job
	}
	job.Status = StatusDone
	job.Result = b
	return job
}

func (r *Runner) Get(ctx context.Context, id string) (Job, error) {
	return r.store.Get(ctx, id)
}

// Wait blocks until every started job finished or ctx is done.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
