package booking

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jonboulle/clockwork"
)

type JobRepository interface {
	UpsertJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, id string) error
	GetPendingJobs(ctx context.Context) ([]Job, error)
}

// JobHandler runs a fired job. The job row is kept when it returns an error,
// so the job is retried on the next restore.
type JobHandler func(ctx context.Context, job Job) error

type armedJob struct {
	job   Job
	seq   uint64
	timer clockwork.Timer
}

// JobTable arms one timer per persisted job. Fired jobs run one at a time.
type JobTable struct {
	repo    JobRepository
	clock   clockwork.Clock
	handler JobHandler
	logger  *slog.Logger

	mu      sync.Mutex
	armed   map[string]*armedJob
	seq     uint64
	stopped bool

	runMu sync.Mutex
}

func NewJobTable(repo JobRepository, clock clockwork.Clock, handler JobHandler) *JobTable {
	return &JobTable{
		repo:    repo,
		clock:   clock,
		handler: handler,
		logger:  slog.Default().With("component", "job-table"),
		armed:   map[string]*armedJob{},
	}
}

// Register persists job and arms its timer, replacing any pending job with
// the same ID.
func (t *JobTable) Register(ctx context.Context, job Job) error {
	if job.ID == "" {
		job.ID = JobID(job.AttemptID, job.FiresAt)
	}

	if err := t.repo.UpsertJob(ctx, job); err != nil {
		return err
	}

	t.arm(job)

	t.logger.Info("job registered", "job", job.ID, "firesAt", job.FiresAt)

	return nil
}

// Restore arms every persisted job. Jobs already due fire right away.
func (t *JobTable) Restore(ctx context.Context) error {
	jobs, err := t.repo.GetPendingJobs(ctx)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		t.arm(job)
	}

	t.logger.Info("jobs restored", "count", len(jobs))

	return nil
}

// Pending returns the armed jobs ordered by fire time.
func (t *JobTable) Pending() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	jobs := make([]Job, 0, len(t.armed))
	for _, a := range t.armed {
		jobs = append(jobs, a.job)
	}

	slices.SortFunc(jobs, func(a, b Job) int {
		if c := a.FiresAt.Compare(b.FiresAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return jobs
}

// Stop disarms every timer and waits for a running job to finish. Persisted
// rows are left in place.
func (t *JobTable) Stop() {
	t.mu.Lock()
	t.stopped = true

	for id, a := range t.armed {
		if a.timer != nil {
			a.timer.Stop()
		}
		delete(t.armed, id)
	}
	t.mu.Unlock()

	t.runMu.Lock()
	t.runMu.Unlock()
}

func (t *JobTable) arm(job Job) {
	t.mu.Lock()

	if t.stopped {
		t.mu.Unlock()
		return
	}

	if prev, ok := t.armed[job.ID]; ok && prev.timer != nil {
		prev.timer.Stop()
	}

	t.seq++
	entry := &armedJob{job: job, seq: t.seq}
	t.armed[job.ID] = entry

	t.mu.Unlock()

	delay := job.FiresAt.Sub(t.clock.Now())
	if delay < 0 {
		delay = 0
	}

	timer := t.clock.AfterFunc(delay, func() { t.fire(job.ID, entry.seq) })

	t.mu.Lock()
	entry.timer = timer
	t.mu.Unlock()
}

func (t *JobTable) fire(id string, seq uint64) {
	t.mu.Lock()
	entry, ok := t.armed[id]
	current := ok && entry.seq == seq && !t.stopped
	t.mu.Unlock()

	if !current {
		return
	}

	t.runMu.Lock()
	defer t.runMu.Unlock()

	logger := t.logger.With("job", id, "attempt", entry.job.AttemptID)
	logger.Info("job fired")

	err := t.handler(context.Background(), entry.job)

	t.mu.Lock()
	replaced := false
	if latest, ok := t.armed[id]; ok && latest.seq != seq {
		replaced = true
	} else {
		delete(t.armed, id)
	}
	t.mu.Unlock()

	if err != nil {
		logger.Error("job failed, keeping it for the next restore", "err", err)
		return
	}

	if replaced {
		return
	}

	if err := t.repo.DeleteJob(context.Background(), id); err != nil {
		logger.Error("failed to delete fired job", "err", err)
	}
}
