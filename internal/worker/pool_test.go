package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/worker"
)

type funcJob struct {
	name string
	fn   func(context.Context) error
}

func (j funcJob) Name() string                  { return j.name }
func (j funcJob) Run(ctx context.Context) error { return j.fn(ctx) }

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(2, 4)
	pool.Start(context.Background())

	var wg sync.WaitGroup
	var mu sync.Mutex
	ran := 0
	for i := 0; i < 4; i++ {
		wg.Add(1)
		err := pool.Submit(funcJob{name: "count", fn: func(context.Context) error {
			defer wg.Done()
			mu.Lock()
			ran++
			mu.Unlock()
			return nil
		}})
		require.NoError(t, err)
	}
	wg.Wait()
	pool.Stop()

	assert.Equal(t, 4, ran)
}

func TestPool_FailingAndPanickingJobsDoNotKillWorker(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	done := make(chan struct{})
	require.NoError(t, pool.Submit(funcJob{name: "fail", fn: func(context.Context) error { return errors.New("boom") }}))
	require.NoError(t, pool.Submit(funcJob{name: "panic", fn: func(context.Context) error { panic("boom") }}))
	require.NoError(t, pool.Submit(funcJob{name: "ok", fn: func(context.Context) error { close(done); return nil }}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped processing jobs")
	}
}

func TestPool_QueueFull(t *testing.T) {
	pool := worker.NewPool(1, 1)

	noop := funcJob{name: "noop", fn: func(context.Context) error { return nil }}
	require.NoError(t, pool.Submit(noop))
	assert.ErrorIs(t, pool.Submit(noop), worker.ErrQueueFull)
	assert.Equal(t, 1, pool.QueueSize())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	err := pool.Submit(funcJob{name: "late", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}

type stubImporter struct {
	path string
	n    int
	err  error
}

func (s *stubImporter) ImportFile(_ context.Context, path string) (int, error) {
	s.path = path
	return s.n, s.err
}

func TestImportDrawsJob(t *testing.T) {
	importer := &stubImporter{n: 3}
	job := &worker.ImportDrawsJob{Importer: importer, Path: "lotto.json"}

	assert.Equal(t, "import_draws", job.Name())
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, "lotto.json", importer.path)

	importer.err = errors.New("bad file")
	assert.ErrorContains(t, job.Run(context.Background()), "bad file")
}
