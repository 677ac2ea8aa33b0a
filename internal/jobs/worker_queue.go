package jobs

import (
	"github.com/vytor/lotto/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool *worker.Pool
	importer   worker.DrawImporter
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importer worker.DrawImporter) JobQueue {
	return &WorkerQueue{
		importPool: importPool,
		importer:   importer,
	}
}

func (q *WorkerQueue) EnqueueSeedImport(path string) error {
	return q.importPool.Submit(&worker.ImportDrawsJob{
		Importer: q.importer,
		Path:     path,
	})
}
