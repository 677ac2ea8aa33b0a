package worker

import (
	"context"
	"fmt"

	"github.com/vytor/lotto/internal/logger"
)

// DrawImporter loads a lotto.json file into the draw store. It is satisfied
// by services.ImportService without importing that package.
type DrawImporter interface {
	ImportFile(ctx context.Context, path string) (int, error)
}

// ImportDrawsJob imports a seed file in the background.
type ImportDrawsJob struct {
	Importer DrawImporter
	Path     string
}

func (j *ImportDrawsJob) Name() string { return "import_draws" }

func (j *ImportDrawsJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("path", j.Path)
	log.Info("starting seed import")

	n, err := j.Importer.ImportFile(ctx, j.Path)
	if err != nil {
		return fmt.Errorf("import %s: %w", j.Path, err)
	}
	log.Info("seed import stored %d draws", n)
	return nil
}
