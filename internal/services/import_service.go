package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/repository"
)

// SeedDateLayout is the dd.MM.yyyy date format used by lotto.json.
const SeedDateLayout = "02.01.2006"

// ImportService loads draws from lotto.json documents
type ImportService interface {
	ImportDraws(ctx context.Context, r io.Reader) (int, error)
	ImportFile(ctx context.Context, path string) (int, error)
}

type importService struct {
	drawRepo repository.DrawRepository
}

// NewImportService creates a new ImportService
func NewImportService(drawRepo repository.DrawRepository) ImportService {
	return &importService{drawRepo: drawRepo}
}

type seedEntry struct {
	Dato string `json:"dato"`
	Nr1  *int   `json:"nr1"`
	Nr2  *int   `json:"nr2"`
	Nr3  *int   `json:"nr3"`
	Nr4  *int   `json:"nr4"`
	Nr5  *int   `json:"nr5"`
	Nr6  *int   `json:"nr6"`
	Nr7  *int   `json:"nr7"`
	Nr8  *int   `json:"nr8"`
}

// ParseSeed decodes a lotto.json document. Any entry with a malformed date or
// a missing number fails the whole document.
func ParseSeed(r io.Reader) ([]models.Draw, error) {
	var entries []seedEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	draws := make([]models.Draw, 0, len(entries))
	for i, e := range entries {
		date, err := time.Parse(SeedDateLayout, e.Dato)
		if err != nil {
			return nil, fmt.Errorf("entry %d: date %q does not match dd.MM.yyyy", i, e.Dato)
		}
		d := models.Draw{DrawDate: date, WeekNumber: WeekNumber(date)}
		for slot, n := range []*int{e.Nr1, e.Nr2, e.Nr3, e.Nr4, e.Nr5, e.Nr6, e.Nr7, e.Nr8} {
			if n == nil {
				return nil, fmt.Errorf("entry %d: nr%d is missing", i, slot+1)
			}
			d.Numbers[slot] = *n
		}
		draws = append(draws, d)
	}
	return draws, nil
}

// ImportDraws stores every draw of the document in one transaction.
func (s *importService) ImportDraws(ctx context.Context, r io.Reader) (int, error) {
	log := logger.FromContext(ctx)

	draws, err := ParseSeed(r)
	if err != nil {
		log.Warn("rejecting seed document: %v", err)
		return 0, errors.NewBadRequestError(err.Error())
	}

	ids, err := s.drawRepo.InsertBatch(ctx, draws)
	if err != nil {
		log.Error("failed to store imported draws: %v", err)
		return 0, errors.NewInternalError(err)
	}
	log.Info("imported %d draws", len(ids))
	return len(ids), nil
}

func (s *importService) ImportFile(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx).WithField("path", path)
	log.Info("importing seed file")

	f, err := os.Open(path)
	if err != nil {
		log.Error("failed to open seed file: %v", err)
		return 0, errors.NewInternalError(err)
	}
	defer f.Close()

	return s.ImportDraws(logger.NewContext(ctx, log), f)
}
