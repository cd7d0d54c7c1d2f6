package service

import (
	"math"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// ProgressService derives the per-category progress view.
type ProgressService struct {
	categoryStore CategoryStore
	progressStore ProgressStore
}

// NewProgressService creates a new progress service.
func NewProgressService(categoryStore CategoryStore, progressStore ProgressStore) *ProgressService {
	return &ProgressService{
		categoryStore: categoryStore,
		progressStore: progressStore,
	}
}

// Overview returns one row per category, zero-filled for categories the
// user has not attempted yet. Percentage is correct/attempted*100 rounded
// to two decimal places, 0 when attempted is 0.
func (s *ProgressService) Overview(userID int) ([]models.CategoryProgress, error) {
	categories, err := s.categoryStore.GetAll()
	if err != nil {
		return nil, err
	}
	byCategory, err := s.progressStore.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	overview := make([]models.CategoryProgress, 0, len(categories))
	for _, category := range categories {
		row := models.CategoryProgress{Category: category.Name}
		if p, ok := byCategory[category.ID]; ok {
			row.Attempted = p.Attempted
			row.Correct = p.Correct
			row.Percentage = percentage(p.Correct, p.Attempted)
		}
		overview = append(overview, row)
	}
	return overview, nil
}

func percentage(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	p := float64(correct) / float64(attempted) * 100
	return math.Round(p*100) / 100
}
