package repository

import (
	"database/sql"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// ProgressRepository handles DB access for per-category progress counters
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetByUser returns every progress row the user has, keyed by category id.
// Categories without a row are simply absent from the map.
func (r *ProgressRepository) GetByUser(userID int) (map[int]models.Progress, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, category_id, attempted, correct FROM progress WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCategory := make(map[int]models.Progress)
	for rows.Next() {
		var p models.Progress
		if err := rows.Scan(&p.ID, &p.UserID, &p.CategoryID, &p.Attempted, &p.Correct); err != nil {
			return nil, err
		}
		byCategory[p.CategoryID] = p
	}
	return byCategory, rows.Err()
}
