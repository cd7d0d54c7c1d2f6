package repository

import (
	"database/sql"
	"fmt"
)

// AttemptRepository records question attempts and keeps the progress
// counters in step with them.
type AttemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *sql.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// RecordAttempt appends the attempt row and upserts the (user, category)
// progress row in a single transaction, so the attempt log and the counters
// never diverge.
func (r *AttemptRepository) RecordAttempt(userID, questionID int, submittedAnswer string, isCorrect bool, categoryID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO question_attempts (user_id, question_id, submitted_answer, is_correct) VALUES (?, ?, ?, ?)`,
		userID, questionID, submittedAnswer, isCorrect,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}

	correctDelta := 0
	if isCorrect {
		correctDelta = 1
	}
	_, err = tx.Exec(
		`INSERT INTO progress (user_id, category_id, attempted, correct)
		 VALUES (?, ?, 1, ?)
		 ON DUPLICATE KEY UPDATE attempted = attempted + 1, correct = correct + ?`,
		userID, categoryID, correctDelta, correctDelta,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}
