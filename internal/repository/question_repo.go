package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// QuestionRepository handles DB access for questions
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func scanQuestion(row *sql.Row) (*models.Question, error) {
	var q models.Question
	var choicesJSON []byte
	err := row.Scan(&q.ID, &q.CategoryID, &q.Prompt, &q.CorrectAnswer, &choicesJSON)
	if err != nil {
		return nil, err
	}
	if len(choicesJSON) > 0 {
		if err := json.Unmarshal(choicesJSON, &q.Choices); err != nil {
			return nil, err
		}
	}
	return &q, nil
}

// GetByID returns a question by ID, or (nil, nil) if not found.
func (r *QuestionRepository) GetByID(id int) (*models.Question, error) {
	query := `SELECT id, category_id, prompt, correct_answer, choices FROM questions WHERE id = ?`
	q, err := scanQuestion(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetByCategory returns all questions in a category (empty slice if none).
func (r *QuestionRepository) GetByCategory(categoryID int) ([]models.Question, error) {
	query := `SELECT id, category_id, prompt, correct_answer, choices FROM questions WHERE category_id = ? ORDER BY id`
	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		var choicesJSON []byte
		if err := rows.Scan(&q.ID, &q.CategoryID, &q.Prompt, &q.CorrectAnswer, &choicesJSON); err != nil {
			return nil, err
		}
		if len(choicesJSON) > 0 {
			if err := json.Unmarshal(choicesJSON, &q.Choices); err != nil {
				return nil, err
			}
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetRandomByCategory returns one uniformly random question from the
// category, or (nil, nil) if the category has no questions. Every draw is
// independent; repeats are allowed.
func (r *QuestionRepository) GetRandomByCategory(categoryID int) (*models.Question, error) {
	query := `SELECT id, category_id, prompt, correct_answer, choices
	          FROM questions
	          WHERE category_id = ?
	          ORDER BY RAND()
	          LIMIT 1`
	q, err := scanQuestion(r.db.QueryRow(query, categoryID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}
