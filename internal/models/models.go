package models

import "time"

// User is a registered account. Email is unique; username is not.
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Category groups questions and keys the reference file by its slug.
type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// Question is a quiz question. Choices is empty for short-answer questions.
type Question struct {
	ID            int      `json:"id" db:"id"`
	CategoryID    int      `json:"categoryId" db:"category_id"`
	Prompt        string   `json:"prompt" db:"prompt"`
	CorrectAnswer string   `json:"-" db:"correct_answer"`
	Choices       []string `json:"choices,omitempty" db:"choices"`
}

// QuestionAttempt is one submitted answer, recorded permanently.
type QuestionAttempt struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"userId" db:"user_id"`
	QuestionID      int       `json:"questionId" db:"question_id"`
	SubmittedAnswer string    `json:"submittedAnswer" db:"submitted_answer"`
	IsCorrect       bool      `json:"isCorrect" db:"is_correct"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// Progress is the per-(user, category) running tally. One row per pair.
type Progress struct {
	ID         int `json:"id" db:"id"`
	UserID     int `json:"userId" db:"user_id"`
	CategoryID int `json:"categoryId" db:"category_id"`
	Attempted  int `json:"attempted" db:"attempted"`
	Correct    int `json:"correct" db:"correct"`
}

// CategoryProgress is the progress view for one category, zero-filled
// when the user has no attempts there yet.
type CategoryProgress struct {
	Category   string  `json:"category"`
	Attempted  int     `json:"attempted"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}
