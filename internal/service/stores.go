package service

import "github.com/HCapraz/qa-interview-prep/internal/models"

// Per-entity store interfaces the services depend on. The MySQL and Redis
// repositories satisfy them in production; tests inject in-memory fakes.

type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	Create(username, email, passwordHash string) (*models.User, error)
}

type CategoryStore interface {
	GetAll() ([]models.Category, error)
	GetByID(id int) (*models.Category, error)
}

type QuestionStore interface {
	GetByID(id int) (*models.Question, error)
	GetByCategory(categoryID int) ([]models.Question, error)
	GetRandomByCategory(categoryID int) (*models.Question, error)
}

type AttemptStore interface {
	RecordAttempt(userID, questionID int, submittedAnswer string, isCorrect bool, categoryID int) error
}

type ProgressStore interface {
	GetByUser(userID int) (map[int]models.Progress, error)
}

type SubmissionGuard interface {
	LastSubmitted(userID int) (questionID int, found bool, err error)
	SetLastSubmitted(userID, questionID int) error
}
