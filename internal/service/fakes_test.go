package service

import (
	"math/rand"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// In-memory store fakes. The MySQL repositories are thin enough that the
// interesting behavior lives in the services, which these exercise.

type fakeUserStore struct {
	users  []*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1}
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(id int) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(username, email, passwordHash string) (*models.User, error) {
	u := &models.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.nextID++
	s.users = append(s.users, u)
	copied := *u
	return &copied, nil
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (s *fakeCategoryStore) GetAll() ([]models.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) GetByID(id int) (*models.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeQuestionStore struct {
	questions []models.Question
}

func (s *fakeQuestionStore) GetByID(id int) (*models.Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			copied := q
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeQuestionStore) GetByCategory(categoryID int) ([]models.Question, error) {
	var out []models.Question
	for _, q := range s.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeQuestionStore) GetRandomByCategory(categoryID int) (*models.Question, error) {
	candidates, _ := s.GetByCategory(categoryID)
	if len(candidates) == 0 {
		return nil, nil
	}
	q := candidates[rand.Intn(len(candidates))]
	return &q, nil
}

type recordedAttempt struct {
	UserID          int
	QuestionID      int
	SubmittedAnswer string
	IsCorrect       bool
	CategoryID      int
}

// fakeAttemptStore records attempts and mirrors the SQL upsert by keeping
// progress counters per (user, category).
type fakeAttemptStore struct {
	attempts []recordedAttempt
	progress map[[2]int]*models.Progress
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{progress: make(map[[2]int]*models.Progress)}
}

func (s *fakeAttemptStore) RecordAttempt(userID, questionID int, submittedAnswer string, isCorrect bool, categoryID int) error {
	s.attempts = append(s.attempts, recordedAttempt{
		UserID:          userID,
		QuestionID:      questionID,
		SubmittedAnswer: submittedAnswer,
		IsCorrect:       isCorrect,
		CategoryID:      categoryID,
	})
	key := [2]int{userID, categoryID}
	p, ok := s.progress[key]
	if !ok {
		p = &models.Progress{UserID: userID, CategoryID: categoryID}
		s.progress[key] = p
	}
	p.Attempted++
	if isCorrect {
		p.Correct++
	}
	return nil
}

func (s *fakeAttemptStore) GetByUser(userID int) (map[int]models.Progress, error) {
	out := make(map[int]models.Progress)
	for key, p := range s.progress {
		if key[0] == userID {
			out[p.CategoryID] = *p
		}
	}
	return out, nil
}

type fakeProgressStore struct {
	rows map[int]map[int]models.Progress // userID -> categoryID -> row
}

func (s *fakeProgressStore) GetByUser(userID int) (map[int]models.Progress, error) {
	if rows, ok := s.rows[userID]; ok {
		return rows, nil
	}
	return map[int]models.Progress{}, nil
}

type fakeSubmissionGuard struct {
	last map[int]int
}

func newFakeSubmissionGuard() *fakeSubmissionGuard {
	return &fakeSubmissionGuard{last: make(map[int]int)}
}

func (g *fakeSubmissionGuard) LastSubmitted(userID int) (int, bool, error) {
	q, ok := g.last[userID]
	return q, ok, nil
}

func (g *fakeSubmissionGuard) SetLastSubmitted(userID, questionID int) error {
	g.last[userID] = questionID
	return nil
}

// noopSubmissionGuard never reports a duplicate, for tests that hammer the
// same question repeatedly.
type noopSubmissionGuard struct{}

func (noopSubmissionGuard) LastSubmitted(userID int) (int, bool, error) { return 0, false, nil }
func (noopSubmissionGuard) SetLastSubmitted(userID, questionID int) error {
	return nil
}
