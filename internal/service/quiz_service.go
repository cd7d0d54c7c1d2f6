package service

import (
	"log"
	"strings"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// QuizService picks questions, grades answers, and records attempts.
type QuizService struct {
	questionStore   QuestionStore
	categoryStore   CategoryStore
	attemptStore    AttemptStore
	submissionGuard SubmissionGuard
}

// NewQuizService creates a new quiz service.
func NewQuizService(questionStore QuestionStore, categoryStore CategoryStore, attemptStore AttemptStore, submissionGuard SubmissionGuard) *QuizService {
	return &QuizService{
		questionStore:   questionStore,
		categoryStore:   categoryStore,
		attemptStore:    attemptStore,
		submissionGuard: submissionGuard,
	}
}

// PickQuestion selects one uniformly random question from the category.
// Draws are independent; previously seen questions may repeat.
func (s *QuizService) PickQuestion(categoryID int) (*models.Question, error) {
	question, err := s.questionStore.GetRandomByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNoQuestions
	}
	return question, nil
}

// Grade compares the submitted answer against the stored correct answer
// after trimming whitespace and folding case. No other normalization.
func (s *QuizService) Grade(question *models.Question, submitted string) bool {
	return normalizeAnswer(submitted) == normalizeAnswer(question.CorrectAnswer)
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// SubmitAnswer grades the submission and appends the attempt together with
// the progress counter update. A resubmission of the question the user just
// answered (within the guard window) returns ErrDuplicateSubmission without
// touching the database. Redis being unavailable never blocks a submission.
func (s *QuizService) SubmitAnswer(userID, questionID int, submitted string) (bool, *models.Question, error) {
	question, err := s.questionStore.GetByID(questionID)
	if err != nil {
		return false, nil, err
	}
	if question == nil {
		return false, nil, ErrNotFound
	}

	if lastQ, found, err := s.submissionGuard.LastSubmitted(userID); err == nil && found && lastQ == questionID {
		return false, question, ErrDuplicateSubmission
	}
	// On guard error we continue and process

	isCorrect := s.Grade(question, submitted)

	if err := s.attemptStore.RecordAttempt(userID, question.ID, submitted, isCorrect, question.CategoryID); err != nil {
		return false, nil, err
	}

	if err := s.submissionGuard.SetLastSubmitted(userID, questionID); err != nil {
		log.Printf("Failed to set last submitted question for user %d: %v", userID, err)
	}

	return isCorrect, question, nil
}

// MockInterviewQuestion pairs a drawn question with its category for the
// mock-interview page.
type MockInterviewQuestion struct {
	Category models.Category
	Question models.Question
}

// MockInterview draws one random question per category, skipping categories
// without questions. No grading is attached to this mode.
func (s *QuizService) MockInterview() ([]MockInterviewQuestion, error) {
	categories, err := s.categoryStore.GetAll()
	if err != nil {
		return nil, err
	}

	var questions []MockInterviewQuestion
	for _, category := range categories {
		question, err := s.questionStore.GetRandomByCategory(category.ID)
		if err != nil {
			return nil, err
		}
		if question == nil {
			continue
		}
		questions = append(questions, MockInterviewQuestion{Category: category, Question: *question})
	}
	return questions, nil
}
