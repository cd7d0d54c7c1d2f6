package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// ReferencePlaceholder is shown when a category has no reference file yet.
// A missing file is a normal condition, not an error.
const ReferencePlaceholder = "Reference material not available for this category."

// CatalogService serves categories, their questions, and the markdown
// reference file keyed by category slug.
type CatalogService struct {
	categoryStore CategoryStore
	questionStore QuestionStore
	referencesDir string
}

// NewCatalogService creates a new catalog service. referencesDir holds one
// <slug>.md file per category.
func NewCatalogService(categoryStore CategoryStore, questionStore QuestionStore, referencesDir string) *CatalogService {
	return &CatalogService{
		categoryStore: categoryStore,
		questionStore: questionStore,
		referencesDir: referencesDir,
	}
}

// ListCategories returns all categories in stable (id) order.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryStore.GetAll()
}

// GetCategory returns the category or ErrNotFound.
func (s *CatalogService) GetCategory(id int) (*models.Category, error) {
	category, err := s.categoryStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// ListQuestions returns all questions in a category; an empty category
// yields an empty slice, not an error.
func (s *CatalogService) ListQuestions(categoryID int) ([]models.Question, error) {
	return s.questionStore.GetByCategory(categoryID)
}

// ReferenceText reads the reference file for the category's slug. A missing
// file returns the placeholder; any other read failure is an error.
func (s *CatalogService) ReferenceText(category *models.Category) (string, error) {
	path := filepath.Join(s.referencesDir, category.Slug+".md")
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ReferencePlaceholder, nil
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}
