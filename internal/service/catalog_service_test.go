package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

func testCatalogService(t *testing.T) (*CatalogService, string) {
	t.Helper()
	dir := t.TempDir()
	categories := &fakeCategoryStore{categories: []models.Category{
		{ID: 1, Name: "Java", Slug: "java"},
		{ID: 2, Name: "Selenium", Slug: "selenium"},
	}}
	questions := &fakeQuestionStore{questions: []models.Question{
		{ID: 1, CategoryID: 1, Prompt: "What is polymorphism?", CorrectAnswer: "many forms"},
	}}
	return NewCatalogService(categories, questions, dir), dir
}

func TestGetCategoryNotFound(t *testing.T) {
	svc, _ := testCatalogService(t)

	_, err := svc.GetCategory(99)
	assert.Equal(t, ErrNotFound, err)

	category, err := svc.GetCategory(1)
	require.NoError(t, err)
	assert.Equal(t, "java", category.Slug)
}

func TestListQuestionsEmptyCategory(t *testing.T) {
	svc, _ := testCatalogService(t)

	questions, err := svc.ListQuestions(2)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestReferenceTextReadsSlugFile(t *testing.T) {
	svc, dir := testCatalogService(t)

	content := "# Java\n\nEverything about Java."
	require.NoError(t, os.WriteFile(filepath.Join(dir, "java.md"), []byte(content), 0o644))

	got, err := svc.ReferenceText(&models.Category{ID: 1, Name: "Java", Slug: "java"})
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestReferenceTextMissingFileIsPlaceholder(t *testing.T) {
	svc, _ := testCatalogService(t)

	got, err := svc.ReferenceText(&models.Category{ID: 2, Name: "Selenium", Slug: "selenium"})
	require.NoError(t, err, "a missing reference file is a normal condition")
	assert.Equal(t, ReferencePlaceholder, got)
}
