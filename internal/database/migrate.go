package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(120) NOT NULL,
		email VARCHAR(320) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		slug VARCHAR(120) NOT NULL,
		UNIQUE KEY uniq_categories_slug (slug)
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		category_id INT NOT NULL,
		prompt TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		choices JSON NULL,
		KEY idx_questions_category (category_id),
		CONSTRAINT fk_questions_category FOREIGN KEY (category_id) REFERENCES categories (id)
	)`,
	`CREATE TABLE IF NOT EXISTS question_attempts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		question_id INT NOT NULL,
		submitted_answer TEXT NOT NULL,
		is_correct BOOLEAN NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_attempts_user (user_id),
		CONSTRAINT fk_attempts_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_attempts_question FOREIGN KEY (question_id) REFERENCES questions (id)
	)`,
	`CREATE TABLE IF NOT EXISTS progress (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		category_id INT NOT NULL,
		attempted INT NOT NULL DEFAULT 0,
		correct INT NOT NULL DEFAULT 0,
		UNIQUE KEY uniq_progress_user_category (user_id, category_id),
		CONSTRAINT fk_progress_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_progress_category FOREIGN KEY (category_id) REFERENCES categories (id)
	)`,
}

// SeedCategoryList is the fixed set of categories inserted when the table is
// empty. Slugs double as reference file names (data/references/<slug>.md).
var SeedCategoryList = []models.Category{
	{Name: "General QA", Slug: "general_qa"},
	{Name: "SDLC & STLC", Slug: "sdlc_stlc"},
	{Name: "Agile & Scrum", Slug: "agile_scrum"},
	{Name: "Java", Slug: "java"},
	{Name: "Selenium", Slug: "selenium"},
	{Name: "TestNG & JUnit", Slug: "testing_frameworks"},
	{Name: "Cucumber & BDD", Slug: "cucumber_bdd"},
	{Name: "Jenkins, Git & Maven", Slug: "devops_tools"},
	{Name: "API Testing", Slug: "api_testing"},
	{Name: "SQL & Databases", Slug: "sql_databases"},
	{Name: "Behavioral Questions", Slug: "behavioral"},
}

// Migrate creates all tables. Safe to run on every startup.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedCategories inserts the fixed category list once, only when the table
// is empty. Categories are immutable after seeding.
func SeedCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range SeedCategoryList {
		if _, err := db.Exec(`INSERT INTO categories (name, slug) VALUES (?, ?)`, c.Name, c.Slug); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}
	log.Printf("Seeded %d categories", len(SeedCategoryList))
	return nil
}
