package service

import (
	"fmt"
	"testing"

	"trivia_backend/internal/config"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDB(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	db         *gorm.DB
	categories *CategoryService
	questions  *QuestionService
	quiz       *QuizService
}

func newFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	categories := NewCategoryService(categoryRepo, nil)
	return &fixture{
		db:         db,
		categories: categories,
		questions:  NewQuestionService(questionRepo, categories),
		quiz:       NewQuizService(questionRepo, categories),
	}
}

func (f *fixture) category(t *testing.T, name string) model.Category {
	c := model.Category{Type: name}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) question(t *testing.T, text string, category uint) model.Question {
	q := model.Question{Question: text, Answer: "answer to " + text, Category: int(category), Difficulty: 2}
	require.NoError(t, f.db.Create(&q).Error)
	return q
}

func (f *fixture) manyQuestions(t *testing.T, n int, category uint) {
	for i := 0; i < n; i++ {
		f.question(t, fmt.Sprintf("Question #%d", i), category)
	}
}

// brokenDB 关闭底层连接，模拟数据库不可用
func (f *fixture) brokenDB(t *testing.T) {
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
