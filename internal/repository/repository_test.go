package repository

import (
	"fmt"
	"testing"

	"trivia_backend/internal/config"
	"trivia_backend/internal/model"
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

func seedCategories(t *testing.T, db *gorm.DB, names ...string) []model.Category {
	var out []model.Category
	for _, name := range names {
		c := model.Category{Type: name}
		require.NoError(t, db.Create(&c).Error)
		out = append(out, c)
	}
	return out
}

func seedQuestions(t *testing.T, db *gorm.DB, n int, category int) []model.Question {
	var out []model.Question
	for i := 0; i < n; i++ {
		q := model.Question{
			Question:   fmt.Sprintf("Question %d of category %d?", i, category),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   category,
			Difficulty: i%5 + 1,
		}
		require.NoError(t, db.Create(&q).Error)
		out = append(out, q)
	}
	return out
}
