package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"trivia_backend/internal/config"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/service"
	"trivia_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
}

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

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	categoryRepo := repository.NewCategoryRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	categorySvc := service.NewCategoryService(categoryRepo, nil)
	questionSvc := service.NewQuestionService(questionRepo, categorySvc)
	quizSvc := service.NewQuizService(questionRepo, categorySvc)

	categories := NewCategoryController(categorySvc, questionSvc)
	questions := NewQuestionController(questionSvc, categorySvc)
	quizzes := NewQuizController(quizSvc)

	r := gin.New()
	r.GET("/categories", categories.ListCategories)
	r.GET("/categories/:id/questions", categories.ListCategoryQuestions)
	r.GET("/questions", questions.ListQuestions)
	r.POST("/questions", questions.CreateQuestion)
	r.POST("/questions/search", questions.SearchQuestions)
	r.DELETE("/questions/:id", questions.DeleteQuestion)
	r.POST("/quizzes", quizzes.PlayQuiz)
	r.GET("/health", NewHealthController(db).HealthCheck)

	return &testServer{db: db, router: r}
}

func (s *testServer) do(t *testing.T, method, url string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func (s *testServer) category(t *testing.T, name string) model.Category {
	c := model.Category{Type: name}
	require.NoError(t, s.db.Create(&c).Error)
	return c
}

func (s *testServer) question(t *testing.T, text string, category uint) model.Question {
	q := model.Question{Question: text, Answer: "A", Category: int(category), Difficulty: 1}
	require.NoError(t, s.db.Create(&q).Error)
	return q
}

func (s *testServer) manyQuestions(t *testing.T, n int, category uint) {
	for i := 0; i < n; i++ {
		s.question(t, fmt.Sprintf("Question %d?", i), category)
	}
}

func (s *testServer) breakDB(t *testing.T) {
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func errorBody(code int, message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   float64(code),
		"message": message,
	}
}

func ids(questions interface{}) []float64 {
	var out []float64
	for _, q := range questions.([]interface{}) {
		out = append(out, q.(map[string]interface{})["id"].(float64))
	}
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
}
