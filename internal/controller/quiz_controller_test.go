package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayQuizExcludesPreviousQuestions(t *testing.T) {
	s := newTestServer(t)
	science := s.category(t, "Science")
	art := s.category(t, "Art")
	a := s.question(t, "A?", science.ID)
	b := s.question(t, "B?", science.ID)
	s.question(t, "C?", art.ID)

	w, body := s.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{a.ID},
		"quiz_category":      "Science",
	})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, true, body["success"])

	question := body["question"].(map[string]interface{})
	assert.Equal(t, float64(b.ID), question["id"])
	assert.Equal(t, float64(science.ID), question["category"])
}

func TestPlayQuizAnyCategory(t *testing.T) {
	s := newTestServer(t)
	science := s.category(t, "Science")
	art := s.category(t, "Art")
	a := s.question(t, "A?", science.ID)
	c := s.question(t, "C?", art.ID)

	seen := map[float64]bool{}
	previous := []uint{}
	for i := 0; i < 2; i++ {
		w, body := s.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      "",
		})
		requireStatus(t, w, http.StatusOK)
		id := body["question"].(map[string]interface{})["id"].(float64)
		require.False(t, seen[id], "question %v served twice", id)
		seen[id] = true
		previous = append(previous, uint(id))
	}
	assert.Equal(t, map[float64]bool{float64(a.ID): true, float64(c.ID): true}, seen)

	// 题目用尽时返回 null
	w, body := s.do(t, http.MethodPost, "/quizzes", map[string]interface{}{"previous_questions": previous})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, map[string]interface{}{"success": true, "question": nil}, body)
}

func TestPlayQuizMissingPreviousQuestions(t *testing.T) {
	s := newTestServer(t)
	q := s.question(t, "Only?", 1)

	w, body := s.do(t, http.MethodPost, "/quizzes", map[string]interface{}{})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, float64(q.ID), body["question"].(map[string]interface{})["id"])
}

func TestPlayQuizUnknownCategory(t *testing.T) {
	s := newTestServer(t)
	s.question(t, "Q?", 1)

	w, body := s.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{},
		"quiz_category":      "Astrology",
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)
	assert.Equal(t, errorBody(422, "unprocessable"), body)
}

func TestPlayQuizBadBody(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/quizzes", `{"previous_questions": "1,2"}`)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, errorBody(400, "bad request"), body)

	w, _ = s.do(t, http.MethodPost, "/quizzes", "")
	requireStatus(t, w, http.StatusBadRequest)
}
