package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPageFromQuery(t *testing.T) {
	cases := map[string]int{
		"/questions":          1,
		"/questions?page=3":   3,
		"/questions?page=abc": 1,
		"/questions?page=0":   1,
		"/questions?page=-2":  1,
		"/questions?page=999": 999,
	}

	for url, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", url, nil)
		assert.Equal(t, want, PageFromQuery(c), url)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("12")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	_, ok = ParseID("twelve")
	assert.False(t, ok)

	_, ok = ParseID("-1")
	assert.False(t, ok)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, QuestionsPerPage))
	assert.Equal(t, 20, Offset(3, QuestionsPerPage))
	assert.Equal(t, 0, Offset(0, QuestionsPerPage))
}
