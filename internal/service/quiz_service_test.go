package service

import (
	"context"
	"testing"

	"trivia_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestionExcludesPrevious(t *testing.T) {
	f := newFixture(t)
	science := f.category(t, "Science")
	a := f.question(t, "A?", science.ID)
	b := f.question(t, "B?", science.ID)
	c := f.question(t, "C?", science.ID)
	ctx := context.Background()

	seen := map[uint]bool{}
	for i := 0; i < 20; i++ {
		q, err := f.quiz.NextQuestion(ctx, []uint{a.ID, c.ID}, "")
		require.NoError(t, err)
		require.NotNil(t, q)
		seen[q.ID] = true
	}
	assert.Equal(t, map[uint]bool{b.ID: true}, seen)
}

func TestNextQuestionExhausted(t *testing.T) {
	f := newFixture(t)
	a := f.question(t, "A?", 1)
	b := f.question(t, "B?", 1)

	q, err := f.quiz.NextQuestion(context.Background(), []uint{a.ID, b.ID}, "")
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuestionEmptyPreviousList(t *testing.T) {
	f := newFixture(t)
	only := f.question(t, "Only?", 1)

	q, err := f.quiz.NextQuestion(context.Background(), nil, "")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, only.ID, q.ID)
}

func TestNextQuestionByCategoryName(t *testing.T) {
	f := newFixture(t)
	science := f.category(t, "Science")
	art := f.category(t, "Art")
	f.question(t, "Science?", science.ID)
	artQ := f.question(t, "Art 1?", art.ID)
	artQ2 := f.question(t, "Art 2?", art.ID)
	ctx := context.Background()

	// 固定选择最后一个候选
	f.quiz.pick = func(n int) int { return n - 1 }

	q, err := f.quiz.NextQuestion(ctx, nil, "Art")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, artQ2.ID, q.ID)

	q, err = f.quiz.NextQuestion(ctx, []uint{artQ2.ID}, "Art")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, artQ.ID, q.ID)

	q, err = f.quiz.NextQuestion(ctx, []uint{artQ.ID, artQ2.ID}, "Art")
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuestionUnknownCategory(t *testing.T) {
	f := newFixture(t)
	f.question(t, "A?", 1)

	_, err := f.quiz.NextQuestion(context.Background(), nil, "Cooking")
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
	assert.Equal(t, util.KindUnprocessable, util.KindOf(err))
}
