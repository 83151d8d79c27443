package service

import (
	"context"
	"math/rand"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/monitoring"
)

type QuizService struct {
	Questions  *repository.QuestionRepository
	Categories *CategoryService

	// pick 返回 [0,n) 内的下标
	pick func(n int) int
}

func NewQuizService(questions *repository.QuestionRepository, categories *CategoryService) *QuizService {
	return &QuizService{
		Questions:  questions,
		Categories: categories,
		pick:       rand.Intn,
	}
}

// NextQuestion 从未出现过的题目中随机选一道。quizCategory 为空表示不限分类。
// 没有可选题目时返回 nil, nil
func (s *QuizService) NextQuestion(ctx context.Context, previous []uint, quizCategory string) (*model.FormattedQuestion, error) {
	var categoryID *uint
	if quizCategory != "" {
		category, err := s.Categories.GetCategoryByType(ctx, quizCategory)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	candidates, err := s.Questions.FindCandidates(ctx, previous, categoryID)
	if err != nil {
		return nil, util.Wrap(util.ErrStorage, err)
	}

	if len(candidates) == 0 {
		monitoring.QuizQuestionsServed.WithLabelValues("exhausted").Inc()
		return nil, nil
	}

	question := candidates[s.pick(len(candidates))].Format()
	monitoring.QuizQuestionsServed.WithLabelValues("question").Inc()
	return &question, nil
}
