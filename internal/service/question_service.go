package service

import (
	"context"
	"errors"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo       *repository.QuestionRepository
	Categories *CategoryService
}

func NewQuestionService(repo *repository.QuestionRepository, categories *CategoryService) *QuestionService {
	return &QuestionService{Repo: repo, Categories: categories}
}

// QuestionPage 一页题目及符合条件的总数
type QuestionPage struct {
	Questions []model.FormattedQuestion
	Total     int
}

// QuestionInput 新建题目的字段，不做任何校验
type QuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// ListQuestions 空页（含超出最后一页）视为 NotFound
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, total, err := s.Repo.FindPage(ctx, page, util.QuestionsPerPage)
	if err != nil {
		return nil, util.Wrap(util.ErrStorage, err)
	}
	if len(questions) == 0 {
		return nil, util.ErrQuestionsPageEmpty
	}
	return &QuestionPage{Questions: model.FormatQuestions(questions), Total: total}, nil
}

// SearchQuestions term 为 nil 表示请求中缺少 searchTerm；空字符串匹配全部
func (s *QuestionService) SearchQuestions(ctx context.Context, term *string, page int) (*QuestionPage, error) {
	if term == nil {
		return nil, util.ErrSearchTermRequired
	}

	questions, total, err := s.Repo.SearchPage(ctx, *term, page, util.QuestionsPerPage)
	if err != nil {
		return nil, util.Wrap(util.ErrStorage, err)
	}
	return &QuestionPage{Questions: model.FormatQuestions(questions), Total: total}, nil
}

// ListQuestionsByCategory 分类必须存在，空页返回空列表
func (s *QuestionService) ListQuestionsByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, *model.Category, error) {
	category, err := s.Categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, total, err := s.Repo.FindPageByCategory(ctx, categoryID, page, util.QuestionsPerPage)
	if err != nil {
		return nil, nil, util.Wrap(util.ErrStorage, err)
	}
	return &QuestionPage{Questions: model.FormatQuestions(questions), Total: total}, category, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input QuestionInput) (*model.Question, error) {
	question := &model.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.Repo.Create(ctx, question); err != nil {
		return nil, util.Wrap(util.ErrStorage, err)
	}
	return question, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return util.Wrap(util.ErrStorage, err)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return util.Wrap(util.ErrStorage, err)
	}
	return nil
}
