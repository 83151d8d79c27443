package service

import (
	"context"
	"errors"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo  *repository.CategoryRepository
	Cache *CategoryCache
}

// NewCategoryService cache 可为 nil
func NewCategoryService(repo *repository.CategoryRepository, cache *CategoryCache) *CategoryService {
	return &CategoryService{Repo: repo, Cache: cache}
}

// ListCategories 按 id 升序返回全部分类
func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	if s.Cache != nil {
		if categories, ok := s.Cache.Get(ctx); ok {
			return categories, nil
		}
	}

	categories, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, util.Wrap(util.ErrStorage, err)
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, categories)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, categoryLookupError(err)
	}
	return category, nil
}

// GetCategoryByType 按名称查找，用于答题时的分类筛选
func (s *CategoryService) GetCategoryByType(ctx context.Context, name string) (*model.Category, error) {
	category, err := s.Repo.FindByType(ctx, name)
	if err != nil {
		return nil, categoryLookupError(err)
	}
	return category, nil
}

func categoryLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCategoryNotFound
	}
	return util.Wrap(util.ErrStorage, err)
}
