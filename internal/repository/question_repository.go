package repository

import (
	"context"
	"strings"
	"trivia_backend/internal/model"
	"trivia_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// paginate 先统计总数，再取 page 对应的一页
func paginate(query *gorm.DB, page, limit int) ([]model.Question, int, error) {
	var questions []model.Question
	var total int64

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id asc").Offset(util.Offset(page, limit)).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	return questions, int(total), nil
}

// FindPage 分页查询全部题目
func (r *QuestionRepository) FindPage(ctx context.Context, page, limit int) ([]model.Question, int, error) {
	query := r.DB.WithContext(ctx).Model(&model.Question{})
	return paginate(query, page, limit)
}

// SearchPage 题干不区分大小写的子串匹配
func (r *QuestionRepository) SearchPage(ctx context.Context, term string, page, limit int) ([]model.Question, int, error) {
	query := r.DB.WithContext(ctx).Model(&model.Question{})
	if term != "" {
		query = query.Where("LOWER(question) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	return paginate(query, page, limit)
}

// FindPageByCategory 按分类分页
func (r *QuestionRepository) FindPageByCategory(ctx context.Context, categoryID uint, page, limit int) ([]model.Question, int, error) {
	query := r.DB.WithContext(ctx).Model(&model.Question{}).Where("category = ?", categoryID)
	return paginate(query, page, limit)
}

// FindCandidates 排除已答题目，categoryID 为 nil 时不限分类
func (r *QuestionRepository) FindCandidates(ctx context.Context, excludeIDs []uint, categoryID *uint) ([]model.Question, error) {
	var questions []model.Question

	query := r.DB.WithContext(ctx).Model(&model.Question{})
	// 空切片会生成 NOT IN (NULL)，导致查不到任何数据
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}

	err := query.Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.WithContext(ctx).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.DB.WithContext(ctx).Create(question).Error
}

func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Count(&count).Error
	return count, err
}
