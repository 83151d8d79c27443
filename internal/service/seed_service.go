package service

import (
	"context"
	"encoding/json"
	"fmt"
	"trivia_backend/internal/model"
	"trivia_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedData 初始数据格式
type SeedData struct {
	Categories []model.Category `json:"categories"`
	Questions  []model.Question `json:"questions"`
}

type SeedService struct {
	DB    *gorm.DB
	Cache *CategoryCache
}

func NewSeedService(db *gorm.DB, cache *CategoryCache) *SeedService {
	return &SeedService{DB: db, Cache: cache}
}

// Seed 仅在对应表为空时导入，可重复执行
func (s *SeedService) Seed(ctx context.Context, source SeedSource, name string) error {
	rc, err := source.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open seed %s: %w", source.Describe(name), err)
	}
	defer rc.Close()

	var data SeedData
	if err := json.NewDecoder(rc).Decode(&data); err != nil {
		return fmt.Errorf("decode seed %s: %w", source.Describe(name), err)
	}

	var inserted SeedData
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(data.Categories) > 0 {
			if err := tx.Create(&data.Categories).Error; err != nil {
				return err
			}
			inserted.Categories = data.Categories
		}

		if err := tx.Model(&model.Question{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(data.Questions) > 0 {
			// 题目 id 由数据库生成
			for i := range data.Questions {
				data.Questions[i].ID = 0
			}
			if err := tx.CreateInBatches(&data.Questions, 100).Error; err != nil {
				return err
			}
			inserted.Questions = data.Questions
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed %s: %w", source.Describe(name), err)
	}

	if len(inserted.Categories) > 0 && s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}

	logger.Log.Info("Seed completed",
		zap.String("source", source.Describe(name)),
		zap.Int("categories", len(inserted.Categories)),
		zap.Int("questions", len(inserted.Questions)),
	)
	return nil
}
