package service

import (
	"context"
	"encoding/json"
	"time"
	"trivia_backend/internal/model"
	"trivia_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const categoryCacheKey = "trivia:categories"

// CategoryCache 分类列表的 redis 缓存。分类不会被接口修改，只依赖 TTL 过期
type CategoryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCategoryCache(rdb *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{rdb: rdb, ttl: ttl}
}

// Get 未命中或 redis 异常时返回 false，由调用方回源数据库
func (c *CategoryCache) Get(ctx context.Context) ([]model.Category, bool) {
	data, err := c.rdb.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("Category cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		logger.Log.Warn("Category cache entry corrupted", zap.Error(err))
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) Set(ctx context.Context, categories []model.Category) {
	data, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, categoryCacheKey, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("Category cache write failed", zap.Error(err))
	}
}

func (c *CategoryCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, categoryCacheKey).Err(); err != nil {
		logger.Log.Warn("Category cache invalidate failed", zap.Error(err))
	}
}
