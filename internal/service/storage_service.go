package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"trivia_backend/internal/config"
	"trivia_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SeedSource 读取初始数据文件
type SeedSource interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Describe(name string) string
}

// LocalSeedSource 本地目录
type LocalSeedSource struct {
	Dir string
}

func (p *LocalSeedSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(p.Dir, name))
}

func (p *LocalSeedSource) Describe(name string) string {
	return filepath.Join(p.Dir, name)
}

// MinioSeedSource MinIO 存储桶
type MinioSeedSource struct {
	Bucket string
	Client *minio.Client
}

func NewMinioSeedSource(cfg *config.StorageConfig) (*MinioSeedSource, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioSeedSource{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioSeedSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject 不会发起请求，Stat 用于尽早发现对象不存在
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func (p *MinioSeedSource) Describe(name string) string {
	return fmt.Sprintf("minio://%s/%s", p.Bucket, name)
}

func NewSeedSource(cfg *config.StorageConfig) (SeedSource, error) {
	switch cfg.Type {
	case util.StorageLocal:
		return &LocalSeedSource{Dir: cfg.LocalPath}, nil
	case util.StorageMinio:
		return NewMinioSeedSource(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
