package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
)

// FileCatalogRepository YAMLファイルからカタログを読み込む（オフライン利用・テスト用）
type FileCatalogRepository struct {
	path string
}

func NewFileCatalogRepository(path string) repository.CatalogRepository {
	return &FileCatalogRepository{path: path}
}

func (r *FileCatalogRepository) Load(ctx context.Context) (*model.CatalogSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("カタログファイルの読み込み失敗: %w", err)
	}
	return ParseCatalogYAML(data)
}

// ParseCatalogYAML YAMLのカタログを解析する
func ParseCatalogYAML(data []byte) (*model.CatalogSource, error) {
	var src model.CatalogSource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("カタログYAMLの解析失敗: %w", err)
	}
	return &src, nil
}
