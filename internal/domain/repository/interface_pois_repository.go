package repository

import (
	"context"

	"RBCMap-App/internal/domain/model"
)

// CatalogRepository 通り軸とPOIの生データを読み込む
type CatalogRepository interface {
	// Load 起動時および明示的なリフレッシュ時に呼ばれる。データ全体を一括で返す
	Load(ctx context.Context) (*model.CatalogSource, error)
}
