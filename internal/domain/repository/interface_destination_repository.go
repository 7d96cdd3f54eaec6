package repository

import (
	"context"
	"time"

	"RBCMap-App/internal/domain/model"
)

// DestinationRepository プロファイルごとに1スロットの目的地を永続化する
type DestinationRepository interface {
	// Save 目的地を上書き保存する。nil は「目的地なし」
	Save(ctx context.Context, profile string, destination *model.Coordinate, savedAt time.Time) error

	// Load 保存済みの目的地を返す。未保存は (nil, nil)
	Load(ctx context.Context, profile string) (*model.Coordinate, error)
}
