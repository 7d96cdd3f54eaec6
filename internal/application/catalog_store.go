package application

import (
	"context"
	"fmt"
	"sync"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/internal/domain/service"
	"RBCMap-App/pkg/logger"
)

// CatalogStore 現在のカタログを保持し、リフレッシュで丸ごと差し替える
type CatalogStore struct {
	mu      sync.RWMutex
	repo    repository.CatalogRepository
	catalog *model.Catalog
}

// NewCatalogStore 起動時の読み込みを行う。失敗は ErrCatalogUnavailable
func NewCatalogStore(ctx context.Context, repo repository.CatalogRepository) (*CatalogStore, error) {
	s := &CatalogStore{repo: repo}
	catalog, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.catalog = catalog
	return s, nil
}

// Current 現在のカタログ
func (s *CatalogStore) Current() *model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Refresh データソースから再読み込みする。失敗時は以前のカタログを保持する
func (s *CatalogStore) Refresh(ctx context.Context) (*model.Catalog, error) {
	catalog, err := s.load(ctx)
	if err != nil {
		logger.Component("catalog").WithError(err).Error("Catalog refresh failed, keeping previous catalog")
		return s.Current(), err
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	logger.Component("catalog").Info("✅ Catalog refreshed")
	return catalog, nil
}

func (s *CatalogStore) load(ctx context.Context) (*model.Catalog, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: カタログリポジトリが設定されていません", model.ErrCatalogUnavailable)
	}
	src, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}
	return service.BuildCatalog(src)
}
