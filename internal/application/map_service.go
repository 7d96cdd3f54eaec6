package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/internal/usecase"
	"RBCMap-App/pkg/logger"
)

// Streets 移動先選択用の通り一覧（座標順）
type Streets struct {
	Columns []model.StreetEntry `json:"columns"`
	Rows    []model.StreetEntry `json:"rows"`
}

// MapService セッション管理とカタログ操作を提供するサービス
type MapService interface {
	// CreateSession プロファイル用のセッションを作成して ID を返す
	CreateSession(ctx context.Context, profile string) (string, usecase.MapSessionUseCase)

	// Session ID からセッションを取得する
	Session(id string) (usecase.MapSessionUseCase, error)

	// CloseSession セッションを破棄する
	CloseSession(id string) error

	// RefreshCatalog カタログを再読み込みする
	RefreshCatalog(ctx context.Context) error

	// Streets 現在のカタログの通り名
	Streets() Streets
}

// MapServiceConfig セッション作成時の既定値
type MapServiceConfig struct {
	Zoom        int
	MinimapSize int
	Metric      model.DistanceMetric
	Tracked     []model.Category
}

// mapServiceImpl MapServiceの実装
type mapServiceImpl struct {
	catalogs *CatalogStore
	destRepo repository.DestinationRepository
	cfg      MapServiceConfig

	mu       sync.RWMutex
	sessions map[string]usecase.MapSessionUseCase
}

// NewMapService MapServiceの新しいインスタンスを作成
func NewMapService(catalogs *CatalogStore, destRepo repository.DestinationRepository, cfg MapServiceConfig) MapService {
	return &mapServiceImpl{
		catalogs: catalogs,
		destRepo: destRepo,
		cfg:      cfg,
		sessions: make(map[string]usecase.MapSessionUseCase),
	}
}

func (s *mapServiceImpl) CreateSession(ctx context.Context, profile string) (string, usecase.MapSessionUseCase) {
	id := uuid.New().String()
	session := usecase.NewMapSessionUseCase(ctx, s.catalogs, s.destRepo, usecase.SessionOptions{
		Profile:     profile,
		Zoom:        s.cfg.Zoom,
		MinimapSize: s.cfg.MinimapSize,
		Metric:      s.cfg.Metric,
		Tracked:     s.cfg.Tracked,
	})

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	logger.Component("sessions").WithFields(logrus.Fields{
		"session_id": id,
		"profile":    session.Profile(),
	}).Info("Session created")
	return id, session
}

func (s *mapServiceImpl) Session(id string) (usecase.MapSessionUseCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	return session, nil
}

func (s *mapServiceImpl) CloseSession(id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	logger.Component("sessions").WithFields(logrus.Fields{
		"session_id": id,
		"profile":    session.Profile(),
	}).Info("Session closed")
	return nil
}

func (s *mapServiceImpl) RefreshCatalog(ctx context.Context) error {
	_, err := s.catalogs.Refresh(ctx)
	return err
}

func (s *mapServiceImpl) Streets() Streets {
	catalog := s.catalogs.Current()
	return Streets{
		Columns: catalog.Columns.SortedByCoordinate(),
		Rows:    catalog.Rows.SortedByCoordinate(),
	}
}
