package usecase

import (
	"context"
	"sync"

	"RBCMap-App/internal/domain/helper"
	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/internal/domain/service"
)

// CatalogProvider 現在のカタログを返す（リフレッシュで差し替わる）
type CatalogProvider interface {
	Current() *model.Catalog
}

// SessionOptions セッションの設定
type SessionOptions struct {
	Profile     string
	Zoom        int
	MinimapSize int
	Metric      model.DistanceMetric
	Tracked     []model.Category
}

// MapSessionUseCase 1人のプレイヤーの地図操作
type MapSessionUseCase interface {
	Profile() string
	Projection() *model.MapProjection
	ZoomIn() *model.MapProjection
	ZoomOut() *model.MapProjection
	GoTo(columnName, rowName string) *model.MapProjection
	ClickAt(pixelX, pixelY int) *model.MapProjection
	ReportPosition(col, row int) *model.MapProjection
	// ToggleDestination 保存エラーは返すが、状態遷移と投影は常に行われる
	ToggleDestination(ctx context.Context) (*model.MapProjection, error)
	Nearest(category model.Category) []helper.RankedPOI
}

// mapSessionUseCaseImpl 全ての遷移を1つのロックで直列化する
type mapSessionUseCaseImpl struct {
	mu          sync.Mutex
	catalogs    CatalogProvider
	viewport    *service.ViewportController
	destination *service.DestinationTracker
	opts        SessionOptions
}

// NewMapSessionUseCase 新しいセッションを作成し、保存済みの目的地を読み込む
func NewMapSessionUseCase(ctx context.Context, catalogs CatalogProvider, destRepo repository.DestinationRepository, opts SessionOptions) MapSessionUseCase {
	if opts.Profile == "" {
		opts.Profile = "default"
	}
	if opts.MinimapSize <= 0 {
		opts.MinimapSize = model.DefaultMinimapSize
	}
	if opts.Metric == "" {
		opts.Metric = model.MetricChebyshev
	}
	if opts.Tracked == nil {
		opts.Tracked = model.DefaultTrackedCategories()
	}

	tracker := service.NewDestinationTracker(destRepo, opts.Profile)
	tracker.Load(ctx)

	return &mapSessionUseCaseImpl{
		catalogs:    catalogs,
		viewport:    service.NewViewportController(opts.Zoom),
		destination: tracker,
		opts:        opts,
	}
}

func (s *mapSessionUseCaseImpl) Profile() string {
	return s.opts.Profile
}

func (s *mapSessionUseCaseImpl) Projection() *model.MapProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project()
}

func (s *mapSessionUseCaseImpl) ZoomIn() *model.MapProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.ZoomIn()
	return s.project()
}

func (s *mapSessionUseCaseImpl) ZoomOut() *model.MapProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.ZoomOut()
	return s.project()
}

func (s *mapSessionUseCaseImpl) GoTo(columnName, rowName string) *model.MapProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.GoToNamedIntersection(s.catalogs.Current(), columnName, rowName)
	return s.project()
}

func (s *mapSessionUseCaseImpl) ClickAt(pixelX, pixelY int) *model.MapProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.PanToClickedCell(pixelX, pixelY, s.opts.MinimapSize)
	return s.project()
}

func (s *mapSessionUseCaseImpl) ReportPosition(col, row int) *model.MapProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.ExternalPositionReport(col, row)
	return s.project()
}

func (s *mapSessionUseCaseImpl) ToggleDestination(ctx context.Context) (*model.MapProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.destination.Toggle(ctx, s.viewport.Center())
	return s.project(), err
}

func (s *mapSessionUseCaseImpl) Nearest(category model.Category) []helper.RankedPOI {
	s.mu.Lock()
	defer s.mu.Unlock()
	search := helper.NewPOISearchHelper(s.catalogs.Current(), s.opts.Metric)
	return search.NearestPOIs(category, s.viewport.Center())
}

// project ロック取得済みで呼ぶ
func (s *mapSessionUseCaseImpl) project() *model.MapProjection {
	return service.Project(service.ProjectionInput{
		Viewport:    s.viewport.Viewport(),
		Catalog:     s.catalogs.Current(),
		Destination: s.destination.Current(),
		Metric:      s.opts.Metric,
		Tracked:     s.opts.Tracked,
	})
}
