package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/pkg/logger"
)

// DestinationTracker 1つの任意目的地をトグルし、変更のたびに保存する
type DestinationTracker struct {
	repo        repository.DestinationRepository
	profile     string
	destination *model.Coordinate
	now         func() time.Time
}

// NewDestinationTracker 新しいDestinationTrackerを作成する（repo が nil なら保存しない）
func NewDestinationTracker(repo repository.DestinationRepository, profile string) *DestinationTracker {
	return &DestinationTracker{
		repo:    repo,
		profile: profile,
		now:     time.Now,
	}
}

// Load 保存済みの目的地を読み込む。未保存・読み込み失敗のどちらも「目的地なし」になる
func (t *DestinationTracker) Load(ctx context.Context) *model.Coordinate {
	t.destination = nil
	if t.repo == nil {
		return nil
	}

	dest, err := t.repo.Load(ctx, t.profile)
	if err != nil {
		logger.Component("destination").WithFields(logrus.Fields{
			"profile": t.profile,
			"error":   err.Error(),
		}).Warn("Failed to load destination, starting without one")
		return nil
	}
	if dest != nil {
		d := *dest
		t.destination = &d
	}
	return t.Current()
}

// Current 現在の目的地（コピー）
func (t *DestinationTracker) Current() *model.Coordinate {
	if t.destination == nil {
		return nil
	}
	d := *t.destination
	return &d
}

// Toggle 現在地と同じなら解除、そうでなければ現在地に設定して即保存する
// 保存に失敗してもメモリ上の状態は変更され、エラーだけを返す
func (t *DestinationTracker) Toggle(ctx context.Context, center model.Coordinate) (*model.Coordinate, error) {
	if t.destination != nil && *t.destination == center {
		t.destination = nil
	} else {
		c := center
		t.destination = &c
	}

	if err := t.save(ctx); err != nil {
		return t.Current(), err
	}
	return t.Current(), nil
}

func (t *DestinationTracker) save(ctx context.Context) error {
	if t.repo == nil {
		return nil
	}
	if err := t.repo.Save(ctx, t.profile, t.Current(), t.now()); err != nil {
		logger.Component("destination").WithFields(logrus.Fields{
			"profile": t.profile,
			"error":   err.Error(),
		}).Error("Failed to save destination")
		return fmt.Errorf("目的地の保存に失敗: %w", err)
	}
	return nil
}
