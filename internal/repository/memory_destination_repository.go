package repository

import (
	"context"
	"sync"
	"time"

	"RBCMap-App/internal/domain/model"
)

// MemoryDestinationRepository プロセス内だけで保持する目的地ストア
type MemoryDestinationRepository struct {
	mu      sync.Mutex
	records map[string]model.DestinationRecord
}

func NewMemoryDestinationRepository() *MemoryDestinationRepository {
	return &MemoryDestinationRepository{
		records: make(map[string]model.DestinationRecord),
	}
}

func (r *MemoryDestinationRepository) Save(_ context.Context, profile string, destination *model.Coordinate, savedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var copied *model.Coordinate
	if destination != nil {
		d := *destination
		copied = &d
	}
	r.records[profile] = model.DestinationRecord{Destination: copied, SavedAt: savedAt}
	return nil
}

func (r *MemoryDestinationRepository) Load(_ context.Context, profile string) (*model.Coordinate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[profile]
	if !ok || rec.Destination == nil {
		return nil, nil
	}
	d := *rec.Destination
	return &d, nil
}

// Record 保存内容（テスト確認用）
func (r *MemoryDestinationRepository) Record(profile string) (model.DestinationRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[profile]
	return rec, ok
}
