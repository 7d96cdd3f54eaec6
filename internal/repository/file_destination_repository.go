package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
)

// FileDestinationRepository プロファイルごとの目的地を1つのYAMLファイルに保存する
type FileDestinationRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileDestinationRepository(path string) repository.DestinationRepository {
	return &FileDestinationRepository{path: path}
}

func (r *FileDestinationRepository) Save(ctx context.Context, profile string, destination *model.Coordinate, savedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		return err
	}
	records[profile] = model.DestinationRecord{Destination: destination, SavedAt: savedAt}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("目的地YAMLの生成失敗: %w", err)
	}

	// 一時ファイルに書いてから置き換える
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".destination-*.yaml")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成失敗: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("目的地ファイルの書き込み失敗: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("目的地ファイルの書き込み失敗: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("目的地ファイルの置き換え失敗: %w", err)
	}
	return nil
}

func (r *FileDestinationRepository) Load(ctx context.Context, profile string) (*model.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		return nil, err
	}
	return records[profile].Destination, nil
}

// read ファイルがなければ空のマップを返す
func (r *FileDestinationRepository) read() (map[string]model.DestinationRecord, error) {
	records := make(map[string]model.DestinationRecord)

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("目的地ファイルの読み込み失敗: %w", err)
	}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("目的地ファイルの解析失敗: %w", err)
	}
	if records == nil {
		records = make(map[string]model.DestinationRecord)
	}
	return records, nil
}
