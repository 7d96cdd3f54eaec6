package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/pkg/logger"
)

// captureLogs 共有ロガーにテスト用フックを付け、終了時に元へ戻す
func captureLogs(t *testing.T, level logrus.Level) *logtest.Hook {
	t.Helper()
	prevLevel := logger.Log.GetLevel()
	prevOut := logger.Log.Out
	prevHooks := logger.Log.ReplaceHooks(make(logrus.LevelHooks))

	logger.Log.SetLevel(level)
	logger.Log.SetOutput(io.Discard)
	hook := logtest.NewLocal(logger.Log)

	t.Cleanup(func() {
		logger.Log.ReplaceHooks(prevHooks)
		logger.Log.SetLevel(prevLevel)
		logger.Log.SetOutput(prevOut)
	})
	return hook
}

// entriesAt 指定レベルのエントリだけを返す
func entriesAt(hook *logtest.Hook, level logrus.Level) []logrus.Entry {
	var out []logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			out = append(out, *e)
		}
	}
	return out
}

func testSource() *model.CatalogSource {
	return &model.CatalogSource{
		Columns: []model.StreetEntry{{Name: "1st", Coordinate: 0}, {Name: "2nd", Coordinate: 2}},
		Rows:    []model.StreetEntry{{Name: "Elm", Coordinate: 0}, {Name: "Oak", Coordinate: 2}},
		Entries: []model.CatalogEntry{
			{Category: model.CategoryBank, Column: "1st", Row: "Elm"},
			{Category: model.CategoryTavern, Name: "Oak Inn", Column: "2nd", Row: "Oak"},
		},
	}
}

func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	catalog, err := BuildCatalog(testSource())
	require.NoError(t, err)
	return catalog
}

// stubDestinationRepository 保存・読み込みのエラーを差し込めるリポジトリ
type stubDestinationRepository struct {
	saved    map[string]*model.Coordinate
	saves    int
	saveErr  error
	loadErr  error
	lastTime time.Time
}

func newStubDestinationRepository() *stubDestinationRepository {
	return &stubDestinationRepository{saved: make(map[string]*model.Coordinate)}
}

func (r *stubDestinationRepository) Save(_ context.Context, profile string, dest *model.Coordinate, savedAt time.Time) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[profile] = dest
	r.lastTime = savedAt
	return nil
}

func (r *stubDestinationRepository) Load(_ context.Context, profile string) (*model.Coordinate, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.saved[profile], nil
}
