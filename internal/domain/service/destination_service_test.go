package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RBCMap-App/internal/domain/model"
)

func TestDestinationTracker_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	repo := newStubDestinationRepository()
	tracker := NewDestinationTracker(repo, "alice")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return fixed }

	center := model.Coordinate{Column: 5, Row: 5}

	dest, err := tracker.Toggle(ctx, center)
	require.NoError(t, err)
	require.NotNil(t, dest)
	assert.Equal(t, center, *dest)
	assert.Equal(t, &center, repo.saved["alice"])
	assert.Equal(t, fixed, repo.lastTime)

	dest, err = tracker.Toggle(ctx, center)
	require.NoError(t, err)
	assert.Nil(t, dest)
	assert.Nil(t, tracker.Current())
	assert.Nil(t, repo.saved["alice"])
	assert.Equal(t, 2, repo.saves)
}

func TestDestinationTracker_ToggleElsewhereReplaces(t *testing.T) {
	ctx := context.Background()
	tracker := NewDestinationTracker(newStubDestinationRepository(), "alice")

	_, err := tracker.Toggle(ctx, model.Coordinate{Column: 1, Row: 1})
	require.NoError(t, err)
	dest, err := tracker.Toggle(ctx, model.Coordinate{Column: 7, Row: 3})
	require.NoError(t, err)

	require.NotNil(t, dest)
	assert.Equal(t, model.Coordinate{Column: 7, Row: 3}, *dest)
}

func TestDestinationTracker_SaveFailureStillTransitions(t *testing.T) {
	saveErr := errors.New("disk full")
	repo := newStubDestinationRepository()
	repo.saveErr = saveErr
	tracker := NewDestinationTracker(repo, "alice")

	dest, err := tracker.Toggle(context.Background(), model.Coordinate{Column: 4, Row: 4})
	assert.ErrorIs(t, err, saveErr)
	require.NotNil(t, dest)
	assert.Equal(t, model.Coordinate{Column: 4, Row: 4}, *tracker.Current())
}

func TestDestinationTracker_Load(t *testing.T) {
	ctx := context.Background()
	repo := newStubDestinationRepository()
	repo.saved["alice"] = &model.Coordinate{Column: 9, Row: 9}

	tracker := NewDestinationTracker(repo, "alice")
	dest := tracker.Load(ctx)
	require.NotNil(t, dest)
	assert.Equal(t, model.Coordinate{Column: 9, Row: 9}, *dest)

	other := NewDestinationTracker(repo, "bob")
	assert.Nil(t, other.Load(ctx))
}

func TestDestinationTracker_LoadFailureMeansNoDestination(t *testing.T) {
	repo := newStubDestinationRepository()
	repo.loadErr = errors.New("corrupt file")
	tracker := NewDestinationTracker(repo, "alice")

	assert.Nil(t, tracker.Load(context.Background()))
	assert.Nil(t, tracker.Current())
}

func TestDestinationTracker_WithoutRepository(t *testing.T) {
	tracker := NewDestinationTracker(nil, "alice")

	assert.Nil(t, tracker.Load(context.Background()))
	dest, err := tracker.Toggle(context.Background(), model.Coordinate{Column: 2, Row: 2})
	require.NoError(t, err)
	assert.NotNil(t, dest)
}

func TestDestinationTracker_CurrentIsCopy(t *testing.T) {
	tracker := NewDestinationTracker(nil, "alice")
	_, _ = tracker.Toggle(context.Background(), model.Coordinate{Column: 2, Row: 2})

	cur := tracker.Current()
	cur.Column = 100
	assert.Equal(t, 2, tracker.Current().Column)
}
