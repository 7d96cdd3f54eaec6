package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_WindowAndCenter(t *testing.T) {
	for zoom := MinZoom; zoom <= MaxZoom; zoom++ {
		for _, anchor := range []Coordinate{{-1, -1}, {0, 0}, {50, 7}, {GridSize - zoom + 1, GridSize - zoom + 1}} {
			v := Viewport{Anchor: anchor, Zoom: zoom}

			window := v.Window()
			count := 0
			for _, row := range window {
				assert.Len(t, row, zoom)
				count += len(row)
			}
			assert.Equal(t, zoom*zoom, count)
			assert.Equal(t, anchor, window[0][0])

			center := v.Center()
			assert.Equal(t, anchor.Column+zoom/2, center.Column)
			assert.Equal(t, anchor.Row+zoom/2, center.Row)
			assert.True(t, v.Contains(center))
		}
	}
}

func TestViewport_Clamp(t *testing.T) {
	v := Viewport{Anchor: Coordinate{Column: -10, Row: 500}, Zoom: 3}
	clamped := v.Clamp()

	assert.Equal(t, -1, clamped.Anchor.Column)
	assert.Equal(t, GridSize-3+1, clamped.Anchor.Row)
}

func TestNewViewport_InvalidZoomFallsBack(t *testing.T) {
	assert.Equal(t, DefaultZoom, NewViewport(0).Zoom)
	assert.Equal(t, DefaultZoom, NewViewport(MaxZoom+1).Zoom)
	assert.Equal(t, 7, NewViewport(7).Zoom)
}
