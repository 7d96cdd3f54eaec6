package model

// Viewport 表示中のウィンドウ（左上アンカーとズーム）
type Viewport struct {
	Anchor Coordinate `json:"anchor"`
	Zoom   int        `json:"zoom"`
}

// NewViewport 初期状態のビューポート（アンカー (0,0)）
func NewViewport(zoom int) Viewport {
	if zoom < MinZoom || zoom > MaxZoom {
		zoom = DefaultZoom
	}
	return Viewport{Zoom: zoom}
}

// Center ビューポート中心（現在地）
func (v Viewport) Center() Coordinate {
	return v.Anchor.Add(v.Zoom/2, v.Zoom/2)
}

// MinAnchor アンカーが取り得る最小値（各軸共通）
func (v Viewport) MinAnchor() int {
	return -1
}

// MaxAnchor アンカーが取り得る最大値（各軸共通）
func (v Viewport) MaxAnchor() int {
	return GridSize - v.Zoom + 1
}

// InRange 値がアンカーの許容範囲内か
func (v Viewport) InRange(value int) bool {
	return value >= v.MinAnchor() && value <= v.MaxAnchor()
}

// Clamp アンカーを許容範囲に収めたビューポートを返す
func (v Viewport) Clamp() Viewport {
	v.Anchor.Column = clamp(v.Anchor.Column, v.MinAnchor(), v.MaxAnchor())
	v.Anchor.Row = clamp(v.Anchor.Row, v.MinAnchor(), v.MaxAnchor())
	return v
}

// Window 表示するズーム×ズームのセル座標（行優先）
func (v Viewport) Window() [][]Coordinate {
	cells := make([][]Coordinate, v.Zoom)
	for i := 0; i < v.Zoom; i++ {
		cells[i] = make([]Coordinate, v.Zoom)
		for j := 0; j < v.Zoom; j++ {
			cells[i][j] = v.Anchor.Add(j, i)
		}
	}
	return cells
}

// Contains 座標がウィンドウ内か
func (v Viewport) Contains(c Coordinate) bool {
	return c.Column >= v.Anchor.Column && c.Column < v.Anchor.Column+v.Zoom &&
		c.Row >= v.Anchor.Row && c.Row < v.Anchor.Row+v.Zoom
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
