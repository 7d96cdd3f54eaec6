package model

// ズーム（表示するセルの一辺の数）の範囲
const (
	MinZoom     = 3
	MaxZoom     = 10
	DefaultZoom = 3
)

// DefaultMinimapSize ミニマップの既定ピクセルサイズ
const DefaultMinimapSize = 280

// NoDestinationText 目的地未設定時の表示文言
const NoDestinationText = "No Destination Set"

// DistanceMetric APコストの計算方法
type DistanceMetric string

const (
	// MetricChebyshev 斜め移動も1APとして数える（既定）
	MetricChebyshev DistanceMetric = "chebyshev"
	// MetricManhattan 縦横移動のみで数える
	MetricManhattan DistanceMetric = "manhattan"
)

// Distance 2点間の距離をメトリクスに従って計算する
func (m DistanceMetric) Distance(a, b Coordinate) int {
	dx := abs(a.Column - b.Column)
	dy := abs(a.Row - b.Row)
	if m == MetricManhattan {
		return dx + dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// ParseDistanceMetric 文字列からメトリクスを取得する（空文字は既定値）
func ParseDistanceMetric(s string) (DistanceMetric, bool) {
	switch DistanceMetric(s) {
	case "", MetricChebyshev:
		return MetricChebyshev, true
	case MetricManhattan:
		return MetricManhattan, true
	}
	return "", false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
