package helper

import (
	"github.com/paulmach/orb"

	"RBCMap-App/internal/domain/model"
)

// ToPoint グリッド座標を orb.Point に変換
func ToPoint(c model.Coordinate) orb.Point {
	return orb.Point{float64(c.Column), float64(c.Row)}
}

// ViewportBound ビューポートに含まれるセル範囲の境界ボックス（両端を含む）
func ViewportBound(v model.Viewport) orb.Bound {
	min := ToPoint(v.Anchor)
	max := ToPoint(v.Anchor.Add(v.Zoom-1, v.Zoom-1))
	return orb.Bound{Min: min, Max: max}
}

// POIsInBound 境界ボックス内のPOIだけを返す（カタログ順を維持）
func POIsInBound(pois []model.POI, bound orb.Bound) []model.POI {
	var inside []model.POI
	for _, p := range pois {
		if bound.Contains(ToPoint(p.Coordinate)) {
			inside = append(inside, p)
		}
	}
	return inside
}
