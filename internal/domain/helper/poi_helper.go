package helper

import (
	"RBCMap-App/internal/domain/model"
	"sort"
)

// Ranked 距離付きの候補
type Ranked struct {
	Distance   int              `json:"distance"`
	Coordinate model.Coordinate `json:"coordinate"`
	Index      int              `json:"index"` // 候補スライス内の位置
}

// Nearest 基準点からの距離で候補を昇順に並べる（同距離は候補順を維持）
func Nearest(metric model.DistanceMetric, point model.Coordinate, candidates []model.Coordinate) []Ranked {
	ranked := make([]Ranked, len(candidates))
	for i, c := range candidates {
		ranked[i] = Ranked{
			Distance:   metric.Distance(point, c),
			Coordinate: c,
			Index:      i,
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked
}

// APCost 2点間の移動APコスト
func APCost(metric model.DistanceMetric, from, to model.Coordinate) int {
	return metric.Distance(from, to)
}

// SortByDistanceFromLocation 基準座標からの距離でPOIスライスを安定ソートする
func SortByDistanceFromLocation(metric model.DistanceMetric, origin model.Coordinate, targets []model.POI) {
	sort.SliceStable(targets, func(i, j int) bool {
		return metric.Distance(origin, targets[i].Coordinate) < metric.Distance(origin, targets[j].Coordinate)
	})
}
