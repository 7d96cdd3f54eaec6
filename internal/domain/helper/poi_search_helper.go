package helper

import (
	"RBCMap-App/internal/domain/model"
)

// RankedPOI 距離付きのPOI
type RankedPOI struct {
	Distance int       `json:"distance"`
	POI      model.POI `json:"poi"`
}

// POISearchHelper カタログに束縛した最寄り検索
type POISearchHelper struct {
	catalog *model.Catalog
	metric  model.DistanceMetric
}

// NewPOISearchHelper 新しいPOISearchHelperインスタンスを作成する
func NewPOISearchHelper(catalog *model.Catalog, metric model.DistanceMetric) *POISearchHelper {
	return &POISearchHelper{
		catalog: catalog,
		metric:  metric,
	}
}

// NearestIn カテゴリのPOI座標を近い順に返す
func (h *POISearchHelper) NearestIn(category model.Category, point model.Coordinate) []Ranked {
	return Nearest(h.metric, point, h.catalog.Coordinates(category))
}

// NearestPOIs カテゴリのPOIを近い順に返す
func (h *POISearchHelper) NearestPOIs(category model.Category, point model.Coordinate) []RankedPOI {
	pois := h.catalog.GetAll(category)
	SortByDistanceFromLocation(h.metric, point, pois)
	out := make([]RankedPOI, len(pois))
	for i, p := range pois {
		out[i] = RankedPOI{Distance: APCost(h.metric, point, p.Coordinate), POI: p}
	}
	return out
}

// FindNearestPOI 最も近いPOI。候補がなければ false
func (h *POISearchHelper) FindNearestPOI(category model.Category, point model.Coordinate) (RankedPOI, bool) {
	ranked := h.NearestPOIs(category, point)
	if len(ranked) == 0 {
		return RankedPOI{}, false
	}
	return ranked[0], true
}

func (h *POISearchHelper) NearestBank(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryBank, point)
}

func (h *POISearchHelper) NearestTavern(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryTavern, point)
}

func (h *POISearchHelper) NearestTransit(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryTransit, point)
}

func (h *POISearchHelper) NearestShop(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryShop, point)
}

func (h *POISearchHelper) NearestGuild(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryGuild, point)
}

func (h *POISearchHelper) NearestUserBuilding(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryUserBuilding, point)
}

func (h *POISearchHelper) NearestPlaceOfInterest(point model.Coordinate) []Ranked {
	return h.NearestIn(model.CategoryPlaceOfInterest, point)
}
