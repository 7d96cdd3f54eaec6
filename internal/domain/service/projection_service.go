package service

import (
	"sync"

	"RBCMap-App/internal/domain/helper"
	"RBCMap-App/internal/domain/model"
)

// ProjectionInput 投影に必要な読み取り専用の入力
type ProjectionInput struct {
	Viewport    model.Viewport
	Catalog     *model.Catalog
	Destination *model.Coordinate
	Metric      model.DistanceMetric
	Tracked     []model.Category
}

// Project ビューポート・カタログ・目的地から描画用セルと最寄り情報を作る
// 入力の状態は一切変更しない
func Project(in ProjectionInput) *model.MapProjection {
	center := in.Viewport.Center()

	return &model.MapProjection{
		Viewport:    in.Viewport,
		Center:      center,
		Metric:      in.Metric,
		Cells:       projectCells(in.Viewport, in.Catalog),
		Nearest:     projectNearest(in.Catalog, in.Metric, center, in.Tracked),
		Destination: projectDestination(in.Catalog, in.Metric, in.Viewport, in.Destination),
	}
}

func projectCells(v model.Viewport, catalog *model.Catalog) [][]model.CellView {
	overlays := make(map[model.Coordinate][]model.POI)
	for _, p := range helper.POIsInBound(catalog.All(), helper.ViewportBound(v)) {
		overlays[p.Coordinate] = append(overlays[p.Coordinate], p)
	}

	window := v.Window()
	cells := make([][]model.CellView, len(window))
	for i, row := range window {
		cells[i] = make([]model.CellView, len(row))
		for j, coord := range row {
			kind := model.CellEdge
			if catalog != nil {
				kind = helper.Classify(catalog.Columns, catalog.Rows, coord)
			}
			cells[i][j] = model.CellView{
				Coordinate: coord,
				Kind:       kind,
				Label:      helper.CellLabel(catalog, coord),
				POIs:       overlays[coord],
			}
		}
	}
	return cells
}

// projectNearest カテゴリごとの検索は独立しているので並行に実行する
func projectNearest(catalog *model.Catalog, metric model.DistanceMetric, center model.Coordinate, tracked []model.Category) []model.NearestReport {
	reports := make([]model.NearestReport, len(tracked))
	search := helper.NewPOISearchHelper(catalog, metric)

	var wg sync.WaitGroup
	for i, category := range tracked {
		wg.Add(1)
		go func(idx int, cat model.Category) {
			defer wg.Done()
			reports[idx] = NearestReportFor(search, catalog, cat, center)
		}(i, category)
	}
	wg.Wait()

	return reports
}

// NearestReportFor カテゴリの最寄りPOIレポートを作る
func NearestReportFor(search *helper.POISearchHelper, catalog *model.Catalog, category model.Category, center model.Coordinate) model.NearestReport {
	best, ok := search.FindNearestPOI(category, center)
	if !ok {
		return model.NearestReport{Category: category}
	}
	coord := best.POI.Coordinate
	return model.NearestReport{
		Category:     category,
		Available:    true,
		Name:         best.POI.DisplayName(),
		Intersection: helper.CornerLabel(catalog, coord),
		Cost:         best.Distance,
		Coordinate:   &coord,
	}
}

// projectDestination ラベルはPOIと同じく座標から BuildingOffset を引いた交差点
func projectDestination(catalog *model.Catalog, metric model.DistanceMetric, v model.Viewport, dest *model.Coordinate) model.DestinationReport {
	if dest == nil {
		return model.DestinationReport{}
	}
	d := *dest
	return model.DestinationReport{
		Set:          true,
		Coordinate:   &d,
		Intersection: helper.CornerLabel(catalog, d),
		Cost:         helper.APCost(metric, v.Center(), d),
		InView:       v.Contains(d),
	}
}
