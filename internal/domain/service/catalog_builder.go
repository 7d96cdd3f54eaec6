package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/pkg/logger"
)

// BuildCatalog 生データから通り軸を作り、POIの通り名を座標に解決する
// 解決できないPOIは警告を出して除外する。軸が作れない場合は ErrCatalogUnavailable
func BuildCatalog(src *model.CatalogSource) (*model.Catalog, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: カタログデータがありません", model.ErrCatalogUnavailable)
	}

	columns, err := model.NewStreetAxis(src.Columns)
	if err != nil {
		return nil, fmt.Errorf("%w: 列の構築に失敗: %v", model.ErrCatalogUnavailable, err)
	}
	rows, err := model.NewStreetAxis(src.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: 行の構築に失敗: %v", model.ErrCatalogUnavailable, err)
	}
	if columns.Len() == 0 || rows.Len() == 0 {
		return nil, fmt.Errorf("%w: 通りが1本もありません (columns=%d, rows=%d)",
			model.ErrCatalogUnavailable, columns.Len(), rows.Len())
	}

	log := logger.Component("catalog")
	pois := make([]model.POI, 0, len(src.Entries))
	skipped := 0

	for _, e := range src.Entries {
		if _, err := model.ParseCategory(string(e.Category)); err != nil {
			log.WithFields(logrus.Fields{
				"category": e.Category,
				"name":     e.Name,
			}).Warn("Skipping entry with unknown category")
			skipped++
			continue
		}

		col, okCol := columns.Resolve(e.Column)
		row, okRow := rows.Resolve(e.Row)
		if !okCol || !okRow {
			log.WithFields(logrus.Fields{
				"category":        e.Category,
				"name":            e.Name,
				"column":          e.Column,
				"row":             e.Row,
				"column_resolved": okCol,
				"row_resolved":    okRow,
			}).Warn("Skipping POI due to missing coordinates")
			skipped++
			continue
		}

		corner := model.Coordinate{Column: col, Row: row}
		pois = append(pois, model.POI{
			Category:   e.Category,
			Name:       e.Name,
			Corner:     corner,
			Coordinate: corner.Add(model.BuildingOffset, model.BuildingOffset),
		})
	}

	catalog := model.NewCatalog(columns, rows, pois)

	fields := logrus.Fields{
		"columns": columns.Len(),
		"rows":    rows.Len(),
		"skipped": skipped,
	}
	for _, cat := range model.AllCategories() {
		fields[string(cat)] = catalog.Count(cat)
	}
	log.WithFields(fields).Info("Catalog built")

	return catalog, nil
}
