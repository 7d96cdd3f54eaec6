package helper

import (
	"RBCMap-App/internal/domain/model"
)

// Classify セルを 名前付き交差点 / 路地 / 範囲外 に分類する
// 範囲は固定値ではなく現在の軸の最小・最大値で判定する
func Classify(columns, rows *model.StreetAxis, cell model.Coordinate) model.CellKind {
	if columns.Len() == 0 || rows.Len() == 0 {
		return model.CellEdge
	}
	if !inBounds(cell.Column, columns) || !inBounds(cell.Row, rows) {
		return model.CellEdge
	}
	if columns.Contains(cell.Column) && rows.Contains(cell.Row) {
		return model.CellNamedIntersection
	}
	if isOdd(cell.Column) || isOdd(cell.Row) {
		return model.CellAlley
	}
	// 偶数×偶数は通り上のセル（名前が揃わないのでラベルなし）
	return model.CellNamedIntersection
}

// CellLabel 両軸に名前がある場合の "列 & 行" ラベル
func CellLabel(catalog *model.Catalog, cell model.Coordinate) string {
	label, _ := catalog.IntersectionLabel(cell)
	return label
}

// CornerLabel 建物セルが面する交差点のラベル
func CornerLabel(catalog *model.Catalog, building model.Coordinate) string {
	return CornerLabelOf(catalog, building.Add(-model.BuildingOffset, -model.BuildingOffset))
}

// CornerLabelOf 交差点座標のラベル。名前のない軸は空文字になる
func CornerLabelOf(catalog *model.Catalog, corner model.Coordinate) string {
	if catalog == nil {
		return " & "
	}
	col, _ := catalog.Columns.NameOf(corner.Column)
	row, _ := catalog.Rows.NameOf(corner.Row)
	return col + " & " + row
}

func inBounds(v int, axis *model.StreetAxis) bool {
	if v < 0 || v >= model.GridSize {
		return false
	}
	return v >= axis.Min() && v <= axis.Max()
}

func isOdd(v int) bool {
	return v%2 != 0
}
