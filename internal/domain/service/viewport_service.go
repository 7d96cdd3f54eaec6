package service

import (
	"github.com/sirupsen/logrus"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/pkg/logger"
)

// ViewportController 表示ウィンドウの状態遷移を管理する
// 全ての遷移は範囲外・未解決の入力に対して何もしない（エラーにしない）
type ViewportController struct {
	state model.Viewport
}

// NewViewportController 初期状態（アンカー (0,0)、指定ズーム）で作成する
func NewViewportController(zoom int) *ViewportController {
	return &ViewportController{state: model.NewViewport(zoom).Clamp()}
}

// Viewport 現在の状態
func (c *ViewportController) Viewport() model.Viewport {
	return c.state
}

// Center 現在地（ビューポート中心）
func (c *ViewportController) Center() model.Coordinate {
	return c.state.Center()
}

// ZoomIn ズームを1段階小さくする
func (c *ViewportController) ZoomIn() bool {
	if c.state.Zoom <= model.MinZoom {
		return false
	}
	c.state.Zoom--
	c.state = c.state.Clamp()
	return true
}

// ZoomOut ズームを1段階大きくする
func (c *ViewportController) ZoomOut() bool {
	if c.state.Zoom >= model.MaxZoom {
		return false
	}
	c.state.Zoom++
	c.state = c.state.Clamp()
	return true
}

// GoToNamedIntersection 名前付き交差点が中心になるよう移動する
// 解決できない軸はアンカーを変更しない
func (c *ViewportController) GoToNamedIntersection(catalog *model.Catalog, columnName, rowName string) bool {
	if catalog == nil {
		return false
	}
	before := c.state
	half := c.state.Zoom / 2

	if col, ok := catalog.Columns.Resolve(columnName); ok {
		c.state.Anchor.Column = col - half
	} else {
		logResolveMiss("column", columnName)
	}
	if row, ok := catalog.Rows.Resolve(rowName); ok {
		c.state.Anchor.Row = row - half
	} else {
		logResolveMiss("row", rowName)
	}

	c.state = c.state.Clamp()
	return c.state != before
}

// PanToClickedCell クリックしたセルが中心になるよう移動する
// 範囲外になる軸は変更せず、もう一方の軸だけ更新する
func (c *ViewportController) PanToClickedCell(pixelX, pixelY, minimapPixelSize int) bool {
	if pixelX < 0 || pixelY < 0 || pixelX >= minimapPixelSize || pixelY >= minimapPixelSize {
		return false
	}
	blockSize := minimapPixelSize / c.state.Zoom
	if blockSize <= 0 {
		return false
	}

	half := c.state.Zoom / 2
	clickedCol := pixelX / blockSize
	clickedRow := pixelY / blockSize
	newCol := c.state.Anchor.Column + clickedCol - half
	newRow := c.state.Anchor.Row + clickedRow - half

	before := c.state
	if c.state.InRange(newCol) {
		c.state.Anchor.Column = newCol
	}
	if c.state.InRange(newRow) {
		c.state.Anchor.Row = newRow
	}
	return c.state != before
}

// ExternalPositionReport 外部から報告された座標をそのままアンカーに設定する
// GoToNamedIntersection と違い中心合わせは行わない
func (c *ViewportController) ExternalPositionReport(col, row int) bool {
	before := c.state
	c.state.Anchor = model.Coordinate{Column: col, Row: row}
	c.state = c.state.Clamp()
	return c.state != before
}

func logResolveMiss(axis, name string) {
	logger.Component("viewport").WithFields(logrus.Fields{
		"axis": axis,
		"name": name,
	}).Debug("Street name could not be resolved")
}
