package model

import (
	"fmt"
	"time"
)

// CellView ミニマップの1セル分の描画情報
type CellView struct {
	Coordinate Coordinate `json:"coordinate"`
	Kind       CellKind   `json:"kind"`
	Label      string     `json:"label,omitempty"` // 名前付き交差点のみ
	POIs       []POI      `json:"pois,omitempty"`
}

// NearestReport カテゴリごとの最寄りPOI情報
type NearestReport struct {
	Category     Category    `json:"category"`
	Available    bool        `json:"available"`
	Name         string      `json:"name,omitempty"`
	Intersection string      `json:"intersection,omitempty"`
	Cost         int         `json:"ap_cost"`
	Coordinate   *Coordinate `json:"coordinate,omitempty"`
}

// Text 情報パネル用の文字列
func (r NearestReport) Text() string {
	if !r.Available {
		return fmt.Sprintf("No %s available", r.Category)
	}
	return fmt.Sprintf("%s\n%s\nAP: %d", r.Name, r.Intersection, r.Cost)
}

// DestinationReport 目的地の情報
type DestinationReport struct {
	Set          bool        `json:"set"`
	Coordinate   *Coordinate `json:"coordinate,omitempty"`
	Intersection string      `json:"intersection,omitempty"`
	Cost         int         `json:"ap_cost"`
	InView       bool        `json:"in_view"` // 目的地が現在のウィンドウ内にある
}

// Text 情報パネル用の文字列
func (r DestinationReport) Text() string {
	if !r.Set {
		return NoDestinationText
	}
	return fmt.Sprintf("Destination\n%s\nAP: %d", r.Intersection, r.Cost)
}

// MapProjection 描画・レポート層に渡すスナップショット
type MapProjection struct {
	Viewport    Viewport          `json:"viewport"`
	Center      Coordinate        `json:"center"`
	Metric      DistanceMetric    `json:"metric"`
	Cells       [][]CellView      `json:"cells"`
	Nearest     []NearestReport   `json:"nearest"`
	Destination DestinationReport `json:"destination"`
}

// Summary 情報パネルの全行
func (p *MapProjection) Summary() []string {
	lines := make([]string, 0, len(p.Nearest)+1)
	for _, r := range p.Nearest {
		lines = append(lines, r.Text())
	}
	return append(lines, p.Destination.Text())
}

// DestinationRecord 永続化される目的地スロット
type DestinationRecord struct {
	Destination *Coordinate `json:"destination" yaml:"destination" firestore:"destination"`
	SavedAt     time.Time   `json:"saved_at" yaml:"saved_at" firestore:"saved_at"`
}
