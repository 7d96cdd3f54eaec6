package model

import (
	"fmt"
	"sort"
)

// GridSize 街区グリッドの一辺のセル数（座標は 0..GridSize-1）
const GridSize = 201

// BuildingOffset 建物は名前付き交差点から南東に1セルずれた位置にある
const BuildingOffset = 1

// Coordinate グリッド上の (列, 行) 座標
type Coordinate struct {
	Column int `json:"column" yaml:"column" firestore:"column"`
	Row    int `json:"row" yaml:"row" firestore:"row"`
}

// Add 各軸にオフセットを加えた座標を返す
func (c Coordinate) Add(dc, dr int) Coordinate {
	return Coordinate{Column: c.Column + dc, Row: c.Row + dr}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// CellKind セルの分類
type CellKind string

const (
	CellNamedIntersection CellKind = "named_intersection"
	CellAlley             CellKind = "alley"
	CellEdge              CellKind = "edge"
)

// StreetAxis 通り名と座標の双方向マップ（列・行それぞれに1つ）
type StreetAxis struct {
	names    []string
	byName   map[string]int
	byCoord  map[int]string
	min, max int
}

// StreetEntry 軸を構築するための通り名と座標の組
type StreetEntry struct {
	Name       string `json:"name" yaml:"name"`
	Coordinate int    `json:"coordinate" yaml:"coordinate"`
}

// NewStreetAxis 通り一覧から軸を構築する。名前・座標の重複や範囲外の座標はエラー
func NewStreetAxis(entries []StreetEntry) (*StreetAxis, error) {
	axis := &StreetAxis{
		names:   make([]string, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byCoord: make(map[int]string, len(entries)),
	}

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: 通り名が空です (index %d)", ErrInvalidAxis, i)
		}
		if e.Coordinate < 0 || e.Coordinate >= GridSize {
			return nil, fmt.Errorf("%w: 通り %q の座標 %d が範囲外です", ErrInvalidAxis, e.Name, e.Coordinate)
		}
		if _, dup := axis.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: 通り名 %q が重複しています", ErrInvalidAxis, e.Name)
		}
		if other, dup := axis.byCoord[e.Coordinate]; dup {
			return nil, fmt.Errorf("%w: 座標 %d が %q と %q で重複しています", ErrInvalidAxis, e.Coordinate, other, e.Name)
		}

		axis.names = append(axis.names, e.Name)
		axis.byName[e.Name] = e.Coordinate
		axis.byCoord[e.Coordinate] = e.Name

		if i == 0 || e.Coordinate < axis.min {
			axis.min = e.Coordinate
		}
		if i == 0 || e.Coordinate > axis.max {
			axis.max = e.Coordinate
		}
	}

	return axis, nil
}

// Resolve 通り名から座標を引く（大文字小文字を区別する完全一致）
func (a *StreetAxis) Resolve(name string) (int, bool) {
	if a == nil {
		return 0, false
	}
	coord, ok := a.byName[name]
	return coord, ok
}

// NameOf 座標から通り名を引く
func (a *StreetAxis) NameOf(coord int) (string, bool) {
	if a == nil {
		return "", false
	}
	name, ok := a.byCoord[coord]
	return name, ok
}

// Contains 座標がいずれかの通りに対応するか
func (a *StreetAxis) Contains(coord int) bool {
	_, ok := a.NameOf(coord)
	return ok
}

// Len 通りの数
func (a *StreetAxis) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Min 軸上の最小座標
func (a *StreetAxis) Min() int { return a.min }

// Max 軸上の最大座標
func (a *StreetAxis) Max() int { return a.max }

// SortedByCoordinate 座標順の通り一覧
func (a *StreetAxis) SortedByCoordinate() []StreetEntry {
	if a == nil {
		return nil
	}
	out := make([]StreetEntry, 0, len(a.names))
	for _, name := range a.names {
		out = append(out, StreetEntry{Name: name, Coordinate: a.byName[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Coordinate < out[j].Coordinate
	})
	return out
}
