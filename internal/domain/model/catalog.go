package model

// Catalog 起動時に読み込まれる通り軸とカテゴリ別POI。構築後は読み取り専用
type Catalog struct {
	Columns *StreetAxis
	Rows    *StreetAxis
	pois    map[Category][]POI
	order   []Category
}

// NewCatalog 解決済みのPOIからカタログを作成する
func NewCatalog(columns, rows *StreetAxis, pois []POI) *Catalog {
	c := &Catalog{
		Columns: columns,
		Rows:    rows,
		pois:    make(map[Category][]POI),
	}
	for _, p := range pois {
		if _, ok := c.pois[p.Category]; !ok {
			c.order = append(c.order, p.Category)
		}
		c.pois[p.Category] = append(c.pois[p.Category], p)
	}
	return c
}

// GetAll カテゴリのPOIをカタログ順で返す（コピー）
func (c *Catalog) GetAll(category Category) []POI {
	if c == nil {
		return nil
	}
	src := c.pois[category]
	out := make([]POI, len(src))
	copy(out, src)
	return out
}

// Coordinates カテゴリのPOI座標をカタログ順で返す
func (c *Catalog) Coordinates(category Category) []Coordinate {
	if c == nil {
		return nil
	}
	src := c.pois[category]
	out := make([]Coordinate, len(src))
	for i, p := range src {
		out[i] = p.Coordinate
	}
	return out
}

// Count カテゴリのPOI数
func (c *Catalog) Count(category Category) int {
	if c == nil {
		return 0
	}
	return len(c.pois[category])
}

// All 全POIをカテゴリの既定順に並べて返す
func (c *Catalog) All() []POI {
	if c == nil {
		return nil
	}
	var out []POI
	for _, cat := range AllCategories() {
		out = append(out, c.pois[cat]...)
	}
	return out
}

// IntersectionLabel 座標の交差点名（"列 & 行"）。どちらかが名前を持たなければ false
func (c *Catalog) IntersectionLabel(coord Coordinate) (string, bool) {
	if c == nil {
		return "", false
	}
	col, okCol := c.Columns.NameOf(coord.Column)
	row, okRow := c.Rows.NameOf(coord.Row)
	if !okCol || !okRow {
		return "", false
	}
	return col + " & " + row, true
}
