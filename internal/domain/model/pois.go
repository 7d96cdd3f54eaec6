package model

// Category POIのカテゴリ
type Category string

const (
	CategoryBank            Category = "bank"
	CategoryTavern          Category = "tavern"
	CategoryTransit         Category = "transit"
	CategoryShop            Category = "shop"
	CategoryGuild           Category = "guild"
	CategoryUserBuilding    Category = "user_building"
	CategoryPlaceOfInterest Category = "place_of_interest"
)

// BankDisplayName 銀行は名前を持たないため共通の表示名を使う
const BankDisplayName = "OmniBank"

// POI Point of Interest（地図上に表示する建物）を表すモデル
type POI struct {
	Category   Category   `json:"category"`
	Name       string     `json:"name,omitempty"` // 銀行は空
	Coordinate Coordinate `json:"coordinate"`     // 建物のセル
	Corner     Coordinate `json:"corner"`         // 建物が面する名前付き交差点
}

// DisplayName 表示用の名前を返す（銀行は共通名）
func (p *POI) DisplayName() string {
	if p.Category == CategoryBank {
		return BankDisplayName
	}
	return p.Name
}

// CatalogEntry データソースから読み込んだ未解決のPOIレコード
type CatalogEntry struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
	Column   string   `json:"column" yaml:"column"` // 列の通り名
	Row      string   `json:"row" yaml:"row"`       // 行の通り名
}

// CatalogSource カタログローダーが返す生データ
type CatalogSource struct {
	Columns []StreetEntry  `json:"columns" yaml:"columns"`
	Rows    []StreetEntry  `json:"rows" yaml:"rows"`
	Entries []CatalogEntry `json:"entries" yaml:"entries"`
}

// AllCategories 全カテゴリ（表示・検索の既定順）
func AllCategories() []Category {
	return []Category{
		CategoryBank,
		CategoryTavern,
		CategoryTransit,
		CategoryShop,
		CategoryGuild,
		CategoryUserBuilding,
		CategoryPlaceOfInterest,
	}
}

// ParseCategory 文字列からカテゴリを取得する
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &UnknownCategoryError{Value: s}
}

// DefaultTrackedCategories 最寄り検索を常時行うカテゴリ
func DefaultTrackedCategories() []Category {
	return []Category{CategoryBank, CategoryTransit, CategoryTavern}
}
