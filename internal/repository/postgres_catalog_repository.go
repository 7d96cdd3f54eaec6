package repository

import (
	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/internal/infrastructure/database"
	"context"
	"database/sql"
	"fmt"
)

// categoryTable カテゴリと保存先テーブルの対応
type categoryTable struct {
	Category model.Category
	Table    string
	HasName  bool
}

// catalogTables 全POIテーブル（銀行は名前を持たない）
var catalogTables = []categoryTable{
	{Category: model.CategoryBank, Table: "banks", HasName: false},
	{Category: model.CategoryTavern, Table: "taverns", HasName: true},
	{Category: model.CategoryTransit, Table: "transits", HasName: true},
	{Category: model.CategoryShop, Table: "shops", HasName: true},
	{Category: model.CategoryGuild, Table: "guilds", HasName: true},
	{Category: model.CategoryUserBuilding, Table: "userbuildings", HasName: true},
	{Category: model.CategoryPlaceOfInterest, Table: "placesofinterest", HasName: true},
}

type PostgresCatalogRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCatalogRepository(client *database.PostgreSQLClient) repository.CatalogRepository {
	return &PostgresCatalogRepository{
		client: client,
	}
}

// POIRow POIテーブルの1行。通り名は NULL の場合がある
type POIRow struct {
	Name   sql.NullString
	Column sql.NullString
	Row    sql.NullString
}

// ToEntry POIRowをmodel.CatalogEntryに変換（NULL は空文字として未解決扱い）
func (pr *POIRow) ToEntry(category model.Category) model.CatalogEntry {
	return model.CatalogEntry{
		Category: category,
		Name:     pr.Name.String,
		Column:   pr.Column.String,
		Row:      pr.Row.String,
	}
}

func (r *PostgresCatalogRepository) Load(ctx context.Context) (*model.CatalogSource, error) {
	columns, err := r.loadAxis(ctx, "columns")
	if err != nil {
		return nil, err
	}
	rows, err := r.loadAxis(ctx, "rows")
	if err != nil {
		return nil, err
	}

	src := &model.CatalogSource{
		Columns: columns,
		Rows:    rows,
	}
	for _, t := range catalogTables {
		entries, err := r.loadEntries(ctx, t)
		if err != nil {
			return nil, err
		}
		src.Entries = append(src.Entries, entries...)
	}

	return src, nil
}

func (r *PostgresCatalogRepository) loadAxis(ctx context.Context, table string) ([]model.StreetEntry, error) {
	query := fmt.Sprintf(`SELECT name, coordinate FROM %q ORDER BY id`, table)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s の取得失敗: %w", table, err)
	}
	defer rows.Close()

	var entries []model.StreetEntry
	for rows.Next() {
		var e model.StreetEntry
		if err := rows.Scan(&e.Name, &e.Coordinate); err != nil {
			return nil, fmt.Errorf("%s データスキャンエラー: %w", table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}

	return entries, nil
}

func (r *PostgresCatalogRepository) loadEntries(ctx context.Context, t categoryTable) ([]model.CatalogEntry, error) {
	nameExpr := "name"
	if !t.HasName {
		nameExpr = "NULL::text"
	}
	query := fmt.Sprintf(`SELECT %s, "column", "row" FROM %q ORDER BY id`, nameExpr, t.Table)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s の取得失敗: %w", t.Table, err)
	}
	defer rows.Close()

	var entries []model.CatalogEntry
	for rows.Next() {
		var row POIRow
		if err := rows.Scan(&row.Name, &row.Column, &row.Row); err != nil {
			return nil, fmt.Errorf("POIデータスキャンエラー: %w", err)
		}
		entries = append(entries, row.ToEntry(t.Category))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}

	return entries, nil
}
