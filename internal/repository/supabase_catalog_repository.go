package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/internal/infrastructure/database"
)

type SupabaseCatalogRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseCatalogRepository(client *database.SupabaseClient) repository.CatalogRepository {
	return &SupabaseCatalogRepository{
		client: client,
	}
}

// supabasePOIRow PostgRESTのJSON行。通り名は null の場合がある
type supabasePOIRow struct {
	Name   *string `json:"name"`
	Column *string `json:"column"`
	Row    *string `json:"row"`
}

func (r *SupabaseCatalogRepository) Load(ctx context.Context) (*model.CatalogSource, error) {
	var src model.CatalogSource

	if err := r.selectInto("columns", "name,coordinate", &src.Columns); err != nil {
		return nil, err
	}
	if err := r.selectInto("rows", "name,coordinate", &src.Rows); err != nil {
		return nil, err
	}

	for _, t := range catalogTables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields := "column,row"
		if t.HasName {
			fields = "name,column,row"
		}
		var rows []supabasePOIRow
		if err := r.selectInto(t.Table, fields, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			src.Entries = append(src.Entries, model.CatalogEntry{
				Category: t.Category,
				Name:     deref(row.Name),
				Column:   deref(row.Column),
				Row:      deref(row.Row),
			})
		}
	}

	return &src, nil
}

func (r *SupabaseCatalogRepository) selectInto(table, fields string, out interface{}) error {
	data, _, err := r.client.GetClient().From(table).Select(fields, "", false).Execute()
	if err != nil {
		return fmt.Errorf("%s データの取得失敗: %w", table, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s データのJSONアンマーシャル失敗: %w", table, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
