package service

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RBCMap-App/internal/domain/model"
)

func TestBuildCatalog(t *testing.T) {
	src := testSource()
	src.Entries = append(src.Entries,
		model.CatalogEntry{Category: model.CategoryShop, Name: "Ghost Shop", Column: "9th", Row: "Elm"},
		model.CatalogEntry{Category: model.CategoryGuild, Name: "Half Guild", Column: "1st", Row: "Nowhere"},
		model.CatalogEntry{Category: "dragon", Name: "Lair", Column: "1st", Row: "Elm"},
	)

	catalog, err := BuildCatalog(src)
	require.NoError(t, err)

	banks := catalog.GetAll(model.CategoryBank)
	require.Len(t, banks, 1)
	assert.Equal(t, model.Coordinate{Column: 0, Row: 0}, banks[0].Corner)
	assert.Equal(t, model.Coordinate{Column: 1, Row: 1}, banks[0].Coordinate)

	taverns := catalog.GetAll(model.CategoryTavern)
	require.Len(t, taverns, 1)
	assert.Equal(t, "Oak Inn", taverns[0].Name)
	assert.Equal(t, model.Coordinate{Column: 3, Row: 3}, taverns[0].Coordinate)

	assert.Zero(t, catalog.Count(model.CategoryShop))
	assert.Zero(t, catalog.Count(model.CategoryGuild))
	assert.Len(t, catalog.All(), 2)
}

func TestBuildCatalog_WarnsOncePerSkippedPOI(t *testing.T) {
	hook := captureLogs(t, logrus.InfoLevel)
	src := testSource()
	src.Entries = append(src.Entries,
		model.CatalogEntry{Category: model.CategoryShop, Name: "Ghost Shop", Column: "9th", Row: "Elm"},
	)

	_, err := BuildCatalog(src)
	require.NoError(t, err)

	warns := entriesAt(hook, logrus.WarnLevel)
	require.Len(t, warns, 1)
	assert.Equal(t, "Skipping POI due to missing coordinates", warns[0].Message)
	assert.Equal(t, model.CategoryShop, warns[0].Data["category"])
	assert.Equal(t, "Ghost Shop", warns[0].Data["name"])
	assert.Equal(t, false, warns[0].Data["column_resolved"])
	assert.Equal(t, true, warns[0].Data["row_resolved"])

	infos := entriesAt(hook, logrus.InfoLevel)
	require.Len(t, infos, 1)
	assert.Equal(t, "Catalog built", infos[0].Message)
	assert.Equal(t, 1, infos[0].Data["bank"])
	assert.Equal(t, 1, infos[0].Data["tavern"])
	assert.Equal(t, 0, infos[0].Data["shop"])
	assert.Equal(t, 1, infos[0].Data["skipped"])
}

func TestBuildCatalog_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		src  *model.CatalogSource
	}{
		{"nil source", nil},
		{"no rows", &model.CatalogSource{
			Columns: []model.StreetEntry{{Name: "1st", Coordinate: 0}},
		}},
		{"duplicate column name", &model.CatalogSource{
			Columns: []model.StreetEntry{{Name: "1st", Coordinate: 0}, {Name: "1st", Coordinate: 2}},
			Rows:    []model.StreetEntry{{Name: "Elm", Coordinate: 0}},
		}},
		{"row out of grid", &model.CatalogSource{
			Columns: []model.StreetEntry{{Name: "1st", Coordinate: 0}},
			Rows:    []model.StreetEntry{{Name: "Elm", Coordinate: model.GridSize}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := BuildCatalog(tt.src)
			assert.Nil(t, catalog)
			assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
		})
	}
}
