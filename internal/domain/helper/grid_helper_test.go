package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"RBCMap-App/internal/domain/model"
)

func TestClassify(t *testing.T) {
	catalog := smallCatalog(t)

	tests := []struct {
		name string
		cell model.Coordinate
		want model.CellKind
	}{
		{"named corner", at(0, 0), model.CellNamedIntersection},
		{"named far corner", at(2, 2), model.CellNamedIntersection},
		{"alley between columns", at(1, 0), model.CellAlley},
		{"alley between rows", at(2, 1), model.CellAlley},
		{"block interior", at(1, 1), model.CellAlley},
		{"left of grid", at(-1, 0), model.CellEdge},
		{"past last column", at(3, 0), model.CellEdge},
		{"past last row", at(0, 3), model.CellEdge},
		{"far outside", at(model.GridSize+5, -20), model.CellEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(catalog.Columns, catalog.Rows, tt.cell))
		})
	}
}

func TestClassify_IsTotalAndExclusive(t *testing.T) {
	catalog := smallCatalog(t)
	for col := -3; col <= 6; col++ {
		for row := -3; row <= 6; row++ {
			kind := Classify(catalog.Columns, catalog.Rows, at(col, row))
			assert.Contains(t, []model.CellKind{model.CellNamedIntersection, model.CellAlley, model.CellEdge}, kind)
			if catalog.Columns.Contains(col) && catalog.Rows.Contains(row) {
				assert.Equal(t, model.CellNamedIntersection, kind)
			}
		}
	}
}

func TestClassify_UnnamedEvenCell(t *testing.T) {
	cols, _ := model.NewStreetAxis([]model.StreetEntry{{Name: "1st", Coordinate: 0}, {Name: "3rd", Coordinate: 4}})
	rows, _ := model.NewStreetAxis([]model.StreetEntry{{Name: "Elm", Coordinate: 0}, {Name: "Ash", Coordinate: 4}})

	assert.Equal(t, model.CellNamedIntersection, Classify(cols, rows, at(2, 0)))
	assert.Equal(t, "", CellLabel(model.NewCatalog(cols, rows, nil), at(2, 0)))
}

func TestClassify_EmptyAxes(t *testing.T) {
	assert.Equal(t, model.CellEdge, Classify(nil, nil, at(0, 0)))
}

func TestLabels(t *testing.T) {
	catalog := smallCatalog(t)

	assert.Equal(t, "1st & Elm", CellLabel(catalog, at(0, 0)))
	assert.Equal(t, "", CellLabel(catalog, at(1, 0)))

	// 建物 (3,1) は交差点 (2,0) に面している
	assert.Equal(t, "2nd & Elm", CornerLabel(catalog, at(3, 1)))
	assert.Equal(t, "2nd & ", CornerLabelOf(catalog, at(2, 1)))
}
