package helper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"RBCMap-App/internal/domain/model"
)

// smallCatalog 1st/2nd × Elm/Oak の最小カタログ
func smallCatalog(t *testing.T, pois ...model.POI) *model.Catalog {
	t.Helper()
	cols, err := model.NewStreetAxis([]model.StreetEntry{{Name: "1st", Coordinate: 0}, {Name: "2nd", Coordinate: 2}})
	require.NoError(t, err)
	rows, err := model.NewStreetAxis([]model.StreetEntry{{Name: "Elm", Coordinate: 0}, {Name: "Oak", Coordinate: 2}})
	require.NoError(t, err)
	return model.NewCatalog(cols, rows, pois)
}

func at(col, row int) model.Coordinate {
	return model.Coordinate{Column: col, Row: row}
}
