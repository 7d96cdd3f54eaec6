package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RBCMap-App/internal/domain/model"
)

func TestProject(t *testing.T) {
	catalog := testCatalog(t)
	v := model.Viewport{Anchor: model.Coordinate{Column: -1, Row: -1}, Zoom: 3}

	p := Project(ProjectionInput{
		Viewport: v,
		Catalog:  catalog,
		Metric:   model.MetricChebyshev,
		Tracked:  []model.Category{model.CategoryBank, model.CategoryTransit, model.CategoryTavern},
	})

	assert.Equal(t, model.Coordinate{Column: 0, Row: 0}, p.Center)
	require.Len(t, p.Cells, 3)
	for _, row := range p.Cells {
		require.Len(t, row, 3)
	}

	assert.Equal(t, model.CellEdge, p.Cells[0][0].Kind)
	assert.Equal(t, model.CellNamedIntersection, p.Cells[1][1].Kind)
	assert.Equal(t, "1st & Elm", p.Cells[1][1].Label)
	assert.Equal(t, model.CellAlley, p.Cells[2][2].Kind)
	require.Len(t, p.Cells[2][2].POIs, 1)
	assert.Equal(t, model.CategoryBank, p.Cells[2][2].POIs[0].Category)

	require.Len(t, p.Nearest, 3)

	bank := p.Nearest[0]
	assert.True(t, bank.Available)
	assert.Equal(t, model.BankDisplayName, bank.Name)
	assert.Equal(t, "1st & Elm", bank.Intersection)
	assert.Equal(t, 1, bank.Cost)
	assert.Equal(t, "OmniBank\n1st & Elm\nAP: 1", bank.Text())

	transit := p.Nearest[1]
	assert.False(t, transit.Available)
	assert.Equal(t, "No transit available", transit.Text())

	tavern := p.Nearest[2]
	assert.Equal(t, "Oak Inn", tavern.Name)
	assert.Equal(t, "2nd & Oak", tavern.Intersection)
	assert.Equal(t, 3, tavern.Cost)

	assert.False(t, p.Destination.Set)
	assert.Equal(t, model.NoDestinationText, p.Destination.Text())
	assert.Len(t, p.Summary(), 4)
}

func TestProject_Destination(t *testing.T) {
	catalog := testCatalog(t)
	dest := model.Coordinate{Column: 3, Row: 3}

	for _, tt := range []struct {
		metric model.DistanceMetric
		cost   int
	}{
		{model.MetricChebyshev, 3},
		{model.MetricManhattan, 6},
	} {
		p := Project(ProjectionInput{
			Viewport:    model.Viewport{Anchor: model.Coordinate{Column: -1, Row: -1}, Zoom: 3},
			Catalog:     catalog,
			Destination: &dest,
			Metric:      tt.metric,
		})

		assert.True(t, p.Destination.Set)
		assert.Equal(t, "2nd & Oak", p.Destination.Intersection)
		assert.Equal(t, tt.cost, p.Destination.Cost)
		assert.False(t, p.Destination.InView)
		assert.Empty(t, p.Nearest)
	}
}

func TestProject_DestinationLabelUsesCornerConvention(t *testing.T) {
	catalog := testCatalog(t)
	v := model.Viewport{Anchor: model.Coordinate{Column: 1, Row: 1}, Zoom: 3}
	require.Equal(t, model.Coordinate{Column: 2, Row: 2}, v.Center())

	// 交差点上で目的地を置くと、ラベルは (1,1) の交差点名（名前なし）になる
	onIntersection := model.Coordinate{Column: 2, Row: 2}
	p := Project(ProjectionInput{Viewport: v, Catalog: catalog, Destination: &onIntersection, Metric: model.MetricChebyshev})
	assert.Equal(t, " & ", p.Destination.Intersection)
	assert.Equal(t, 0, p.Destination.Cost)
	assert.True(t, p.Destination.InView)

	// 建物セルに置くと、面している交差点の名前になる
	onBuilding := model.Coordinate{Column: 3, Row: 3}
	p = Project(ProjectionInput{Viewport: v, Catalog: catalog, Destination: &onBuilding, Metric: model.MetricChebyshev})
	assert.Equal(t, "2nd & Oak", p.Destination.Intersection)
	assert.Equal(t, "Destination\n2nd & Oak\nAP: 1", p.Destination.Text())
	assert.True(t, p.Destination.InView)
}

func TestProject_DoesNotMutateInputs(t *testing.T) {
	catalog := testCatalog(t)
	dest := model.Coordinate{Column: 3, Row: 3}
	in := ProjectionInput{
		Viewport:    model.Viewport{Anchor: model.Coordinate{Column: 0, Row: 0}, Zoom: 5},
		Catalog:     catalog,
		Destination: &dest,
		Metric:      model.MetricChebyshev,
		Tracked:     model.DefaultTrackedCategories(),
	}

	first := Project(in)
	second := Project(in)

	assert.Equal(t, first, second)
	assert.Equal(t, model.Coordinate{Column: 3, Row: 3}, dest)
	assert.Len(t, catalog.All(), 2)
}

func TestProject_WithoutCatalog(t *testing.T) {
	p := Project(ProjectionInput{
		Viewport: model.NewViewport(3),
		Metric:   model.MetricChebyshev,
		Tracked:  []model.Category{model.CategoryBank},
	})

	assert.Equal(t, model.CellEdge, p.Cells[1][1].Kind)
	assert.False(t, p.Nearest[0].Available)
}
