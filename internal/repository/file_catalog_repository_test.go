package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RBCMap-App/internal/domain/model"
)

const sampleCatalogYAML = `
columns:
  - name: 1st
    coordinate: 0
  - name: 2nd
    coordinate: 2
rows:
  - name: Elm
    coordinate: 0
  - name: Oak
    coordinate: 2
entries:
  - category: bank
    column: 1st
    row: Elm
  - category: tavern
    name: The Oak Inn
    column: 2nd
    row: Oak
`

func TestParseCatalogYAML(t *testing.T) {
	src, err := ParseCatalogYAML([]byte(sampleCatalogYAML))
	require.NoError(t, err)

	require.Len(t, src.Columns, 2)
	assert.Equal(t, model.StreetEntry{Name: "2nd", Coordinate: 2}, src.Columns[1])
	require.Len(t, src.Rows, 2)
	require.Len(t, src.Entries, 2)
	assert.Equal(t, model.CatalogEntry{
		Category: model.CategoryTavern,
		Name:     "The Oak Inn",
		Column:   "2nd",
		Row:      "Oak",
	}, src.Entries[1])
	assert.Empty(t, src.Entries[0].Name)
}

func TestParseCatalogYAML_Invalid(t *testing.T) {
	_, err := ParseCatalogYAML([]byte("columns: [unclosed"))
	assert.Error(t, err)
}

func TestFileCatalogRepository_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalogYAML), 0o600))

	src, err := NewFileCatalogRepository(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, src.Entries, 2)

	_, err = NewFileCatalogRepository(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
