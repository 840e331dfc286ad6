package catalogfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner/internal/adapters/catalogfile"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

func TestFileCatalogSource_JSONAndYAMLAgree(t *testing.T) {
	// Arrange
	jsonSource := catalogfile.NewFileCatalogSource(filepath.Join("testdata", "game_data.json"))
	yamlSource := catalogfile.NewFileCatalogSource(filepath.Join("testdata", "game_data.yaml"))

	// Act
	fromJSON, err := jsonSource.Load(context.Background())
	require.NoError(t, err)
	fromYAML, err := yamlSource.Load(context.Background())
	require.NoError(t, err)

	// Assert
	if diff := cmp.Diff(fromJSON.Recipes(), fromYAML.Recipes(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("recipes differ (-json +yaml):\n%s", diff)
	}
	assert.Equal(t, fromJSON.Projects(), fromYAML.Projects())
	assert.Equal(t, fromJSON.Buildings(), fromYAML.Buildings())
}

func TestParseJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "game_data.json"))
	require.NoError(t, err)

	catalog, err := catalogfile.ParseJSON(data)

	require.NoError(t, err)
	plate, err := catalog.Recipe("Iron Plate")
	require.NoError(t, err)
	assert.Equal(t, 2.0, plate.Produced)
	assert.Equal(t, 2, plate.BuildSteps)
	assert.Equal(t, []production.Ingredient{{Name: "Iron Ingot", Quantity: 3}}, plate.Ingredients)

	project, err := catalog.Project("Plates")
	require.NoError(t, err)
	assert.Equal(t, []production.Requirement{{Name: "Iron Plate", Quantity: 10}}, project.Requirements)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := catalogfile.ParseJSON([]byte(`{"recipes": [`))
	assert.Error(t, err)
}

func TestParseJSON_ValidatesReferences(t *testing.T) {
	data := []byte(`{
		"buildings": [{"name": "Constructor", "power": 4}],
		"recipes": [{"name": "Rod", "ingredients": [{"name": "Ingot", "quantity": 1}], "rate": 15, "building": "Constructor"}]
	}`)

	_, err := catalogfile.ParseJSON(data)

	var unknown *production.ErrUnknownProduct
	assert.ErrorAs(t, err, &unknown)
}

func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	data := []byte(`
buildings:
  - name: Constructor
    watts: 4
`)

	_, err := catalogfile.ParseYAML(data)

	assert.Error(t, err)
}

func TestFileCatalogSource_Errors(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "game_data.csv")
	require.NoError(t, os.WriteFile(csv, []byte("name,rate"), 0644))

	_, err := catalogfile.NewFileCatalogSource(csv).Load(context.Background())
	assert.ErrorContains(t, err, "unsupported game data format")

	_, err = catalogfile.NewFileCatalogSource(filepath.Join(dir, "missing.json")).Load(context.Background())
	assert.ErrorContains(t, err, "failed to read game data")
}
