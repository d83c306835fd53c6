package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/smellhound/internal/settings"
)

// Environment-driven tests cannot run in parallel.

func clearOverrides(t *testing.T) {
	t.Helper()

	for _, envName := range []string{
		settings.EnvHomeFolder,
		settings.EnvModelFolder,
		settings.EnvModelFile,
		settings.EnvDatasetCSV,
		settings.EnvTrainDataset,
		settings.EnvTestDataset,
	} {
		t.Setenv(envName, "")
	}
}

func TestDefaults(t *testing.T) {
	clearOverrides(t)

	cfg, err := settings.New()
	require.NoError(t, err)

	assert.Equal(t, "/home/jovyan/aibolit", cfg.HomeFolder())
	assert.Equal(t, filepath.Join("/home/jovyan/aibolit", "aibolit", "binary_files"), cfg.ModelFolder())
	assert.Equal(t, filepath.Join("/home/jovyan/aibolit", "binary_files", "model.pkl"), cfg.ModelFile())
	assert.Equal(t, filepath.Join("/home/jovyan/aibolit", "scripts", "target", "dataset.csv"), cfg.DatasetCSV())

	// Lazy resolution is stable across repeated queries.
	assert.Equal(t, cfg.ModelFile(), cfg.ModelFile())
}

func TestHomeOverride_MovesDerivedPaths(t *testing.T) {
	clearOverrides(t)
	t.Setenv(settings.EnvHomeFolder, "/srv/analysis")

	cfg, err := settings.New()
	require.NoError(t, err)

	assert.Equal(t, "/srv/analysis", cfg.HomeFolder())
	assert.Equal(t, filepath.Join("/srv/analysis", "binary_files", "model.pkl"), cfg.ModelFile())
	assert.Equal(t, filepath.Join("/srv/analysis", "scripts", "target", "dataset.csv"), cfg.DatasetCSV())
}

func TestSpecificOverride_BeatsHome(t *testing.T) {
	clearOverrides(t)
	t.Setenv(settings.EnvHomeFolder, "/srv/analysis")
	t.Setenv(settings.EnvModelFile, "/opt/models/latest.pkl")

	cfg, err := settings.New()
	require.NoError(t, err)

	// The model file override is used verbatim; its siblings still derive
	// from the home folder.
	assert.Equal(t, "/opt/models/latest.pkl", cfg.ModelFile())
	assert.Equal(t, filepath.Join("/srv/analysis", "aibolit", "binary_files"), cfg.ModelFolder())
}

func TestTrainAndTestDatasets_NoDefault(t *testing.T) {
	clearOverrides(t)

	cfg, err := settings.New()
	require.NoError(t, err)

	_, ok := cfg.TrainCSV()
	assert.False(t, ok)

	_, ok = cfg.TestCSV()
	assert.False(t, ok)

	t.Setenv(settings.EnvTrainDataset, "/data/train.csv")

	path, ok := cfg.TrainCSV()
	assert.True(t, ok)
	assert.Equal(t, "/data/train.csv", path)
}
