// Package settings resolves the process-wide filesystem locations for model
// artifacts and datasets. Every location checks its environment override
// first and falls back to a default computed from the home folder; train and
// test dataset paths have no computed default. No path existence checks are
// performed here; creation is the consumer's concern.
package settings

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment override names. They predate this implementation and are part
// of the external contract; do not rename.
const (
	EnvHomeFolder   = "HOME_AIBOLIT"
	EnvModelFolder  = "SAVE_MODEL_FOLDER"
	EnvModelFile    = "HOME_MODEL_FOLDER"
	EnvDatasetCSV   = "HOME_DATASET_CSV"
	EnvTrainDataset = "HOME_TRAIN_DATASET"
	EnvTestDataset  = "HOME_TEST_DATASET"
)

// defaultHomeFolder is used when no home override is set.
const defaultHomeFolder = "/home/jovyan/aibolit"

// Fixed relative sub-paths under the home folder. They predate this
// implementation as well; the extra aibolit segment under the home folder is
// historical but load-bearing for existing layouts.
const (
	modelSaveSubPath = "aibolit/binary_files"
	modelFileSubPath = "binary_files/model.pkl"
	datasetSubPath   = "scripts/target/dataset.csv"
)

// Viper keys for each location.
const (
	keyHomeFolder   = "home_folder"
	keyModelFolder  = "model_folder"
	keyModelFile    = "model_file"
	keyDatasetCSV   = "dataset_csv"
	keyTrainDataset = "train_dataset"
	keyTestDataset  = "test_dataset"
)

// Settings resolves filesystem locations lazily on each access. Values are
// deterministic for the life of the process, so callers may cache them.
type Settings struct {
	viperCfg *viper.Viper
}

// New creates a Settings surface with all environment overrides bound.
func New() (*Settings, error) {
	viperCfg := viper.New()

	bindings := map[string]string{
		keyHomeFolder:   EnvHomeFolder,
		keyModelFolder:  EnvModelFolder,
		keyModelFile:    EnvModelFile,
		keyDatasetCSV:   EnvDatasetCSV,
		keyTrainDataset: EnvTrainDataset,
		keyTestDataset:  EnvTestDataset,
	}

	for key, envName := range bindings {
		err := viperCfg.BindEnv(key, envName)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", envName, err)
		}
	}

	return &Settings{viperCfg: viperCfg}, nil
}

// HomeFolder returns the root folder for tool data.
func (s *Settings) HomeFolder() string {
	if override := s.viperCfg.GetString(keyHomeFolder); override != "" {
		return override
	}

	return defaultHomeFolder
}

// ModelFolder returns the folder where trained model data is saved.
func (s *Settings) ModelFolder() string {
	if override := s.viperCfg.GetString(keyModelFolder); override != "" {
		return override
	}

	return filepath.Join(s.HomeFolder(), filepath.FromSlash(modelSaveSubPath))
}

// ModelFile returns the path of the trained model artifact.
func (s *Settings) ModelFile() string {
	if override := s.viperCfg.GetString(keyModelFile); override != "" {
		return override
	}

	return filepath.Join(s.HomeFolder(), filepath.FromSlash(modelFileSubPath))
}

// DatasetCSV returns the path of the generated dataset.
func (s *Settings) DatasetCSV() string {
	if override := s.viperCfg.GetString(keyDatasetCSV); override != "" {
		return override
	}

	return filepath.Join(s.HomeFolder(), filepath.FromSlash(datasetSubPath))
}

// TrainCSV returns the training dataset path. There is no computed default;
// ok is false when the override is unset.
func (s *Settings) TrainCSV() (path string, ok bool) {
	path = s.viperCfg.GetString(keyTrainDataset)

	return path, path != ""
}

// TestCSV returns the test dataset path. There is no computed default; ok is
// false when the override is unset.
func (s *Settings) TestCSV() (path string, ok bool) {
	path = s.viperCfg.GetString(keyTestDataset)

	return path, path != ""
}
