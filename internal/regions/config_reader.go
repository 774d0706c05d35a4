package regions

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadRegionsConfig loads cached-region declarations from a YAML file and
// returns a validated registry.
func LoadRegionsConfig(path string, logger *zap.Logger) (*Registry, error) {
	logger.Info("Loading region configuration", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open regions file: %w", err)
	}
	defer file.Close()

	var config RegionsConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML regions config: %w", err)
	}

	return NewRegistry(&config, logger)
}
