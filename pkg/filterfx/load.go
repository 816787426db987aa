// pkg/filterfx/load.go
package filterfx

import (
	"os"

	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/config"
	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the raw option set from a TOML file. Validation happens
// later, during registration.
func LoadConfig(path string) (config.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
