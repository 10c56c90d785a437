package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	FetchedAt string          `toml:"fetched_at"`
	Countries []countrySchema `toml:"countries"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported countries schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type countrySchema struct {
	Name       string `toml:"name"`
	Capital    string `toml:"capital"`
	FlagURL    string `toml:"flag_url,omitempty"`
	Region     string `toml:"region,omitempty"`
	Population int64  `toml:"population,omitempty"`
}
