package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int                  `toml:"version"`
	Commands []commandSchema      `toml:"commands"`
	Apps     map[string]appSchema `toml:"apps"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type commandSchema struct {
	Pattern string `toml:"pattern"`
	App     string `toml:"app,omitempty"`
	Intent  string `toml:"intent,omitempty"`
	Reply   string `toml:"reply,omitempty"`
}

type appSchema struct {
	Name   string                `toml:"name,omitempty"`
	Web    string                `toml:"web,omitempty"`
	Native string                `toml:"native,omitempty"`
	Links  map[string]linkSchema `toml:"links,omitempty"`
}

type linkSchema struct {
	Web    string `toml:"web,omitempty"`
	Native string `toml:"native,omitempty"`
}
