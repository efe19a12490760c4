// Package settings holds the tool configuration shared by the CLI and any
// asset processing built on m2kit. Settings are persisted as YAML.
//
// None of these values change how the file identity index behaves; the
// index only consumes MappingsPath.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/m2kit/filestore"
)

// MaxDirectoryLen is the longest directory string accepted.
const MaxDirectoryLen = 1023

// ErrInvalid indicates a settings value outside its allowed range.
var ErrInvalid = errors.New("settings: invalid value")

// Expansion selects which client expansion's model layout to assume.
type Expansion int

const (
	ExpansionNone Expansion = iota
	ExpansionClassic
	ExpansionBurningCrusade
	ExpansionWrathOfTheLichKing
	ExpansionCataclysm
	ExpansionMistsOfPandaria
	ExpansionWarlordsOfDraenor
	ExpansionLegion
	ExpansionBattleForAzeroth
	ExpansionShadowlands
)

var expansionNames = []string{
	"none", "classic", "tbc", "wotlk", "cata", "mop", "wod", "legion", "bfa", "shadowlands",
}

func (e Expansion) String() string {
	if e >= 0 && int(e) < len(expansionNames) {
		return expansionNames[e]
	}
	return fmt.Sprintf("expansion(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Expansion) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(expansionNames) {
		return nil, fmt.Errorf("%w: expansion %d", ErrInvalid, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Expansion) UnmarshalText(text []byte) error {
	for i, name := range expansionNames {
		if name == string(text) {
			*e = Expansion(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown expansion %q", ErrInvalid, text)
}

// Settings is the persisted tool configuration.
type Settings struct {
	OutputDirectory   string `yaml:"output_directory"`
	WorkingDirectory  string `yaml:"working_directory"`
	MappingsDirectory string `yaml:"mappings_directory"`

	ForceLoadExpansion    Expansion `yaml:"force_load_expansion"`
	CustomFilesStartIndex uint32    `yaml:"custom_files_start_index"`

	MergeBones                bool `yaml:"merge_bones"`
	MergeAttachments          bool `yaml:"merge_attachments"`
	MergeCameras              bool `yaml:"merge_cameras"`
	FixSeams                  bool `yaml:"fix_seams"`
	FixEdgeNormals            bool `yaml:"fix_edge_normals"`
	IgnoreOriginalMeshIndexes bool `yaml:"ignore_original_mesh_indexes"`
	FixAnimationsTest         bool `yaml:"fix_animations_test"`
}

// Default returns the settings a fresh installation starts with.
func Default() Settings {
	return Settings{
		MergeBones:       true,
		MergeAttachments: true,
		MergeCameras:     true,
		FixEdgeNormals:   true,
	}
}

// DefaultMappingsPath is the mappings folder under the working directory.
func DefaultMappingsPath() string {
	return filestore.DefaultDirectory()
}

// MappingsPath returns MappingsDirectory, or DefaultMappingsPath when unset.
func (s Settings) MappingsPath() string {
	if s.MappingsDirectory != "" {
		return s.MappingsDirectory
	}
	return DefaultMappingsPath()
}

// Validate checks directory lengths and the expansion value.
func (s Settings) Validate() error {
	dirs := []struct{ name, value string }{
		{"output_directory", s.OutputDirectory},
		{"working_directory", s.WorkingDirectory},
		{"mappings_directory", s.MappingsDirectory},
	}
	for _, d := range dirs {
		if len(d.value) > MaxDirectoryLen {
			return fmt.Errorf("%w: %s longer than %d bytes", ErrInvalid, d.name, MaxDirectoryLen)
		}
	}
	if s.ForceLoadExpansion < 0 || int(s.ForceLoadExpansion) >= len(expansionNames) {
		return fmt.Errorf("%w: expansion %d", ErrInvalid, int(s.ForceLoadExpansion))
	}
	return nil
}

// Load reads settings from path. When the file does not exist, defaults are
// written there and returned. Keys missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := Default()
		if err := Save(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes s to path as YAML, creating parent directories.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: create directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}
