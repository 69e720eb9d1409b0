package spatial

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lukasmw/spatial3d/config"
	"github.com/lukasmw/spatial3d/geometry"
)

// SourceLayout is the persisted form of one source.
type SourceLayout struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	OrbitSpeed float64 `json:"orbit_speed"`
}

// LayoutStore saves and loads the source layout as JSON in the
// configured data directory.
type LayoutStore struct {
	filePath string
}

func NewLayoutStore(cfg *config.Config) *LayoutStore {
	filename := cfg.GetLayoutFilename()
	if filename == "" {
		filename = "spatial3d_layout.json"
	}

	dataDir := cfg.GetDataDir()
	if dataDir == "" {
		// Fall back to the home directory, then the working directory
		if homeDir, err := os.UserHomeDir(); err == nil {
			dataDir = homeDir
		} else {
			dataDir = "."
		}
	}

	return &LayoutStore{
		filePath: filepath.Join(dataDir, filename),
	}
}

func (ls *LayoutStore) Save(sources []*Source) error {
	layouts := make([]SourceLayout, 0, len(sources))
	for _, s := range sources {
		pos := s.Position()
		layouts = append(layouts, SourceLayout{
			Name:       s.Name(),
			X:          pos.X,
			Y:          pos.Y,
			Z:          pos.Z,
			OrbitSpeed: s.orbitSpeed,
		})
	}

	data, err := json.Marshal(layouts)
	if err != nil {
		return fmt.Errorf("failed to marshal source layout: %w", err)
	}

	return os.WriteFile(ls.filePath, data, 0644)
}

func (ls *LayoutStore) Load() ([]*Source, error) {
	data, err := os.ReadFile(ls.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layouts []SourceLayout
	if err := json.Unmarshal(data, &layouts); err != nil {
		return nil, fmt.Errorf("failed to parse layout file: %w", err)
	}

	sources := make([]*Source, 0, len(layouts))
	for _, l := range layouts {
		sources = append(sources, NewSource(l.Name, geometry.New(l.X, l.Y, l.Z), l.OrbitSpeed))
	}

	return sources, nil
}
