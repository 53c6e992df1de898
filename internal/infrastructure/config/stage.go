package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

// StageSizeConfig is the grid size in cells
type StageSizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LayersConfig holds the grid rows, one string per row
type LayersConfig struct {
	Collision []string `json:"collision"`
}

// TileMappingConfig maps one row character to a cell type
type TileMappingConfig struct {
	Type  string `json:"type"`  // "wall", "brick" or "empty"
	Solid bool   `json:"solid"` // Required for wall and brick, forbidden for empty
}
