package system

import (
	"fmt"

	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// LoadLevel converts a StageConfig into a Level entity.
// Characters without a mapping, and rows shorter than the width, become empty cells.
func LoadLevel(cfg *config.StageConfig) (*entity.Level, error) {
	width := cfg.Size.Width
	height := cfg.Size.Height
	if len(cfg.Layers.Collision) != height {
		return nil, fmt.Errorf("stage %s: expected %d collision rows, got %d", cfg.ID, height, len(cfg.Layers.Collision))
	}
	if width <= 0 {
		return nil, fmt.Errorf("stage %s: invalid width %d", cfg.ID, width)
	}

	cells := make([]entity.CellKind, width*height)
	for y, row := range cfg.Layers.Collision {
		x := 0
		for _, char := range row {
			if x >= width {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if ok {
				kind, err := cellKind(mapping)
				if err != nil {
					return nil, fmt.Errorf("stage %s row %d: %w", cfg.ID, y, err)
				}
				cells[y*width+x] = kind
			}
			x++
		}
	}

	level, err := entity.NewLevel(cfg.ID, width, height, cells)
	if err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}
	return level, nil
}

// cellKind resolves a tile mapping. Walls and bricks must be solid and empty tiles must not be.
func cellKind(mapping config.TileMappingConfig) (entity.CellKind, error) {
	var kind entity.CellKind
	switch mapping.Type {
	case "wall":
		kind = entity.CellWall
	case "brick":
		kind = entity.CellBrick
	case "empty", "":
		kind = entity.CellEmpty
	default:
		return entity.CellEmpty, fmt.Errorf("unknown tile type %q", mapping.Type)
	}

	if solid := kind != entity.CellEmpty; mapping.Solid != solid {
		return entity.CellEmpty, fmt.Errorf("tile type %q must have solid=%t", mapping.Type, solid)
	}
	return kind, nil
}
