package game

import (
	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
)

// ObstacleKind indexes the obstacle kinds table.
// Frontends key their textures or glyphs by it.
type ObstacleKind int

// KindSpec describes one obstacle variant as the simulation sees it.
type KindSpec struct {
	Name string
	Size core.Vec // Unscaled texture size
}

// KindTable is the ordered set of obstacle variants a spawner picks from.
type KindTable []KindSpec

// KindsFromConfig builds a kind table from configuration.
// sizes overrides the configured sizes by index, typically with the
// bounds of loaded textures; missing entries fall back to the config.
func KindsFromConfig(kinds []config.KindConfig, sizes []core.Vec) KindTable {
	table := make(KindTable, len(kinds))
	for i, k := range kinds {
		size := core.V(k.Size.Width, k.Size.Height)
		if i < len(sizes) {
			size = sizes[i]
		}
		table[i] = KindSpec{Name: k.Name, Size: size}
	}
	return table
}

// Len returns the number of kinds.
func (t KindTable) Len() int {
	return len(t)
}

// Spec returns the spec for kind k.
func (t KindTable) Spec(k ObstacleKind) KindSpec {
	return t[k]
}

// Kinds returns every kind in table order.
func (t KindTable) Kinds() []ObstacleKind {
	out := make([]ObstacleKind, len(t))
	for i := range t {
		out[i] = ObstacleKind(i)
	}
	return out
}
