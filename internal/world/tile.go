// Package world provides dungeon generation and map management.
package world

// Tile is a single map cell. The generator only ever produces the two
// canonical variants below, but the type does not forbid mixing the flags.
type Tile struct {
	Blocked     bool
	BlocksSight bool
}

// EmptyTile returns a passable, see-through floor tile.
func EmptyTile() Tile {
	return Tile{Blocked: false, BlocksSight: false}
}

// WallTile returns an impassable, opaque wall tile.
func WallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}
