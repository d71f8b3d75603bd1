// Package entity provides the player and NPC objects that move through the dungeon.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Elean1402/go-roguelike/internal/world"
)

// Object is anything drawable that occupies a single tile: the player, an NPC.
type Object struct {
	X, Y   int
	Symbol rune
	Color  tcell.Color
}

// New creates an object at the given position.
func New(x, y int, symbol rune, color tcell.Color) *Object {
	return &Object{X: x, Y: y, Symbol: symbol, Color: color}
}

// MoveBy shifts the object by (dx, dy) if the target tile is not blocked.
// It reports whether the object actually moved; bumping a wall is a silent
// no-op, matching turn-based "bump into wall" semantics. The caller must
// keep the target in bounds; the dungeon accessor panics otherwise.
func (o *Object) MoveBy(dx, dy int, d *world.Dungeon) bool {
	if d.IsBlocked(o.X+dx, o.Y+dy) {
		return false
	}
	o.X += dx
	o.Y += dy
	return true
}

// Position returns the current x, y coordinates.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}
