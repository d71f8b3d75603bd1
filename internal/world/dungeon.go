package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Elean1402/go-roguelike/internal/telemetry"
)

const (
	// Default map dimensions.
	DefaultWidth  = 80
	DefaultHeight = 45

	// Placement parameters.
	defaultMaxRooms    = 30 // candidate attempts per generation run
	defaultRoomMinSize = 6  // minimum room dimension, walls included
	defaultRoomMaxSize = 10 // maximum room dimension, walls included
)

// Params control a generation run. Dimensions must exceed RoomMaxSize so
// origin sampling always has room to place a candidate.
type Params struct {
	Width       int
	Height      int
	MaxRooms    int // candidate attempts, not a guaranteed room count
	RoomMinSize int
	RoomMaxSize int
}

// DefaultParams returns the classic tutorial parameters: an 80x45 map with
// up to 30 rooms sized 6-10.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    defaultMaxRooms,
		RoomMinSize: defaultRoomMinSize,
		RoomMaxSize: defaultRoomMaxSize,
	}
}

// Dungeon represents the game map.
type Dungeon struct {
	Params
	Tiles [][]Tile
	Rooms []Rect

	spawnX, spawnY int
	hasSpawn       bool
	rng            *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls. The caller supplies
// the random source, so generation is reproducible for a fixed seed.
func NewDungeon(p Params, rng *rand.Rand) *Dungeon {
	tiles := make([][]Tile, p.Height)
	for y := range tiles {
		tiles[y] = make([]Tile, p.Width)
		for x := range tiles[y] {
			tiles[y][x] = WallTile()
		}
	}

	return &Dungeon{
		Params: p,
		Tiles:  tiles,
		Rooms:  make([]Rect, 0, p.MaxRooms),
		rng:    rng,
	}
}

// Generate carves the dungeon layout by rejection sampling: MaxRooms random
// room candidates are proposed, candidates that overlap an accepted room are
// discarded, and each accepted room is joined to the previously accepted one
// by an L-shaped corridor. The first accepted room's center becomes the
// spawn point. The loop always runs exactly MaxRooms attempts; an unlucky
// run accepting few rooms (or none) is a valid outcome.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for i := 0; i < d.MaxRooms; i++ {
		w := d.RoomMinSize + d.rng.Intn(d.RoomMaxSize-d.RoomMinSize+1)
		h := d.RoomMinSize + d.rng.Intn(d.RoomMaxSize-d.RoomMinSize+1)

		// Origin sampled so the room never exits the grid, leaving the outer
		// tile ring as wall.
		x := d.rng.Intn(d.Width - w)
		y := d.rng.Intn(d.Height - h)

		room := NewRect(x, y, w, h)
		if overlapsAny(d.Rooms, room) {
			continue
		}

		d.carveRoom(room)

		cx, cy := room.Center()
		if len(d.Rooms) == 0 {
			d.spawnX, d.spawnY = cx, cy
			d.hasSpawn = true
		} else {
			// Linear chain: each room connects to exactly the room accepted
			// before it. Horizontal first, then vertical, always.
			px, py := d.Rooms[len(d.Rooms)-1].Center()
			d.carveHTunnel(px, cx, py)
			d.carveVTunnel(py, cy, cx)
		}

		d.Rooms = append(d.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Bool("dungeon.chain_connected", d.chainConnected()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// overlapsAny reports whether candidate intersects any already-accepted room.
func overlapsAny(rooms []Rect, candidate Rect) bool {
	for _, r := range rooms {
		if candidate.Intersects(r) {
			return true
		}
	}
	return false
}

// carveRoom sets every tile strictly inside the rectangle to floor. The
// boundary ring stays wall, which is what produces visible room walls.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.Tiles[y][x] = EmptyTile()
		}
	}
}

// carveHTunnel carves a horizontal tunnel inclusive of both endpoints.
func (d *Dungeon) carveHTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Tiles[y][x] = EmptyTile()
	}
}

// carveVTunnel carves a vertical tunnel inclusive of both endpoints.
func (d *Dungeon) carveVTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Tiles[y][x] = EmptyTile()
	}
}

// InBounds reports whether (x, y) is within the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// At returns the tile at (x, y). Out-of-range coordinates are a caller bug
// and panic rather than silently corrupting state.
func (d *Dungeon) At(x, y int) Tile {
	if !d.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile access out of range: (%d,%d) on %dx%d map", x, y, d.Width, d.Height))
	}
	return d.Tiles[y][x]
}

// IsBlocked reports whether the tile at (x, y) blocks movement.
// Panics when out of range, like At.
func (d *Dungeon) IsBlocked(x, y int) bool {
	return d.At(x, y).Blocked
}

// Spawn returns the chosen spawn point: the first accepted room's center,
// or the grid center when a run accepted no rooms at all.
func (d *Dungeon) Spawn() (int, int) {
	if !d.hasSpawn {
		return d.Width / 2, d.Height / 2
	}
	return d.spawnX, d.spawnY
}

// chainConnected reports whether every consecutive pair of accepted rooms
// has a walkable path between their centers.
func (d *Dungeon) chainConnected() bool {
	for i := 1; i < len(d.Rooms); i++ {
		px, py := d.Rooms[i-1].Center()
		cx, cy := d.Rooms[i].Center()
		if !d.Reachable(px, py, cx, cy) {
			return false
		}
	}
	return true
}
