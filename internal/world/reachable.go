package world

import "github.com/zyedidia/generic/mapset"

type point struct {
	x, y int
}

// Reachable reports whether a path of unblocked tiles connects (x1, y1) to
// (x2, y2) using only axis-aligned single steps. A flood fill from the start
// point; either endpoint being out of bounds or blocked yields false.
func (d *Dungeon) Reachable(x1, y1, x2, y2 int) bool {
	if !d.InBounds(x1, y1) || !d.InBounds(x2, y2) {
		return false
	}
	if d.Tiles[y1][x1].Blocked || d.Tiles[y2][x2].Blocked {
		return false
	}

	visited := mapset.New[point]()
	queue := []point{{x1, y1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)

		if cur.x == x2 && cur.y == y2 {
			return true
		}

		for _, n := range []point{
			{cur.x + 1, cur.y},
			{cur.x - 1, cur.y},
			{cur.x, cur.y + 1},
			{cur.x, cur.y - 1},
		} {
			if d.InBounds(n.x, n.y) && !d.Tiles[n.y][n.x].Blocked && !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return false
}
