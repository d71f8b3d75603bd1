package entity

import "sort"

// Roster holds every object in a session: the player plus named NPCs.
// Objects collide with tiles only; two objects may share a tile.
type Roster struct {
	Player *Object
	NPCs   map[string]*Object
}

// NewRoster creates a roster around the given player object.
func NewRoster(player *Object) *Roster {
	return &Roster{
		Player: player,
		NPCs:   make(map[string]*Object),
	}
}

// All returns every object in draw order: NPCs sorted by name, then the
// player on top. The order is deterministic so rendering is stable.
func (r *Roster) All() []*Object {
	names := make([]string, 0, len(r.NPCs))
	for name := range r.NPCs {
		names = append(names, name)
	}
	sort.Strings(names)

	objects := make([]*Object, 0, len(r.NPCs)+1)
	for _, name := range names {
		objects = append(objects, r.NPCs[name])
	}
	return append(objects, r.Player)
}
